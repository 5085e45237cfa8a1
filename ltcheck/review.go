package ltcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Alfex4936/ltcheck/internal/util"
)

// ReviewOptions are the view preferences of a Review.
type ReviewOptions struct {
	IgnoreWhitelisted bool   // hide whitelisted errors
	MisspellingsOnly  bool   // hide everything but spelling errors
	AutosavePath      string // save the whitelist here after each addition
}

// Review holds the results of one check while the user steps through them.
//
// The original batch is kept as returned by the service; the working batch
// is derived from it by the view options, so changing the view never needs
// another request.
type Review struct {
	text      string
	original  []*Error
	working   []*Error
	whitelist *Whitelist
	opts      ReviewOptions
	cursor    Cursor
}

// NewReview starts a review of errs, checked from text. A nil whitelist
// starts empty.
func NewReview(text string, errs []*Error, wl *Whitelist, opts ReviewOptions) (*Review, error) {
	if wl == nil {
		wl = NewWhitelist()
	}
	r := &Review{text: text, original: errs, whitelist: wl, opts: opts}
	UpdateWhitelisted(r.original, wl.Words())
	if err := r.derive(); err != nil {
		return nil, err
	}
	r.cursor.Reset()
	return r, nil
}

func (r *Review) derive() error {
	errs := r.original
	if r.opts.IgnoreWhitelisted {
		errs = WhitelistFiltered(errs)
	}
	if r.opts.MisspellingsOnly {
		spell, err := SpellErrors(errs)
		if err != nil {
			return err
		}
		errs = spell
	}
	r.working = errs
	return nil
}

// Text returns the checked text.
func (r *Review) Text() string { return r.text }

// Original returns every error of the check.
func (r *Review) Original() []*Error { return r.original }

// Errors returns the errors visible under the current options.
func (r *Review) Errors() []*Error { return r.working }

// Whitelist returns the whitelist the review tags against.
func (r *Review) Whitelist() *Whitelist { return r.whitelist }

// Options returns the current view options.
func (r *Review) Options() ReviewOptions { return r.opts }

// Len returns the number of visible errors.
func (r *Review) Len() int { return len(r.working) }

// Position returns the 1-based position of the current error, 0 if none.
func (r *Review) Position() int {
	if len(r.working) == 0 {
		return 0
	}
	return r.cursor.Position() + 1
}

// Current returns the error under the cursor, nil if none.
func (r *Review) Current() *Error {
	if len(r.working) == 0 {
		return nil
	}
	return r.working[r.cursor.Position()]
}

// Status describes the current error the way a status bar shows it.
func (r *Review) Status() string {
	e := r.Current()
	if e == nil {
		return "All good!"
	}
	s := fmt.Sprintf("Error %d of %d", r.Position(), r.Len())
	if e.Rule != nil {
		s += fmt.Sprintf(" (%s)", e.Rule.CategoryName())
	}
	return s
}

// Navigate moves the cursor over the visible errors.
func (r *Review) Navigate(a Action, consumer func(*Error)) bool {
	return r.cursor.Navigate(r.working, a, consumer)
}

// Goto jumps to the 1-based position n.
func (r *Review) Goto(n int, consumer func(*Error)) error {
	return r.cursor.Goto(r.working, n, consumer)
}

// SetOptions changes the view and moves the cursor to the first error.
// AutosavePath is taken from opts as well.
func (r *Review) SetOptions(opts ReviewOptions) error {
	prev := r.opts
	r.opts = opts
	if err := r.derive(); err != nil {
		r.opts = prev
		return err
	}
	r.cursor.Reset()
	return nil
}

// WhitelistCurrent adds the current word to the whitelist and re-tags the
// batch. added is false when the word was already listed. The cursor stays
// where it was, clamped to the new working batch.
func (r *Review) WhitelistCurrent() (word string, added bool, err error) {
	e := r.Current()
	if e == nil {
		return "", false, nil
	}
	word = lower(strings.TrimSpace(e.TextError()))
	if word == "" {
		return "", false, nil
	}

	added = r.whitelist.Add(word)
	if err := r.retag(); err != nil {
		return word, added, err
	}
	if added {
		return word, added, r.autosave()
	}
	return word, added, nil
}

// Unwhitelist removes word from the whitelist, or the current word when
// word is empty, and re-tags the batch. removed is false when the word was
// not listed.
func (r *Review) Unwhitelist(word string) (string, bool, error) {
	if strings.TrimSpace(word) == "" {
		e := r.Current()
		if e == nil {
			return "", false, nil
		}
		word = e.TextError()
	}
	word = lower(strings.TrimSpace(word))
	if word == "" || !r.whitelist.Contains(word) {
		return word, false, nil
	}

	r.whitelist.Remove(word)
	if err := r.retag(); err != nil {
		return word, true, err
	}
	return word, true, r.autosave()
}

// retag re-applies the whitelist and keeps the cursor on the same
// position, clamped to the new working batch.
func (r *Review) retag() error {
	pos := r.cursor.Position()
	UpdateWhitelisted(r.original, r.whitelist.Words())
	if err := r.derive(); err != nil {
		return err
	}
	r.cursor.Reset()
	if n := len(r.working); n > 0 {
		_ = r.cursor.Goto(r.working, min(pos, n-1)+1, nil)
	}
	return nil
}

func (r *Review) autosave() error {
	if r.opts.AutosavePath == "" {
		return nil
	}
	if err := r.whitelist.Save(r.opts.AutosavePath, true); err != nil {
		return fmt.Errorf("ltcheck: autosave whitelist: %w", err)
	}
	return nil
}

// Corrected returns the text with the first suggestion of every visible,
// non-whitelisted error applied. Overlapping errors keep the later one.
// It matches the Corrected field of NewReport(text, lang, r.Errors()).
func (r *Review) Corrected() string {
	return Corrected(r.text, r.working)
}

// Corrected applies the first suggestion of each non-whitelisted error in
// errs to text.
func Corrected(text string, errs []*Error) string {
	spans := make([]util.Span, 0, len(errs))
	for _, e := range errs {
		if e.Whitelisted || len(e.Suggestions) == 0 {
			continue
		}
		start, end, _ := e.AbsolutePosition()
		spans = append(spans, util.Span{Start: start, End: end, Text: e.Suggestions[0]})
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start > spans[j].Start })
	return util.ApplySpans(text, spans)
}
