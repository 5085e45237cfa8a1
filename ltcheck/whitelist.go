package ltcheck

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower folds s the way whitelist entries are stored.
// A Caser keeps state, so a fresh one is made per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// MarkWhitelisted sets Whitelisted from the lowercased flagged word.
func (e *Error) MarkWhitelisted(set map[string]struct{}) {
	_, e.Whitelisted = set[lower(e.TextError())]
}

// UpdateWhitelisted tags every error in place and returns errs.
// Entries of whitelist are expected to be lowercase already.
func UpdateWhitelisted(errs []*Error, whitelist []string) []*Error {
	set := make(map[string]struct{}, len(whitelist))
	for _, w := range whitelist {
		set[w] = struct{}{}
	}
	for _, e := range errs {
		e.MarkWhitelisted(set)
	}
	return errs
}

// WhitelistFiltered returns the errors that are not whitelisted.
func WhitelistFiltered(errs []*Error) []*Error {
	out := make([]*Error, 0, len(errs))
	for _, e := range errs {
		if !e.Whitelisted {
			out = append(out, e)
		}
	}
	return out
}

// Whitelist is the user's list of words excluded from review.
// Words are stored trimmed and lowercase, without duplicates.
type Whitelist struct {
	words []string
	index map[string]struct{}
}

// NewWhitelist creates a Whitelist from the given words.
func NewWhitelist(words ...string) *Whitelist {
	wl := &Whitelist{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		wl.Add(w)
	}
	return wl
}

// LoadWhitelist reads a file of one word per line.
// A missing file yields an empty list.
func LoadWhitelist(path string) (*Whitelist, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewWhitelist(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWhitelist(f)
}

// ReadWhitelist reads one word per line from r.
func ReadWhitelist(r io.Reader) (*Whitelist, error) {
	wl := NewWhitelist()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		wl.Add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return wl, nil
}

// Add inserts word and reports whether it was new.
func (wl *Whitelist) Add(word string) bool {
	w := lower(strings.TrimSpace(word))
	if w == "" {
		return false
	}
	if _, ok := wl.index[w]; ok {
		return false
	}
	wl.index[w] = struct{}{}
	wl.words = append(wl.words, w)
	return true
}

// Remove deletes word and reports whether it was present.
func (wl *Whitelist) Remove(word string) bool {
	w := lower(strings.TrimSpace(word))
	if _, ok := wl.index[w]; !ok {
		return false
	}
	delete(wl.index, w)
	for i, x := range wl.words {
		if x == w {
			wl.words = append(wl.words[:i], wl.words[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether word, lowercased, is listed.
func (wl *Whitelist) Contains(word string) bool {
	_, ok := wl.index[lower(strings.TrimSpace(word))]
	return ok
}

// Len returns the number of words.
func (wl *Whitelist) Len() int { return len(wl.words) }

// Words returns a copy of the words in insertion order.
func (wl *Whitelist) Words() []string {
	out := make([]string, len(wl.words))
	copy(out, wl.words)
	return out
}

// Save writes the list to path, one word per line. With overwrite false
// only the words missing from the file are appended. An existing file is
// first copied to path+".bak".
func (wl *Whitelist) Save(path string, overwrite bool) error {
	prev, err := backup(path)
	if err != nil {
		return err
	}

	flag := os.O_CREATE | os.O_WRONLY
	words := wl.words
	if overwrite {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
		words = wl.missingFrom(prev)
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if !overwrite && len(words) > 0 && len(prev) > 0 && prev[len(prev)-1] != '\n' {
		w.WriteByte('\n')
	}
	for _, word := range words {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// missingFrom returns the words not already listed in data.
func (wl *Whitelist) missingFrom(data []byte) []string {
	have, err := ReadWhitelist(bytes.NewReader(data))
	if err != nil {
		return wl.words
	}
	var out []string
	for _, w := range wl.words {
		if !have.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

// backup copies an existing file to path+".bak" and returns its content.
func backup(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, os.WriteFile(path+".bak", data, 0o644)
}
