package ltcheck

import (
	"fmt"

	"github.com/Alfex4936/ltcheck/internal/model"
	"github.com/Alfex4936/ltcheck/internal/parse"
	"github.com/Alfex4936/ltcheck/internal/util"
)

// IssueMisspelling is the Rule.Type of spelling mistakes.
const IssueMisspelling = "misspelling"

// Error is one issue flagged by the service.
type Error struct {
	Message      string
	ShortMessage string
	Context      *Context // nil when the match has no context
	Rule         *Rule    // nil when the match has no rule
	Suggestions  []string
	Distances    []int // Levenshtein(TextError(), Suggestions[i])
	Whitelisted  bool

	offset int
	length int
}

// Context is the snippet of text around an error.
// Start and End are UTF-16 offsets into Proximity.
type Context struct {
	Proximity string
	Start     int
	End       int
	Word      string
}

// Rule is the grammar or style rule that fired.
type Rule struct {
	ID          string
	SubID       string
	Description string
	URLs        []string
	Type        string
	Category    Category
}

// Category groups rules.
type Category struct {
	ID   string
	Name string
}

func (c Category) String() string { return c.ID + " - " + c.Name }

// CategoryName returns the name of the rule's category.
func (r *Rule) CategoryName() string { return r.Category.Name }

// TextError returns the flagged word, or "" when there is no context.
func (e *Error) TextError() string {
	if e.Context == nil {
		return ""
	}
	return e.Context.Word
}

// AbsolutePosition returns the span of the error in the checked text,
// taken from the match itself rather than from its context.
func (e *Error) AbsolutePosition() (start, end, length int) {
	return e.offset, e.offset + e.length, e.length
}

// IsMisspelling reports whether the rule that fired is a spelling rule.
func (e *Error) IsMisspelling() bool {
	return e.Rule != nil && e.Rule.Type == IssueMisspelling
}

// Parse turns a /check response body into errors.
//
// It returns nil when the body reports no matches. When whitelist is not
// empty the batch is tagged with UpdateWhitelisted before being returned.
func Parse(body []byte, whitelist []string) ([]*Error, error) {
	raw, err := parse.Decode(body)
	if err != nil {
		return nil, &MalformedResponseError{Index: -1, Err: err}
	}
	return FromRaw(raw, whitelist)
}

// FromRaw builds errors from already-decoded matches, keeping their order.
func FromRaw(raw []model.RawMatch, whitelist []string) ([]*Error, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]*Error, 0, len(raw))
	for i := range raw {
		e, err := newError(&raw[i])
		if err != nil {
			if me, ok := err.(*MalformedResponseError); ok {
				me.Index = i
			}
			return nil, err
		}
		out = append(out, e)
	}
	if len(whitelist) > 0 {
		UpdateWhitelisted(out, whitelist)
	}
	return out, nil
}

func newError(m *model.RawMatch) (*Error, error) {
	e := &Error{
		Message:      m.Message,
		ShortMessage: m.ShortMessage,
		offset:       m.Offset,
		length:       m.Length,
	}

	if m.Context != nil {
		c, err := newContext(m.Context)
		if err != nil {
			return nil, err
		}
		e.Context = c
	}
	if m.Rule != nil {
		r, err := newRule(m.Rule)
		if err != nil {
			return nil, err
		}
		e.Rule = r
	}

	e.Suggestions = make([]string, 0, len(m.Replacements))
	for _, r := range m.Replacements {
		e.Suggestions = append(e.Suggestions, r.Value)
	}
	e.Distances = util.Distances(e.TextError(), e.Suggestions)
	return e, nil
}

func newContext(raw *model.RawContext) (*Context, error) {
	start, end := raw.Offset, raw.Offset+raw.Length
	word, ok := util.UTF16Slice(raw.Text, start, end)
	if !ok || raw.Length < 0 {
		return nil, &MalformedResponseError{
			Field: "context",
			Reason: fmt.Sprintf("span [%d, %d) does not fit snippet of length %d",
				start, end, util.UTF16Len(raw.Text)),
		}
	}
	return &Context{Proximity: raw.Text, Start: start, End: end, Word: word}, nil
}

func newRule(raw *model.RawRule) (*Rule, error) {
	if raw.Category == nil {
		return nil, &MalformedResponseError{
			Field:  "rule.category",
			Reason: fmt.Sprintf("missing for rule %q", raw.ID),
		}
	}
	r := &Rule{
		ID:          raw.ID,
		SubID:       raw.SubID,
		Description: raw.Description,
		Type:        raw.IssueType,
		Category:    Category{ID: raw.Category.ID, Name: raw.Category.Name},
	}
	for _, u := range raw.URLs {
		r.URLs = append(r.URLs, u.Value)
	}
	return r, nil
}

// SpellErrors returns the errors whose rule is a spelling rule.
// Every entry must carry a rule; otherwise ErrNoRule is returned.
func SpellErrors(errs []*Error) ([]*Error, error) {
	out := make([]*Error, 0, len(errs))
	for i, e := range errs {
		if e.Rule == nil {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNoRule)
		}
		if e.IsMisspelling() {
			out = append(out, e)
		}
	}
	return out, nil
}
