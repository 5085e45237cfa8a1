package ltcheck

import (
	"unicode/utf8"

	"github.com/Alfex4936/ltcheck/internal/model"
	"github.com/Alfex4936/ltcheck/internal/util"
)

// NewReport flattens a checked batch into a JSON-serialisable summary,
// filling in computed fields (corrected text, edit distance, counts).
func NewReport(text, language string, errs []*Error) *model.Report {
	rep := &model.Report{
		Original:   text,
		Corrected:  Corrected(text, errs),
		CharCount:  utf8.RuneCountInString(text),
		Language:   language,
		ErrorCount: len(errs),
	}
	rep.EditDistance = util.Levenshtein(rep.Original, rep.Corrected)

	if len(errs) > 0 {
		rep.Issues = make([]model.Issue, 0, len(errs))
	}
	for _, e := range errs {
		if e.Whitelisted {
			rep.WhitelistedCount++
		}
		rep.Issues = append(rep.Issues, issueOf(e))
	}
	return rep
}

func issueOf(e *Error) model.Issue {
	start, end, length := e.AbsolutePosition()
	is := model.Issue{
		Message:      e.Message,
		ShortMessage: e.ShortMessage,
		Word:         e.TextError(),
		Offset:       start,
		End:          end,
		Length:       length,
		Suggestions:  e.Suggestions,
		Distances:    e.Distances,
		Whitelisted:  e.Whitelisted,
	}
	if e.Context != nil {
		is.Context = e.Context.Proximity
	}
	if r := e.Rule; r != nil {
		is.Rule = &model.Rule{
			ID:          r.ID,
			SubID:       r.SubID,
			Description: r.Description,
			Type:        r.Type,
			URLs:        r.URLs,
			Category:    model.Category{ID: r.Category.ID, Name: r.Category.Name},
		}
	}
	return is
}
