package model

// Language is one entry of the service's language list.
type Language struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	LongCode string `json:"longCode"`
}

// Report is JSON-serialisable as-is.
type Report struct {
	Original         string  `json:"original"`         // checked text
	Corrected        string  `json:"corrected"`        // first suggestion applied per issue
	EditDistance     int     `json:"editDistance"`     // Levenshtein(original, corrected)
	CharCount        int     `json:"charCount"`        // UTF-8 rune length
	Language         string  `json:"language"`         // language code sent to the service
	ErrorCount       int     `json:"errorCount"`       // len(Issues)
	WhitelistedCount int     `json:"whitelistedCount"` // issues tagged by the whitelist
	Issues           []Issue `json:"issues"`           // nil if no issues
}

// Issue is the flattened form of one flagged match.
type Issue struct {
	Message      string   `json:"message"`
	ShortMessage string   `json:"shortMessage,omitempty"`
	Word         string   `json:"word"`
	Offset       int      `json:"offset"` // UTF-16 offsets into Original
	End          int      `json:"end"`
	Length       int      `json:"length"`
	Context      string   `json:"context,omitempty"`
	Suggestions  []string `json:"suggestions"`
	Distances    []int    `json:"distances"` // Levenshtein(word, suggestions[i])
	Whitelisted  bool     `json:"whitelisted"`
	Rule         *Rule    `json:"rule,omitempty"`
}

// Rule is the reported form of the rule that fired.
type Rule struct {
	ID          string   `json:"id"`
	SubID       string   `json:"subId,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	URLs        []string `json:"urls,omitempty"`
	Category    Category `json:"category"`
}

// Category identifies the rule taxonomy.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawResponse is the body of a /check call.
type RawResponse struct {
	Matches []RawMatch `json:"matches"`
}

// RawMatch is one entry of RawResponse.Matches as the server sends it.
type RawMatch struct {
	Message      string      `json:"message"`
	ShortMessage string      `json:"shortMessage"`
	Offset       int         `json:"offset"`
	Length       int         `json:"length"`
	Context      *RawContext `json:"context"`
	Rule         *RawRule    `json:"rule"`
	Replacements []RawValue  `json:"replacements"`
}

// RawContext is the text window around a match.
type RawContext struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// RawRule is the rule section of a match. Category is required.
// encoding/json matches keys case-insensitively, so "subid" decodes too.
type RawRule struct {
	ID          string       `json:"id"`
	SubID       string       `json:"subId"`
	Description string       `json:"description"`
	URLs        []RawValue   `json:"urls"`
	IssueType   string       `json:"issueType"`
	Category    *RawCategory `json:"category"`
}

// RawCategory is the category section of a rule.
type RawCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawValue wraps the {"value": ...} objects used for replacements and urls.
type RawValue struct {
	Value string `json:"value"`
}
