package domain

// Page is the render context of a lab. Every reflected value is carried
// verbatim; escaping is deliberately left out when it is rendered.
type Page struct {
	*Lab
	NextLabURL string `json:"next_lab_url,omitempty"`

	Input map[string]string `json:"input,omitempty"`

	Comments            []*Comment    `json:"comments,omitempty"`
	MarkdownContent     string        `json:"markdown_content,omitempty"`
	Filter              *FilterResult `json:"filter,omitempty"`
	SanitizedComment    string        `json:"sanitized_comment,omitempty"`
	DetectedContentType string        `json:"detected_content_type,omitempty"`
	UploadedContent     string        `json:"uploaded_content,omitempty"`
	JSVerdict           *JSVerdict    `json:"js_verdict,omitempty"`
	Script              string        `json:"-"`

	Signal *Signal `json:"signal,omitempty"`
}

// Value returns the reflected input stored under key, or "".
func (p *Page) Value(key string) string {
	return p.Input[key]
}

// FilterResult is what the filter-bypass blocklist left of the comment.
type FilterResult struct {
	Output          string   `json:"filtered_comment"`
	BlockedPatterns []string `json:"blocked_patterns"`
}

// JSVerdict records whether the js-context script called a dialog.
type JSVerdict struct {
	Executed bool     `json:"executed"`
	Calls    []string `json:"calls,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Signal is the informational instructor indicator for a page's input.
type Signal struct {
	Found   bool   `json:"detected"`
	Group   string `json:"group,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Markup  Markup `json:"markup"`
}

type Markup struct {
	Elements      []string `json:"elements,omitempty"`
	EventHandlers []string `json:"event_handlers,omitempty"`
	ScriptURLs    []string `json:"script_urls,omitempty"`
	Scripts       int      `json:"scripts"`
}
