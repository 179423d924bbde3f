package generator

// DocumentOutcome is the final status of one document in a run.
type DocumentOutcome string

const (
	DocumentCreated     DocumentOutcome = "created"
	DocumentOverwritten DocumentOutcome = "overwritten"
	DocumentSkipped     DocumentOutcome = "skipped"
)

// InjectionRecord is the result of one directive.
type InjectionRecord struct {
	Into      string `json:"into"`
	Placement string `json:"placement"`
	Result    string `json:"result"`

	// Changed reports whether the target file was actually rewritten.
	// An applied directive whose output equals the input leaves the file
	// untouched.
	Changed bool `json:"changed"`
}

// DocumentRecord is the result of one document.
type DocumentRecord struct {
	Index      int               `json:"index"`
	Path       string            `json:"path"`
	Outcome    DocumentOutcome   `json:"outcome"`
	Message    string            `json:"message,omitempty"`
	Injections []InjectionRecord `json:"injections,omitempty"`
}

// Report summarizes a single generate call.
type Report struct {
	RunID     string           `json:"run_id"`
	Documents []DocumentRecord `json:"documents"`
}

// Messages returns the frontmatter messages of all documents that
// generated, in document order.
func (r *Report) Messages() []string {
	var messages []string
	for _, doc := range r.Documents {
		if doc.Outcome != DocumentSkipped && doc.Message != "" {
			messages = append(messages, doc.Message)
		}
	}
	return messages
}
