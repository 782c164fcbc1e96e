package validation

// Result maps a field name to a single human-readable violation message.
// An empty Result means the request is valid. Validators accumulate into it
// rather than short-circuiting so callers can surface every problem at once.
type Result map[string]string

// NewResult returns an empty Result ready to accumulate violations.
func NewResult() Result {
	return Result{}
}

// Add records a violation for field. The first message wins; later checks on
// the same field do not overwrite an earlier, more specific violation.
func (r Result) Add(field, message string) {
	if _, ok := r[field]; ok {
		return
	}
	r[field] = message
}

// Valid reports whether no violations were recorded.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Merge copies violations from other into r, keeping r's existing entries.
func (r Result) Merge(other Result) {
	for field, msg := range other {
		r.Add(field, msg)
	}
}
