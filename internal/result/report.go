package result

// Report is the outcome of generating files from a manifest.
type Report struct {
	Success     bool              `json:"success"`
	Files       map[string][]byte `json:"-"` // filename -> content
	Diagnostics []Diagnostic      `json:"diagnostics,omitempty"`
}

// Errors returns the error-severity diagnostics.
func (r *Report) Errors() []Diagnostic { return Filter(r.Diagnostics, SeverityError) }

// Warnings returns the warning-severity diagnostics.
func (r *Report) Warnings() []Diagnostic { return Filter(r.Diagnostics, SeverityWarning) }

// Add appends diagnostics and clears Success if any is an error.
func (r *Report) Add(diags ...Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, diags...)
	if HasErrors(diags) {
		r.Success = false
	}
}
