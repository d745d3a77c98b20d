package model

// Report is the complete result of checking one ELF binary against its budgets.
// It is filled by the pipeline steps and then handed to a report writer.
type Report struct {
	// File is the path of the analysed binary as given by the user.
	File string `json:"file"`

	// Digest is the hex encoded SHA3-256 of the raw image.
	Digest string `json:"digest,omitempty"`

	// Segments are the loadable segments found in the image.
	Segments []Segment `json:"segments"`

	// Totals are the classified byte counts.
	Totals Totals `json:"totals"`

	// Program is the usage of program memory.
	Program Usage `json:"program"`

	// Dynamic is the usage of dynamic memory.
	Dynamic Usage `json:"dynamic"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performedSteps,omitempty"`

	// data is the raw image. It is consumed by the parse step and never serialized.
	data []byte
}

// NewReport creates an empty report for the given file.
func NewReport(file string) *Report {
	return &Report{
		File:     file,
		Segments: make([]Segment, 0),
		Program:  Usage{Category: CategoryProgram},
		Dynamic:  Usage{Category: CategoryDynamic},
	}
}

// SetData stores the raw image bytes for later pipeline steps.
func (r *Report) SetData(data []byte) {
	r.data = data
}

// Data returns the raw image bytes, or nil if the file was not loaded yet.
func (r *Report) Data() []byte {
	return r.data
}

// Exceeded reports whether either budget is exceeded.
func (r *Report) Exceeded() bool {
	return r.Program.Exceeded || r.Dynamic.Exceeded
}

// Usages returns the program and dynamic usages in report order.
func (r *Report) Usages() []Usage {
	return []Usage{r.Program, r.Dynamic}
}
