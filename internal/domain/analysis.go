package domain

// Report is the semi-structured analysis payload returned by the
// reasoning model. Required sections are validated; any extra fields are
// passed through to the caller verbatim, so the shape stays map-based.
type Report map[string]interface{}

// PlausibilityVerdict summarizes how much of an ingredient list looks
// like OCR noise rather than real food terms.
type PlausibilityVerdict struct {
	Valid                bool     // false when >=50% of entries are unmatched
	SuspiciousCount      int      // unmatched entries longer than 3 chars
	SuspiciousExamples   []string // at most 5 examples
	Warnings             []string // human-readable notes for the analysis prompt
	ConfidenceAdjustment int      // 0, or -10 when more than 3 entries are suspicious
}

// ValidationOutcome is the result of checking a Report against the
// required-field schema.
type ValidationOutcome struct {
	Valid  bool
	Errors []string // field paths, e.g. "environmental.totalCO2"
}

// AnalysisInput carries everything the analysis prompt is built from.
type AnalysisInput struct {
	Ingredients []string
	Check       CheckRequest
	Warnings    []string
}
