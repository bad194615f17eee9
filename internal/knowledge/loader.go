// Package knowledge provides the document knowledge base consumed by the
// prompt compiler: a summary of what the loaded material covers and the
// CIM sections it cannot yet support.
package knowledge

// DataGaps lists CIM sections the knowledge base cannot support and what
// to collect to close each gap.
type DataGaps struct {
	MissingSections []string
	Recommendations []string
}

// Loader exposes the knowledge base to the prompt compiler. Implementations
// must be safe to call repeatedly; the compiler invokes them on every prompt
// build while knowledge is loaded.
type Loader interface {
	// DataSummary returns a readable summary of the loaded material.
	DataSummary() string

	// DataGaps reports which CIM sections lack supporting material.
	DataGaps() DataGaps
}
