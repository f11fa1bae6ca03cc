// Package types provides type definitions for the documents and results exchanged by the resume analysers.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedDocument is the output of document extraction and the input to every analyser.
type ParsedDocument struct {
	Text      string `json:"text"`
	HasImages bool   `json:"has_images"`
	PageCount *int   `json:"page_count"` // nil when the format has no page model
}

// PageCountOrZero returns the page count, or 0 when it is unknown.
func (d ParsedDocument) PageCountOrZero() int {
	if d.PageCount == nil {
		return 0
	}
	return *d.PageCount
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
