package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/rlocus/internal/analysis"
)

// Document is the JSON export of a report. Unlike the stored metadata it
// carries the locus samples inline.
type Document struct {
	*analysis.Report
	Locus []analysis.Point `json:"locus"`
}

func WriteJSON(w io.Writer, r *analysis.Report) error {
	doc := Document{Report: r, Locus: r.Locus}
	if doc.Locus == nil {
		doc.Locus = []analysis.Point{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
