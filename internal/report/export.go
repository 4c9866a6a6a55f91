package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-rocketry/internal/version"
)

// Export is the JSON document written by `ls-rocketry export`.
type Export struct {
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	Analysis
}

// NewExport wraps an analysis for serialization.
func NewExport(a Analysis, now time.Time) *Export {
	return &Export{Version: version.Version, GeneratedAt: now.UTC(), Analysis: a}
}

// WriteJSON writes the export as indented JSON to the given writer.
func (e *Export) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteEnginesJSON writes engine entries as indented JSON.
func WriteEnginesJSON(w io.Writer, entries []EngineEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
