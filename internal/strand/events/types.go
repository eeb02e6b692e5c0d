package events

import "encoding/json"

type Envelope struct {
	Type string          `json:"type"` // e.g. "artifact_minted"
	TS   int64           `json:"ts"`   // unix milli
	Data json.RawMessage `json:"data"`
}

const TypeArtifactMinted = "artifact_minted"

// ArtifactMinted announces one exported artifact to downstream indexers.
// Seed is decimal-encoded; the payload carries enough to recompute and
// verify the artifact independently.
type ArtifactMinted struct {
	Seed      string   `json:"seed"`
	Scope     string   `json:"scope"`
	StepCount int64    `json:"step_count"`
	Padding   int64    `json:"padding"`
	Sharpness int64    `json:"sharpness"`
	Minted    []bool   `json:"minted"`
	Colors    []string `json:"colors"`
	SVGBytes  int      `json:"svg_bytes"`
}
