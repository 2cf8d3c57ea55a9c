package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Run is one persisted search invocation: its configuration, the result
// metrics, and the solution action names when one was found.
type Run struct {
	VersionedRecord
	ID           string   `json:"id"`
	CreatedAtUTC string   `json:"created_at_utc"`
	Map          string   `json:"map"`
	Algorithm    string   `json:"algorithm"`
	Heuristic    string   `json:"heuristic"`
	Solved       bool     `json:"solved"`
	Depth        int      `json:"d"`
	Cost         float64  `json:"g"`
	Expanded     int      `json:"expanded"`
	Generated    int      `json:"generated"`
	Actions      []string `json:"actions,omitempty"`
}

// SuiteSummary records one benchmark suite execution for listing.
type SuiteSummary struct {
	VersionedRecord
	ID           string   `json:"id"`
	CreatedAtUTC string   `json:"created_at_utc"`
	Name         string   `json:"name"`
	ResultsPath  string   `json:"results_path"`
	RunIDs       []string `json:"run_ids"`
}
