package diag

import (
	"encoding/json"
	"runtime"
	"time"
)

// Report is the structured dump attached to offline bug reports: the full
// in-memory snapshot, the recent diagnostic log, and basic environment info.
type Report struct {
	Snapshot  any     `json:"snapshot"`
	Logs      []Entry `json:"logs"`
	GoVersion string  `json:"goVersion"`
	OS        string  `json:"os"`
	Arch      string  `json:"arch"`
	Time      string  `json:"time"`
}

// BuildReport assembles a report from the given state snapshot and ring.
func BuildReport(snapshot any, ring *Ring) Report {
	return Report{
		Snapshot:  snapshot,
		Logs:      ring.Entries(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Time:      time.Now().UTC().Format(time.RFC3339),
	}
}

// MarshalIndent renders the report as pretty-printed JSON for download.
func (r Report) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
