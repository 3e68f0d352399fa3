// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outcome is the result of processing a single source location.
type Outcome string

const (
	// Loaded means the source was read, decoded and merged.
	Loaded Outcome = "loaded"

	// NotFound means the file, resource or URL does not exist.
	NotFound Outcome = "not_found"

	// Rejected means the location is not acceptable for its pass
	// (for example a non-HTTP string in the URL list) and was never opened.
	Rejected Outcome = "rejected"

	// Failed covers every other error: malformed paths, permissions,
	// transport errors, unexpected HTTP statuses and decode errors.
	Failed Outcome = "failed"
)

// ItemResult records what happened to one location of one pass.
type ItemResult struct {
	// Pass is the source kind the location was listed under.
	Pass SourceKind `json:"pass"`

	// Location is the entry exactly as listed, after trimming.
	Location string `json:"location"`

	// Resolved is the path or URL that was actually opened. It differs from
	// Location when a path prefix was applied.
	Resolved string `json:"resolved,omitempty"`

	Outcome Outcome `json:"outcome"`

	// Merged is the number of keys written to the configuration map.
	Merged int `json:"merged"`

	// Dropped is the number of environment-scoped keys that belonged to a
	// different deployment.
	Dropped int `json:"dropped"`

	// Error is the error text for NotFound, Rejected and Failed outcomes.
	Error string `json:"error,omitempty"`
}

// Report collects the per-item results of one merge run in processing
// order, which is also precedence order.
type Report struct {
	RunID        string       `json:"run_id"`
	DeploymentID string       `json:"deployment_id"`
	Items        []ItemResult `json:"items"`
}

// Add appends r to the report.
func (rep *Report) Add(r ItemResult) {
	rep.Items = append(rep.Items, r)
}

// LoadedCount returns how many sources were merged successfully.
func (rep Report) LoadedCount() int {
	n := 0
	for _, it := range rep.Items {
		if it.Outcome == Loaded {
			n++
		}
	}
	return n
}

// Problems returns every item whose outcome is not Loaded.
func (rep Report) Problems() []ItemResult {
	var out []ItemResult
	for _, it := range rep.Items {
		if it.Outcome != Loaded {
			out = append(out, it)
		}
	}
	return out
}

// ByPass returns the items of a single pass in processing order.
func (rep Report) ByPass(kind SourceKind) []ItemResult {
	var out []ItemResult
	for _, it := range rep.Items {
		if it.Pass == kind {
			out = append(out, it)
		}
	}
	return out
}
