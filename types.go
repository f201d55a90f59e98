// Package vcqc aggregates per-sample JSON quality-control output from the
// variant-calling pipeline into per-sample summary rows and per-metric
// detail tables.
package vcqc

import (
	"github.com/ousamg/vcqc/internal/report"
	"github.com/ousamg/vcqc/internal/types"
)

// Aliases for the types crossing the public API boundary, so callers can
// name them without reaching into internal packages.
type (
	// File is a discovered pipeline log: storage path plus raw JSON body.
	File = types.File

	// Sections is the decoded content of one log file.
	Sections = types.Sections

	// Source is one entry of the data-source provenance manifest.
	Source = types.Source

	// Report is the collaborator-facing output of one aggregation run.
	Report = report.Report
)
