// Package schemas holds the JSON Schema documents for the files the team maker reads and writes.
package schemas

import "embed"

// Schema file names
const (
	Roster             = "roster.schema.json"
	Teams              = "teams.schema.json"
	DistributionResult = "distribution_result.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
