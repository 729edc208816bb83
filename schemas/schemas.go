// Package schemas carries the embedded JSON Schemas for loanlens file
// formats.
package schemas

import _ "embed"

// ReportSchemaJSON is the JSON Schema for evaluation report files.
//
//go:embed report.schema.json
var ReportSchemaJSON string
