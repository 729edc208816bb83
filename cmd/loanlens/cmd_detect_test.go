package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const foreclosureHeader = "Loan ID,Investor ID,FC Status,FC Jurisdiction,Active FC Days,Total FC Days,FC Atty POC,File Date\n"

func TestDetectCommand(t *testing.T) {
	path := writeCSV(t, "fc_tape.csv", foreclosureHeader+"1001,INV-1,Active,Judicial,45,120,Smith LLP,2021-03-01\n")

	cmd := newDetectCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	result := output.String()
	assert.Contains(t, result, "foreclosure_data")
	assert.Contains(t, result, "100.00%")
}

func TestDetectCommandUnknown(t *testing.T) {
	path := writeCSV(t, "mystery.csv", "Loan ID,Borrower Name\n1001,Jane Doe\n")

	cmd := newDetectCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "unknown")
}

func TestDetectCommandJSON(t *testing.T) {
	path := writeCSV(t, "fc_tape.csv", foreclosureHeader)

	cmd := newDetectCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{path, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var results []detection
	require.NoError(t, json.Unmarshal(output.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].FileName)
	assert.Equal(t, "foreclosure_data", results[0].Result.FileType)
	assert.InDelta(t, 100.0, results[0].Result.Confidence, 1e-9)
}

func TestDetectCommandParallel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.csv", "b.csv", "c.csv"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(foreclosureHeader), 0o644))
		paths = append(paths, p)
	}

	cmd := newDetectCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(append(append([]string{}, paths...), "--format", "json", "--parallel", "--workers", "2"))

	require.NoError(t, cmd.Execute())

	var results []detection
	require.NoError(t, json.Unmarshal(output.Bytes(), &results))
	require.Len(t, results, 3)
	// input order is preserved regardless of worker scheduling
	for i, p := range paths {
		assert.Equal(t, p, results[i].FileName)
		assert.Equal(t, "foreclosure_data", results[i].Result.FileType)
	}
}

func TestDetectCommandUnreadableFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")
	ok := writeCSV(t, "fc_tape.csv", foreclosureHeader)

	cmd := newDetectCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{missing, ok, "--format", "json"})

	// one bad file does not abort the batch
	require.NoError(t, cmd.Execute())

	var results []detection
	require.NoError(t, json.Unmarshal(output.Bytes(), &results))
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[0].Err)
	assert.Equal(t, "foreclosure_data", results[1].Result.FileType)
}

func TestDetectCommandInvalidFormat(t *testing.T) {
	cmd := newDetectCommand()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"whatever.csv", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
