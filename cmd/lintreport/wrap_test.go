package main

import (
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lintreport/pkg/reportjson"
)

const rawMessages = `[
  {"type": "error", "module": "pkg.web", "obj": "fetch", "line": 12, "column": 4,
   "path": "pkg/web.py", "symbol": "undefined-variable",
   "message": "Undefined variable 'resp'", "message-id": "E0602"},
  {"type": "warning", "module": "pkg.web", "obj": "", "line": 1, "column": 0,
   "path": "pkg/web.py", "symbol": "unused-import",
   "message": "Unused import os", "message-id": "W0611"}
]`

func TestWrap_BuildsReportDocument_When_GivenRawMessageArray(t *testing.T) {
	isolate(t)

	out, err := runCommand(t, rawMessages, "wrap", "--statements", "50")
	require.NoError(t, err)

	doc, err := reportjson.Read(strings.NewReader(out))
	require.NoError(t, err)

	require.Len(t, doc.Messages, 2)
	assert.Equal(t, "undefined-variable", doc.Messages[0].Symbol)
	assert.Equal(t, 50, doc.Stats.Statement)
	assert.Equal(t, 1, doc.Stats.Error)
	assert.Equal(t, 1, doc.Stats.Warning)

	counts, ok := doc.Stats.ByModule.Get("pkg.web")
	require.True(t, ok)
	assert.Equal(t, 1, counts.Error)
	assert.Equal(t, 1, counts.Warning)
}

func TestWrap_EscapesMessageText_When_RawTextHasMarkup(t *testing.T) {
	isolate(t)

	out, err := runCommand(t, rawMessages, "wrap")
	require.NoError(t, err)

	doc, err := reportjson.Read(strings.NewReader(out))
	require.NoError(t, err)

	stored := doc.Messages[0].Text
	assert.NotContains(t, stored, "'")
	assert.Equal(t, "Undefined variable 'resp'", html.UnescapeString(stored))
}

func TestWrap_CarriesPreviousStats_When_PreviousFlagGiven(t *testing.T) {
	dir := isolate(t)
	prevPath := filepath.Join(dir, "previous.json")
	require.NoError(t, os.WriteFile(prevPath, []byte(scoredDoc), 0o644))

	out, err := runCommand(t, rawMessages, "wrap", "--statements", "50", "--previous", prevPath)
	require.NoError(t, err)

	doc, err := reportjson.Read(strings.NewReader(out))
	require.NoError(t, err)

	require.NotNil(t, doc.PreviousStats)
	assert.Equal(t, 100, doc.PreviousStats.Statement)
	assert.Equal(t, 1, doc.PreviousStats.Error)
}

func TestWrap_WritesOutputFile_When_OutputFlagSet(t *testing.T) {
	dir := isolate(t)
	outPath := filepath.Join(dir, "report.json")

	stdout, err := runCommand(t, rawMessages, "wrap", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	doc, err := reportjson.ReadFile(outPath)
	require.NoError(t, err)
	assert.Len(t, doc.Messages, 2)
}

func TestWrap_ReadsMessagesFromFile_When_ArgumentGiven(t *testing.T) {
	dir := isolate(t)
	inPath := filepath.Join(dir, "messages.json")
	require.NoError(t, os.WriteFile(inPath, []byte(rawMessages), 0o644))

	out, err := runCommand(t, "", "wrap", inPath)
	require.NoError(t, err)

	doc, err := reportjson.Read(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, doc.Messages, 2)
}

const sarifInput = `{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"ruff"}},"results":[
  {"ruleId":"F821","level":"error","message":{"text":"Undefined name 'resp'"},
   "locations":[{"physicalLocation":{"artifactLocation":{"uri":"pkg/web.py"},
   "region":{"startLine":12,"startColumn":4}}}]},
  {"ruleId":"E501","message":{"text":"Line too long"},
   "locations":[{"physicalLocation":{"artifactLocation":{"uri":"pkg/core.py"},
   "region":{"startLine":3,"startColumn":80}}}]}
]}]}`

func TestWrap_AcceptsSARIF_When_InputIsASARIFDocument(t *testing.T) {
	isolate(t)

	out, err := runCommand(t, sarifInput, "wrap", "--statements", "40")
	require.NoError(t, err)

	doc, err := reportjson.Read(strings.NewReader(out))
	require.NoError(t, err)

	require.Len(t, doc.Messages, 2)
	assert.Equal(t, "pkg.web", doc.Messages[0].Module)
	assert.Equal(t, "F821", doc.Messages[0].Symbol)
	assert.Equal(t, "error", doc.Messages[0].Category)
	assert.Equal(t, 12, doc.Messages[0].Line)
	assert.Equal(t, "Undefined name 'resp'", html.UnescapeString(doc.Messages[0].Text))
	assert.Equal(t, "warning", doc.Messages[1].Category, "absent SARIF level defaults to warning")
	assert.Equal(t, 1, doc.Stats.Error)
	assert.Equal(t, 1, doc.Stats.Warning)
	assert.Equal(t, 40, doc.Stats.Statement)
}

func TestWrap_Rejects_When_InputIsAlreadyAReportDocument(t *testing.T) {
	isolate(t)

	_, err := runCommand(t, scoredDoc, "wrap")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a report document")
}

func TestWrap_Fails_When_ReporterUnknown(t *testing.T) {
	isolate(t)

	_, err := runCommand(t, rawMessages, "wrap", "--reporter", "bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reporter")
}

func TestWrap_Fails_When_InputHasTrailingData(t *testing.T) {
	isolate(t)

	_, err := runCommand(t, rawMessages+" []", "wrap")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}

func TestWrap_EmitsEmptyDocument_When_NoMessages(t *testing.T) {
	isolate(t)

	out, err := runCommand(t, "[]", "wrap", "--statements", "10")
	require.NoError(t, err)

	doc, err := reportjson.Read(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, doc.Messages)
	assert.Equal(t, 10, doc.Stats.Statement)
	assert.Equal(t, 0, doc.Stats.ByModule.Len())
}