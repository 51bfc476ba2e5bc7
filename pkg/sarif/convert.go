package sarif

import (
	"path"
	"strings"

	"github.com/dkoosis/lintreport/pkg/reporter"
	"github.com/dkoosis/lintreport/pkg/reportjson"
)

// Events flattens every run of a SARIF document into collector events in
// document order. The module name is derived from the finding's file path
// the way the host linter names modules: path separators become dots and
// the extension is dropped.
func Events(doc *Document) []reporter.Event {
	var events []reporter.Event
	for _, run := range doc.Runs {
		for _, res := range run.Results {
			e := reporter.Event{
				Category: levelCategory(res.Level),
				Symbol:   res.RuleID,
				Text:     res.Message.Text,
			}
			if len(res.Locations) > 0 {
				loc := res.Locations[0].PhysicalLocation
				e.Path = loc.ArtifactLocation.URI
				e.Line = loc.Region.StartLine
				e.Column = loc.Region.StartColumn
			}
			e.Module = moduleFromPath(e.Path)
			events = append(events, e)
		}
	}
	return events
}

// levelCategory maps a SARIF level onto a diagnostic category. "note" and
// "none" results are informational and carry no score weight; an absent
// level means "warning", matching the SARIF default.
func levelCategory(level string) string {
	switch level {
	case "error":
		return reportjson.CategoryError
	case "note", "none":
		return reportjson.CategoryInfo
	default:
		return reportjson.CategoryWarning
	}
}

func moduleFromPath(uri string) string {
	p := strings.TrimPrefix(uri, "file://")
	p = strings.TrimSuffix(p, path.Ext(p))
	p = strings.Trim(p, "/")
	p = strings.TrimPrefix(p, "./")
	if p == "" {
		return "unknown"
	}
	return strings.ReplaceAll(p, "/", ".")
}
