package detect

import "testing"

func TestSniff_MessageArray(t *testing.T) {
	input := `[{"type":"error","module":"pkg.web","symbol":"undefined-variable"}]`
	if got := Sniff([]byte(input)); got != MessageArray {
		t.Errorf("expected MessageArray, got %d", got)
	}
}

func TestSniff_EmptyMessageArray(t *testing.T) {
	if got := Sniff([]byte("[]")); got != MessageArray {
		t.Errorf("expected MessageArray for empty array, got %d", got)
	}
}

func TestSniff_SARIF(t *testing.T) {
	input := `{"version":"2.1.0","$schema":"https://sarif.dev","runs":[{"tool":{"driver":{"name":"test"}},"results":[]}]}`
	if got := Sniff([]byte(input)); got != SARIF {
		t.Errorf("expected SARIF, got %d", got)
	}
}

func TestSniff_ReportDocument(t *testing.T) {
	input := `{"messages":[],"stats":{"by_module":{},"statement":10}}`
	if got := Sniff([]byte(input)); got != ReportDocument {
		t.Errorf("expected ReportDocument, got %d", got)
	}
}

func TestSniff_ReportDocumentWithStatsOnly(t *testing.T) {
	input := `{"stats":{"statement":10}}`
	if got := Sniff([]byte(input)); got != ReportDocument {
		t.Errorf("expected ReportDocument with stats only, got %d", got)
	}
}

func TestSniff_Empty(t *testing.T) {
	if got := Sniff([]byte("")); got != Unknown {
		t.Errorf("expected Unknown for empty, got %d", got)
	}
}

func TestSniff_PlainText(t *testing.T) {
	if got := Sniff([]byte("this is not json")); got != Unknown {
		t.Errorf("expected Unknown for plain text, got %d", got)
	}
}

func TestSniff_InvalidJSON(t *testing.T) {
	if got := Sniff([]byte("{invalid")); got != Unknown {
		t.Errorf("expected Unknown for invalid JSON, got %d", got)
	}
}

func TestSniff_LeadingWhitespace(t *testing.T) {
	input := "  \n\t" + `[{"type":"warning"}]`
	if got := Sniff([]byte(input)); got != MessageArray {
		t.Errorf("expected MessageArray with leading whitespace, got %d", got)
	}
}

func TestSniff_UnrelatedObject(t *testing.T) {
	input := `{"name":"something","value":42}`
	if got := Sniff([]byte(input)); got != Unknown {
		t.Errorf("expected Unknown for unrelated object, got %d", got)
	}
}

func TestSniff_SARIFBeatsReportDocument(t *testing.T) {
	// A document carrying both marker sets is treated as SARIF; the
	// version+runs pair is the more specific signature.
	input := `{"version":"2.1.0","runs":[],"messages":[]}`
	if got := Sniff([]byte(input)); got != SARIF {
		t.Errorf("expected SARIF when both marker sets present, got %d", got)
	}
}
