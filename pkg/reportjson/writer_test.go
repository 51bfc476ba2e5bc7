package reportjson

import (
	"strings"
	"testing"
)

func TestWrite_NilMessagesBecomeEmptyArray(t *testing.T) {
	var buf strings.Builder
	if err := Write(&buf, &Document{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"messages": []`) {
		t.Errorf("expected empty messages array, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), `"previous_stats"`) {
		t.Error("previous_stats should be omitted when nil")
	}
}

func TestWrite_ReadRoundTripKeepsModuleOrder(t *testing.T) {
	doc := &Document{}
	doc.Stats.Statement = 7
	doc.Stats.ByModule.Set("pkg.z", ModuleCounts{Warning: 1})
	doc.Stats.ByModule.Set("pkg.a", ModuleCounts{Error: 2})
	doc.Stats.ByModule.Set("pkg.m", ModuleCounts{})

	var buf strings.Builder
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	back, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	got := back.Stats.ByModule.Modules()
	want := []string{"pkg.z", "pkg.a", "pkg.m"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("module order changed on round trip: expected %v, got %v", want, got)
		}
	}
}

func TestWrite_PreviousStatsSerialized(t *testing.T) {
	prev := &Stats{Statement: 3, Error: 1}
	doc := &Document{Stats: Stats{Statement: 3}, PreviousStats: prev}

	var buf strings.Builder
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"previous_stats"`) {
		t.Errorf("expected previous_stats in output, got:\n%s", buf.String())
	}
}

func TestWrite_DoesNotEscapeEntities(t *testing.T) {
	doc := &Document{Messages: []Message{{Module: "m", Text: "Redefining name &#x27;x&#x27; from line 2"}}}

	var buf strings.Builder
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "&#x27;x&#x27;") {
		t.Errorf("expected escaped entities to pass through verbatim, got:\n%s", buf.String())
	}
}

func TestWrite_DependenciesSortedDeterministically(t *testing.T) {
	doc := &Document{}
	doc.Stats.Dependencies = map[string]StringSet{
		"pkg.a": NewStringSet("os", "collections", "sys"),
	}

	var buf strings.Builder
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	collections := strings.Index(out, `"collections"`)
	osIdx := strings.Index(out, `"os"`)
	sysIdx := strings.Index(out, `"sys"`)
	if collections == -1 || osIdx == -1 || sysIdx == -1 {
		t.Fatalf("expected all dependencies in output, got:\n%s", out)
	}
	if !(collections < osIdx && osIdx < sysIdx) {
		t.Errorf("expected sorted dependency order, got:\n%s", out)
	}
}
