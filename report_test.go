package optioneer

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestReportRenderingIsStable(t *testing.T) {
	registry := New()
	registry.MustRegister("display.width", 200, WithDoc("Width"))
	registry.MustRegister("display.height", 100)
	registry.MustRegister("io.buffer", 4096, WithDoc("Read buffer size in bytes"))

	first, err := registry.Describe("")
	if err != nil {
		t.Fatalf("unexpected describe error: %v", err)
	}
	second, err := registry.Describe("")
	if err != nil {
		t.Fatalf("unexpected describe error: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("repeated describes without mutation must render byte-identically")
	}

	if err := registry.Set("display.width", 300); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	third, err := registry.Describe("")
	if err != nil {
		t.Fatalf("unexpected describe error: %v", err)
	}
	if first.String() == third.String() {
		t.Fatalf("report must change when a value changes")
	}
	if !strings.Contains(third.String(), "[currently: 300]") {
		t.Fatalf("report must include the new value:\n%s", third.String())
	}
}

func TestReportFallbackDescription(t *testing.T) {
	registry := New()
	registry.MustRegister("undocumented", true)
	report, err := registry.Describe("")
	if err != nil {
		t.Fatalf("unexpected describe error: %v", err)
	}
	want := "undocumented: No description available.\n    [default: true] [currently: true]"
	if report.String() != want {
		t.Fatalf("unexpected rendering:\n%s\nwant:\n%s", report.String(), want)
	}
	if report.Entries[0].Doc != "" {
		t.Fatalf("the fallback is a rendering concern, not stored state")
	}
}

func TestReportEncodings(t *testing.T) {
	registry := New()
	registry.MustRegister("display.width", 200, WithDoc("Width"))
	report, err := registry.Describe("")
	if err != nil {
		t.Fatalf("unexpected describe error: %v", err)
	}

	payload, err := report.ToJSON()
	if err != nil {
		t.Fatalf("unexpected json error: %v", err)
	}
	if !strings.Contains(string(payload), `"path":"display.width"`) {
		t.Fatalf("unexpected json payload: %s", payload)
	}

	doc, err := report.ToYAML()
	if err != nil {
		t.Fatalf("unexpected yaml error: %v", err)
	}
	var decoded Report
	if err := yaml.Unmarshal(doc, &decoded); err != nil {
		t.Fatalf("yaml round-trip failed: %v", err)
	}
	if len(decoded.Entries) != 1 || decoded.Entries[0].Path != "display.width" {
		t.Fatalf("unexpected decoded report %+v", decoded)
	}
}

func TestSchemaDescriptors(t *testing.T) {
	registry := New()
	registry.MustRegister("display.width", 200, WithDoc("Width"))
	registry.MustRegister("display.label", "main")
	registry.MustRegister("old", 1)
	if err := registry.Deprecate("old"); err != nil {
		t.Fatalf("unexpected deprecate error: %v", err)
	}

	descriptors := registry.Schema()
	if len(descriptors) != 2 {
		t.Fatalf("deprecated options must be excluded, got %+v", descriptors)
	}
	if descriptors[0].Path != "display.label" || descriptors[0].Type != "string" {
		t.Fatalf("unexpected descriptor %+v", descriptors[0])
	}
	if descriptors[1].Path != "display.width" || descriptors[1].Type != "int" || descriptors[1].Doc != "Width" {
		t.Fatalf("unexpected descriptor %+v", descriptors[1])
	}
}
