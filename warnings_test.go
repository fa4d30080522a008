package optioneer

import "testing"

func TestGeneratedWarningMessages(t *testing.T) {
	cases := []struct {
		name string
		dep  Deprecation
		want string
	}{
		{
			name: "bare",
			dep:  Deprecation{},
			want: "'display.height' is deprecated",
		},
		{
			name: "removal version",
			dep:  Deprecation{RemovalVersion: "3.0"},
			want: "'display.height' is deprecated, removed in 3.0",
		},
		{
			name: "redirect",
			dep:  Deprecation{Redirect: MustParsePath("display.width")},
			want: "'display.height' is deprecated, use 'display.width' instead",
		},
		{
			name: "redirect and removal version",
			dep:  Deprecation{RemovalVersion: "3.0", Redirect: MustParsePath("display.width")},
			want: "'display.height' is deprecated, removed in 3.0, use 'display.width' instead",
		},
		{
			name: "explicit message wins",
			dep:  Deprecation{Message: "use the new thing", Redirect: MustParsePath("display.width")},
			want: "use the new thing",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dep := tc.dep
			node := &option{path: MustParsePath("display.height"), deprecation: &dep}
			warning := newWarning(node)
			if warning.Message != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, warning.Message)
			}
		})
	}
}

func TestWarningHandlerFuncAndCapture(t *testing.T) {
	var received []Warning
	handler := WarningHandlerFunc(func(warning Warning) {
		received = append(received, warning)
	})
	handler.HandleWarning(Warning{Path: "a"})
	if len(received) != 1 || received[0].Path != "a" {
		t.Fatalf("unexpected handler dispatch %+v", received)
	}

	capture := &CaptureWarnings{}
	capture.HandleWarning(Warning{Path: "b"})
	capture.HandleWarning(Warning{Path: "c"})
	if got := capture.Warnings(); len(got) != 2 {
		t.Fatalf("expected 2 captured warnings, got %d", len(got))
	}
	capture.Reset()
	if got := capture.Warnings(); len(got) != 0 {
		t.Fatalf("expected reset to clear warnings, got %d", len(got))
	}
}
