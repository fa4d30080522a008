package optioneer

import (
	"errors"
	"testing"
)

func TestParsePathValid(t *testing.T) {
	cases := []struct {
		text     string
		segments int
	}{
		{"display", 1},
		{"display.width", 2},
		{"io.excel.max_rows", 3},
		{"_private.x1", 2},
	}
	for _, tc := range cases {
		path, err := ParsePath(tc.text)
		if err != nil {
			t.Fatalf("ParsePath(%q): unexpected error %v", tc.text, err)
		}
		if path.Len() != tc.segments {
			t.Fatalf("ParsePath(%q): expected %d segments, got %d", tc.text, tc.segments, path.Len())
		}
		if path.String() != tc.text {
			t.Fatalf("ParsePath(%q): round-trip produced %q", tc.text, path.String())
		}
	}
}

func TestParsePathInvalid(t *testing.T) {
	cases := []string{
		"",
		".",
		"display.",
		".width",
		"display..width",
		"Display.width",
		"display.wi dth",
		"display.wi-dth",
		"1display",
		"display.1width",
	}
	for _, text := range cases {
		if _, err := ParsePath(text); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("ParsePath(%q): expected ErrInvalidPath, got %v", text, err)
		}
	}
}

func TestPathPrefixAndEquality(t *testing.T) {
	display := MustParsePath("display")
	width := MustParsePath("display.width")
	dis := MustParsePath("dis")

	if !display.IsPrefixOf(width) {
		t.Fatalf("expected %q to be prefix of %q", display, width)
	}
	if width.IsPrefixOf(display) {
		t.Fatalf("did not expect %q to be prefix of %q", width, display)
	}
	if dis.IsPrefixOf(width) {
		t.Fatalf("prefix must be segment-wise, not textual: %q vs %q", dis, width)
	}
	if !width.IsPrefixOf(width) {
		t.Fatalf("a path should be a prefix of itself")
	}
	if (Path{}).IsPrefixOf(width) != true {
		t.Fatalf("root path should be a prefix of everything")
	}
	if !width.Equal(MustParsePath("display.width")) {
		t.Fatalf("expected segment-wise equality")
	}
	if width.Equal(display) {
		t.Fatalf("unexpected equality between %q and %q", width, display)
	}
}

func TestPathJoinAndExtend(t *testing.T) {
	root := Path{}
	display := root.Join("display")
	width := display.Join("width")
	if width.String() != "display.width" {
		t.Fatalf("expected display.width, got %q", width)
	}

	extended := display.Extend(MustParsePath("color.depth"))
	if extended.String() != "display.color.depth" {
		t.Fatalf("expected display.color.depth, got %q", extended)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Join to panic on invalid segment")
		}
	}()
	root.Join("Not Valid")
}

func TestMustParsePathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustParsePath to panic")
		}
	}()
	MustParsePath("..")
}
