package main

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ff3b30", color.NRGBA{255, 59, 48, 255}},
		{"#80ff0000", color.NRGBA{255, 0, 0, 128}},
		{"#00000000", color.NRGBA{0, 0, 0, 0}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{" #1a2 ", color.NRGBA{17, 170, 34, 255}},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseHexColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "000000", "#12345", "#gggggg", "#12"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", in)
		}
	}
}

func TestParseHexColors(t *testing.T) {
	cols, err := ParseHexColors("#000000, #ffffff ,#80ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 3 {
		t.Fatalf("len = %d, want 3", len(cols))
	}
	if cols[2] != (color.NRGBA{255, 0, 0, 128}) {
		t.Errorf("cols[2] = %v", cols[2])
	}

	if _, err := ParseHexColors("#000000,oops"); err == nil {
		t.Error("expected error for bad list entry")
	}
}
