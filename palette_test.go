package planar

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestLoadPalette(t *testing.T) {
	doc := `
ink: "#1a1a2e"
paper: "fffff0"
accent: [230, 57, 70]
glass: [255, 255, 255, 96]
`
	if err := LoadPalette(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}

	tests := []struct {
		name string
		want *Color
	}{
		{"ink", RGB(0x1a, 0x1a, 0x2e)},
		{"paper", RGB(0xff, 0xff, 0xf0)},
		{"accent", RGB(230, 57, 70)},
		{"glass", RGBA(255, 255, 255, 96)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Named(tt.name)
			if err != nil {
				t.Fatalf("Named(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Named(%q) = %v, want canonical %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoadPalette_PartialFailure(t *testing.T) {
	doc := `
good: "#010203"
badhex: "#zzz"
badlen: [1, 2]
badtype: true
alsogood: [4, 5, 6]
`
	err := LoadPalette(strings.NewReader(doc))
	if err == nil {
		t.Fatal("LoadPalette succeeded with malformed entries")
	}
	if !errors.Is(err, ErrInvalidColorSpec) {
		t.Errorf("error = %v, want ErrInvalidColorSpec in the chain", err)
	}
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("got %d aggregated errors, want 3: %v", got, err)
	}

	// Valid entries registered despite the failures.
	for name, want := range map[string]*Color{
		"good":     RGB(1, 2, 3),
		"alsogood": RGB(4, 5, 6),
	} {
		got, err := Named(name)
		if err != nil {
			t.Errorf("Named(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("Named(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLoadPalette_BadDocument(t *testing.T) {
	if err := LoadPalette(strings.NewReader(":\n :")); err == nil {
		t.Fatal("LoadPalette accepted an unparsable document")
	}
}

func TestLoadPalette_ChannelRange(t *testing.T) {
	err := LoadPalette(strings.NewReader("hot: [300, 0, 0]"))
	if !errors.Is(err, ErrInvalidColorSpec) {
		t.Errorf("error = %v, want ErrInvalidColorSpec", err)
	}
}
