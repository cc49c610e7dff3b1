package planar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// LoadPaletteFile reads a YAML palette from the given path and registers
// every named color it defines. See LoadPalette for the format.
func LoadPaletteFile(path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("planar: open palette: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadPalette(f)
}

// LoadPalette reads a YAML palette and registers every named color it
// defines. The document is a mapping from color name to either a hex
// string or a 3/4-element channel list:
//
//	ink: "#1a1a2e"
//	paper: "fffff0"
//	accent: [230, 57, 70]
//	glass: [255, 255, 255, 96]
//
// Every valid entry is registered even when other entries are malformed;
// the malformed ones are reported together in the combined error, each
// wrapping ErrInvalidColorSpec.
func LoadPalette(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("planar: read palette: %w", err)
	}

	var entries map[string]any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("planar: parse palette: %w", err)
	}

	// Deterministic registration and error order.
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs error
	for _, name := range names {
		c, err := paletteColor(entries[name])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("palette entry %q: %w", name, err))
			continue
		}
		registry.mu.Lock()
		registry.byName[strings.ToLower(name)] = c
		registry.mu.Unlock()
	}
	return errs
}

// paletteColor resolves a single decoded YAML value into a canonical color.
func paletteColor(v any) (*Color, error) {
	switch val := v.(type) {
	case string:
		return ParseHex(val)
	case []any:
		if len(val) != 3 && len(val) != 4 {
			return nil, fmt.Errorf("%w: want 3 or 4 channels, got %d", ErrInvalidColorSpec, len(val))
		}
		channels := [4]uint8{0, 0, 0, 255}
		for i, item := range val {
			n, ok := item.(int)
			if !ok || n < 0 || n > 255 {
				return nil, fmt.Errorf("%w: channel %d is not an integer in [0, 255]", ErrInvalidColorSpec, i)
			}
			channels[i] = uint8(n)
		}
		return intern(channels[0], channels[1], channels[2], channels[3]), nil
	default:
		return nil, fmt.Errorf("%w: unsupported entry type %T", ErrInvalidColorSpec, v)
	}
}
