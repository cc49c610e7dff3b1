package planar

import (
	"fmt"
	"strings"
	"sync"
)

// registry is the process-wide color canonicalization table. It maps each
// channel tuple to its unique shared instance and each registered name to
// its canonical color. Entries are created on first request and retained
// for the process lifetime; the value space is large but sparse in practice.
var registry = struct {
	mu      sync.RWMutex
	byTuple map[[4]uint8]*Color
	byName  map[string]*Color
}{
	byTuple: make(map[[4]uint8]*Color),
	byName:  make(map[string]*Color),
}

// Pre-seeded named colors. Each variable is the canonical instance for its
// tuple, so planar.White == planar.RGB(255, 255, 255).
var (
	White = mustRegister("white", 255, 255, 255, 255)
	Black = mustRegister("black", 0, 0, 0, 255)
	Red   = mustRegister("red", 255, 0, 0, 255)
	Green = mustRegister("green", 0, 255, 0, 255)
	Blue  = mustRegister("blue", 0, 0, 255, 255)

	Transparent = RGBA(0, 0, 0, 0)
)

// intern returns the canonical instance for the given channel tuple,
// creating and caching it on first request.
func intern(r, g, b, a uint8) *Color {
	key := [4]uint8{r, g, b, a}

	registry.mu.RLock()
	c, ok := registry.byTuple[key]
	registry.mu.RUnlock()
	if ok {
		return c
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	// Re-check after acquiring the write lock.
	if c, ok := registry.byTuple[key]; ok {
		return c
	}
	c = &Color{r: r, g: g, b: b, a: a}
	registry.byTuple[key] = c
	return c
}

// Named returns the canonical color registered under the given name.
// Names are case-insensitive. Unknown names fail with ErrInvalidColorSpec.
func Named(name string) (*Color, error) {
	registry.mu.RLock()
	c, ok := registry.byName[strings.ToLower(name)]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown color name %q", ErrInvalidColorSpec, name)
	}
	return c, nil
}

// RegisterName binds a name to the canonical color for the given channels
// and returns that color. Re-registering a name overwrites the binding.
func RegisterName(name string, r, g, b, a uint8) *Color {
	c := intern(r, g, b, a)
	registry.mu.Lock()
	registry.byName[strings.ToLower(name)] = c
	registry.mu.Unlock()
	return c
}

func mustRegister(name string, r, g, b, a uint8) *Color {
	return RegisterName(name, r, g, b, a)
}

// ParseHex returns the canonical color for a hex string.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an
// optional leading '#'. Malformed strings fail with ErrInvalidColorSpec.
func ParseHex(hex string) (*Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var fields [4]uint32
	fields[3] = 255
	var width int

	switch len(s) {
	case 3, 4: // RGB, RGBA: one digit per channel
		width = 1
	case 6, 8: // RRGGBB, RRGGBBAA: two digits per channel
		width = 2
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColorSpec, hex)
	}

	for i := 0; i*width < len(s); i++ {
		v, err := parseHexField(s[i*width : (i+1)*width])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColorSpec, hex)
		}
		if width == 1 {
			v *= 17 // expand "f" to 0xff
		}
		fields[i] = v
	}

	return intern(uint8(fields[0]), uint8(fields[1]), uint8(fields[2]), uint8(fields[3])), nil
}

// parseHexField parses a 1- or 2-digit hex field.
func parseHexField(s string) (uint32, error) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
	}
	return val, nil
}
