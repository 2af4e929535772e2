package dialog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// Wide returns the channels scaled to 16 bits (x257).
func (c RGB) Wide() (r, g, b uint16) {
	return uint16(c.R) * 257, uint16(c.G) * 257, uint16(c.B) * 257
}

// FromWide builds an RGB from 16-bit channels by integer division by 257.
func FromWide(r, g, b uint16) RGB {
	return RGB{R: uint8(r / 257), G: uint8(g / 257), B: uint8(b / 257)}
}

// FromUnit converts toolkit channels in [0,1] to 8 bits, clamping out of
// range values and rounding to nearest.
func FromUnit(r, g, b float64) RGB {
	return RGB{R: unitChannel(r), G: unitChannel(g), B: unitChannel(b)}
}

// Unit returns the channels as fractions in [0,1].
func (c RGB) Unit() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func unitChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Min(math.Max(v, 0), 1)
	return uint8(math.Round(v * 255))
}

// ParseHex decodes #RRGGBB or #RRGGBBAA; the leading # is optional and the
// alpha pair, when present, must be valid but is ignored. Surrounding
// whitespace, such as a helper's trailing newline, is tolerated.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return RGB{}, false
	}
	var ch [4]uint8
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// ParseColor decodes either rgb(r,g,b) with decimal 8-bit channels or any
// form accepted by ParseHex.
func ParseColor(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(s, "rgb("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return RGB{}, false
		}
		ch, ok := parseTriple(inner, 8)
		if !ok {
			return RGB{}, false
		}
		return RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}, true
	}
	return ParseHex(s)
}

// ParseWideTriple decodes "r,g,b" with 16-bit decimal channels and scales
// the result down to 8 bits.
func ParseWideTriple(s string) (RGB, bool) {
	ch, ok := parseTriple(strings.TrimSpace(s), 16)
	if !ok {
		return RGB{}, false
	}
	return FromWide(uint16(ch[0]), uint16(ch[1]), uint16(ch[2])), true
}

func parseTriple(s string, bits int) ([3]uint64, bool) {
	var out [3]uint64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, bits)
		if err != nil {
			return out, false
		}
		out[i] = v
	}
	return out, true
}
