package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color written as "#RRGGBB" or "#RRGGBBAA".
type Color color.RGBA

// ParseColor parses a hex color. The leading '#' is optional and a missing
// alpha channel means opaque.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := Color{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// RGBA returns c as an image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
