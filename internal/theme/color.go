package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBToHex converts an "r, g, b" triplet to "#RRGGBB".
// Example: "10, 10, 20" -> "#0A0A14"
func RGBToHex(triplet string) (string, error) {
	parts := strings.Split(triplet, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("expected 3 components in %q", triplet)
	}

	var rgb [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return "", fmt.Errorf("failed to parse color component %q: %w", part, err)
		}
		rgb[i] = uint8(v)
	}

	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2]), nil
}

// toHex is RGBToHex for the built-in palettes, which are always valid.
func toHex(triplet string) string {
	hex, err := RGBToHex(triplet)
	if err != nil {
		return ""
	}
	return hex
}
