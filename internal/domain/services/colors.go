package services

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHexColor returns the R, G, B channels of a "#rgb" or "#rrggbb" color.
// Three-digit colors expand by doubling each digit. Unparseable channels
// read as zero, mirroring how the site has always treated bad theme colors.
func parseHexColor(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0
	}
	parse := func(s string) int {
		v, err := strconv.ParseInt(s, 16, 32)
		if err != nil {
			return 0
		}
		return int(v)
	}
	return parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
}

// ContrastOf picks a readable foreground color for text drawn over the given
// background, using the YIQ luminance heuristic.
func ContrastOf(hex string) string {
	r, g, b := parseHexColor(hex)
	yiq := (r*299 + g*587 + b*114) / 1000
	if yiq >= 150 {
		return "black"
	}
	return "white"
}

// Darken returns the color with every channel scaled to 75%, preserving the
// leading "#" of the input.
func Darken(hex string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(trimmed) != 3 && len(trimmed) != 6 {
		return hex
	}
	r, g, b := parseHexColor(hex)
	darkened := fmt.Sprintf("%02x%02x%02x", r*3/4, g*3/4, b*3/4)
	if strings.HasPrefix(strings.TrimSpace(hex), "#") {
		return "#" + darkened
	}
	return darkened
}
