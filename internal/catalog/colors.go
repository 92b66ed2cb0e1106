package catalog

import (
	"strings"

	"github.com/alimikegami/point-of-sales/store-admin/internal/domain"
)

var colorCodes = map[string]string{
	"black":  "#000000",
	"white":  "#FFFFFF",
	"red":    "#FF0000",
	"maroon": "#800000",
	"pink":   "#FFC0CB",
	"orange": "#FFA500",
	"yellow": "#FFFF00",
	"gold":   "#FFD700",
	"green":  "#008000",
	"olive":  "#808000",
	"blue":   "#0000FF",
	"navy":   "#000080",
	"purple": "#800080",
	"brown":  "#A52A2A",
	"beige":  "#F5F5DC",
	"grey":   "#808080",
	"gray":   "#808080",
	"silver": "#C0C0C0",
}

// ColorCode returns the hex code for a color name, or "" when unknown.
func ColorCode(name string) string {
	return colorCodes[strings.ToLower(strings.TrimSpace(name))]
}

// NormalizeColors converts colors stored as bare strings into {name, code}
// pairs and drops legacy entries without a name. Entries already in
// document form are kept as they are.
func NormalizeColors(colors []domain.Color) ([]domain.Color, bool) {
	changed := false
	out := make([]domain.Color, 0, len(colors))
	for _, c := range colors {
		if c.Legacy {
			changed = true
			name := strings.TrimSpace(c.Name)
			if name == "" {
				continue
			}
			c = domain.Color{Name: name, Code: ColorCode(name)}
		}
		out = append(out, c)
	}

	if !changed {
		return colors, false
	}

	return out, true
}
