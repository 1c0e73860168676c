package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value is #RGB or #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// PaletteField is one named color of a palette.
type PaletteField struct {
	Name  string
	Value string
}

// ValidatePaletteHex checks that every field holds a hex color.
func ValidatePaletteHex(prefix string, fields ...PaletteField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Name+" must be a hex color like #RRGGBB (got: "+f.Value+")")
		}
	}
	return errs
}
