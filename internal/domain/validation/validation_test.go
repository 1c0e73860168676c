package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#0a0a0b"))
	assert.True(t, IsHexColor("#FFF"))
	assert.False(t, IsHexColor("0a0a0b"))
	assert.False(t, IsHexColor("#12345"))
	assert.False(t, IsHexColor("#gggggg"))
}

func TestValidatePaletteHex(t *testing.T) {
	errs := ValidatePaletteHex("appearance.dark_palette",
		PaletteField{Name: "background", Value: "#000000"},
		PaletteField{Name: "text", Value: "white"},
	)
	assert.Equal(t, []string{"appearance.dark_palette.text must be a hex color like #RRGGBB (got: white)"}, errs)
}

func TestValidateClassName(t *testing.T) {
	assert.Empty(t, ValidateClassName("c", "dark"))
	assert.Empty(t, ValidateClassName("c", "theme-dark_2"))
	assert.Len(t, ValidateClassName("c", ""), 1)
	assert.Len(t, ValidateClassName("c", "2dark"), 1)
	assert.Len(t, ValidateClassName("c", "dark mode"), 1)
	assert.Len(t, ValidateClassName("c", ".dark"), 1)
}

func TestValidateStorageKey(t *testing.T) {
	assert.Empty(t, ValidateStorageKey("k", "dark-mode"))
	assert.Len(t, ValidateStorageKey("k", "  "), 1)
	assert.Len(t, ValidateStorageKey("k", "a\nb"), 1)
}
