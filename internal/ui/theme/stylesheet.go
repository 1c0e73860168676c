package theme

import (
	"fmt"
	"strings"
	"time"
)

// Stylesheet returns CSS declaring the palette custom properties under each
// marker class. The light palette also applies to :root so unmarked pages
// render light; the dark rule comes last and wins when both match.
func Stylesheet(classLight, classDark string, light, dark Palette) string {
	var sb strings.Builder
	sb.WriteString(":root,\n." + classLight + " {\n")
	sb.WriteString("  color-scheme: light;\n")
	sb.WriteString(light.cssVars())
	sb.WriteString("}\n\n")
	sb.WriteString("." + classDark + " {\n")
	sb.WriteString("  color-scheme: dark;\n")
	sb.WriteString(dark.cssVars())
	sb.WriteString("}\n")
	return sb.String()
}

// TransitionCSS returns a rule animating color changes for d while the
// host sets transitionClass during a mode change. A zero duration yields
// no rule.
func TransitionCSS(transitionClass string, d time.Duration) string {
	if d <= 0 || transitionClass == "" {
		return ""
	}
	ms := d.Milliseconds()
	return fmt.Sprintf(`.%[1]s,
.%[1]s * {
  transition: background-color %[2]dms ease, color %[2]dms ease, border-color %[2]dms ease;
}
`, transitionClass, ms)
}
