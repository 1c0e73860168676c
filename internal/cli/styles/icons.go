package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconMoon     = "" // moon
	IconSun      = "" // sun
	IconDesktop  = "" // desktop
	IconDatabase = "" // database
	IconConfig   = "" // config
	IconCheck    = "" // check
	IconX        = "" // x
	IconClock    = "" // clock
)

// ModeIcon returns the moon or sun icon.
func ModeIcon(isDark bool) string {
	if isDark {
		return IconMoon
	}
	return IconSun
}
