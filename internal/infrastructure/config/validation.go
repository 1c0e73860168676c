package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/darkswitch/internal/domain/validation"
)

const maxTransitionDurationMs = 10000

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSwitch(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateSystem(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

func validateSwitch(config *Config) []string {
	var validationErrors []string
	s := config.Switch

	validationErrors = append(validationErrors, domainvalidation.ValidateStorageKey("switch.storage_key", s.StorageKey)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateClassName("switch.class_name_dark", s.ClassNameDark)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateClassName("switch.class_name_light", s.ClassNameLight)...)
	if s.ClassNameDark != "" && s.ClassNameDark == s.ClassNameLight {
		validationErrors = append(validationErrors, "switch.class_name_dark and switch.class_name_light must differ")
	}
	if s.TransitionDurationMs < 0 || s.TransitionDurationMs > maxTransitionDurationMs {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"switch.transition_duration_ms must be between 0 and %d (got: %d)",
			maxTransitionDurationMs, s.TransitionDurationMs,
		))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageJSON, StorageSQLite:
		if config.Storage.Path == "" {
			return []string{"storage.path cannot be empty for the " + string(config.Storage.Backend) + " backend"}
		}
		return nil
	case StorageMemory, StorageNone:
		return nil
	default:
		return []string{fmt.Sprintf(
			"storage.backend must be one of: json, sqlite, memory, none (got: %s)",
			config.Storage.Backend,
		)}
	}
}

func validateSystem(config *Config) []string {
	var validationErrors []string
	switch config.System.ColorScheme {
	case ColorSchemeDefault, ColorSchemePreferDark, ColorSchemePreferLight:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"system.color_scheme must be one of: prefer-dark, prefer-light, default (got: %s)",
			config.System.ColorScheme,
		))
	}
	if config.System.PollIntervalMs < 0 {
		validationErrors = append(validationErrors, "system.poll_interval_ms must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	return domainvalidation.ValidatePaletteHex(prefix,
		domainvalidation.PaletteField{Name: "background", Value: p.Background},
		domainvalidation.PaletteField{Name: "surface", Value: p.Surface},
		domainvalidation.PaletteField{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.PaletteField{Name: "text", Value: p.Text},
		domainvalidation.PaletteField{Name: "muted", Value: p.Muted},
		domainvalidation.PaletteField{Name: "accent", Value: p.Accent},
		domainvalidation.PaletteField{Name: "border", Value: p.Border},
	)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	l := config.Logging
	switch l.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			l.Level,
		))
	}
	switch l.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			l.Format,
		))
	}
	if l.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if l.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if l.EnableFileLog && l.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	return validationErrors
}
