package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "api.timeout_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid TUI themes
func ValidThemes() []string {
	return []string{"default", "mono"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateAPI validates the APIConfig
func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	if err := validateHTTPURL(c.API.BaseURL); err != "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: err,
		})
	}

	// The CDN may be empty, in which case image paths are shown as-is
	if c.API.CDNURL != "" {
		if err := validateHTTPURL(c.API.CDNURL); err != "" {
			errors = append(errors, ValidationError{
				Field:   "api.cdn_url",
				Value:   c.API.CDNURL,
				Message: err,
			})
		}
	}

	if c.API.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: "must be non-negative",
		})
	}

	const maxTimeoutSeconds = 300
	if c.API.TimeoutSeconds > maxTimeoutSeconds {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTimeoutSeconds),
		})
	}

	return errors
}

// validateServer validates the ServerConfig
func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if c.Server.Addr == "" {
		errors = append(errors, ValidationError{
			Field:   "server.addr",
			Value:   c.Server.Addr,
			Message: "must not be empty",
		})
	}

	if c.Server.Watch && c.Server.Catalog == "" {
		errors = append(errors, ValidationError{
			Field:   "server.watch",
			Value:   c.Server.Watch,
			Message: "requires server.catalog to be set",
		})
	}

	if c.Server.Catalog != "" {
		switch strings.ToLower(filepath.Ext(c.Server.Catalog)) {
		case ".yaml", ".yml", ".json":
		default:
			errors = append(errors, ValidationError{
				Field:   "server.catalog",
				Value:   c.Server.Catalog,
				Message: "must be a .yaml, .yml or .json file",
			})
		}
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.TUI.Currency) == "" {
		errors = append(errors, ValidationError{
			Field:   "tui.currency",
			Value:   c.TUI.Currency,
			Message: "must not be empty",
		})
	}

	// Card width validation (0 means use default, which is valid).
	// These values must match view.MinCardWidth and view.MaxCardWidth
	// (defined separately to avoid circular import).
	const minCardWidth = 20
	const maxCardWidth = 60
	if c.TUI.CardWidth != 0 {
		if c.TUI.CardWidth < minCardWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.card_width",
				Value:   c.TUI.CardWidth,
				Message: fmt.Sprintf("must be at least %d columns", minCardWidth),
			})
		}
		if c.TUI.CardWidth > maxCardWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.card_width",
				Value:   c.TUI.CardWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", maxCardWidth),
			})
		}
	}

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

// validateHTTPURL returns an error message, or "" when raw is an absolute http(s) URL.
func validateHTTPURL(raw string) string {
	if raw == "" {
		return "must not be empty"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "must use http or https"
	}
	if u.Host == "" {
		return "must include a host"
	}
	return ""
}
