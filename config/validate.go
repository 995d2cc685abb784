package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks c against its struct tags. All findings are joined into a
// single message wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// formatFieldError renders one finding with the dotted config key.
func formatFieldError(fe validator.FieldError) string {
	key := configKey(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", key)
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got %v)", key, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", key, fe.Param(), fe.Value())
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port (got %q)", key, fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", key)
	}
}

// configKey maps "Config.Solver.MaxRepairRounds" to "solver.max_repair_rounds".
func configKey(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}

	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}

	return b.String()
}
