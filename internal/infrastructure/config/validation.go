package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration, including
// cross-field constraints the tags cannot express.
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	if err := v.Validate(cfg); err != nil {
		return err
	}

	if cfg.Pricing.CeilingMultiplier <= cfg.Pricing.FloorMultiplier {
		return fmt.Errorf("pricing ceiling multiplier (%.2f) must exceed floor multiplier (%.2f)",
			cfg.Pricing.CeilingMultiplier, cfg.Pricing.FloorMultiplier)
	}
	if cfg.Pricing.CeilingOccupancy <= cfg.Pricing.FloorOccupancy {
		return fmt.Errorf("pricing ceiling occupancy (%.1f) must exceed floor occupancy (%.1f)",
			cfg.Pricing.CeilingOccupancy, cfg.Pricing.FloorOccupancy)
	}

	weightSum := cfg.Pricing.Weights.WeekdayAvg + cfg.Pricing.Weights.Trend +
		cfg.Pricing.Weights.Seasonality + cfg.Pricing.Weights.Event +
		cfg.Pricing.Weights.BookingPace
	if weightSum <= 0 {
		return fmt.Errorf("demand weights must sum to a positive value, got %.3f", weightSum)
	}

	return nil
}
