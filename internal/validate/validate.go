package validate

// This package adds struct and field validation as a thin wrapper around the
// go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Profile struct {
// 		 ...
//       Orientation string  `yaml:"orientation" validate:"omitempty,orientation"`
//       Minimum     *Rule   `yaml:"minimum,omitempty"`
//   }
//
// It registers the custom `orientation` tag on top of the built-in ones so
// config structs validate axis orientations consistently.

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ensigniasec/gimbal/internal/gimbal"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// `orientation` accepts the four axis spellings the gimbal core
		// understands (horizontal, horizontal-reverse, vertical,
		// vertical-reverse).
		_ = validatorInst.RegisterValidation("orientation", func(fl validator.FieldLevel) bool {
			_, err := gimbal.ParseOrientation(fl.Field().String())
			return err == nil
		})
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
