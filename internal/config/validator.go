package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	navshellerrors "github.com/alexisbeaulieu97/navshell/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("route_path", func(fl validator.FieldLevel) bool {
			p := fl.Field().String()
			return strings.HasPrefix(p, "/") && !strings.ContainsAny(p, " \t\n")
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks field constraints on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return navshellerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}
