package config

import (
	"path/filepath"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
			_, err := harmony.ParseMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("code_format", func(fl validator.FieldLevel) bool {
			_, err := format.ParseCodeFormat(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("local_path", func(fl validator.FieldLevel) bool {
			return filepath.IsLocal(fl.Field().String())
		})

		// The file strategy needs somewhere to write.
		_ = v.RegisterValidation("required_if_file_strategy", func(fl validator.FieldLevel) bool {
			settings, ok := fl.Parent().Interface().(ClipboardSettings)
			if !ok {
				return true
			}
			for _, s := range settings.Strategies {
				if s == "file" {
					return fl.Field().String() != ""
				}
			}
			return true
		}, true)

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
