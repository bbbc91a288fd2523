package validation

import (
	"time"

	"lab-system/pkg/constants"

	"github.com/go-playground/validator/v10"
)

// registerRules wires the domain-specific tags used by the DTOs.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("labdate", isLabDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("qastatus", isQaStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("taskstatus", isTaskStatus); err != nil {
		return err
	}
	return nil
}

// isLabDate accepts form dates in YYYY-MM-DD.
func isLabDate(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(constants.DateLayout, s)
	return err == nil
}

func isQaStatus(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	return ok && constants.IsQaSampleStatus(s)
}

func isTaskStatus(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	return ok && constants.IsTaskStatus(s)
}
