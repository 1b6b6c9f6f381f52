package usecase

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/atharsaifi001-eng/NEAT-RE/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags on a façade input and converts failures into a
// domain validation error naming the offending fields.
func Validate(input interface{}, message string) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return domain.NewValidationError(message, fields...)
	}
	return domain.WrapError(domain.ErrCodeInvalid, message, err)
}
