package validator

import (
	val "github.com/go-playground/validator/v10"

	"lodgedesk/shared/failure"
)

var validate = val.New(val.WithRequiredStructEnabled())

// ValidateStruct performs validation on the struct using the validator
// package tags. If the struct is invalid according to the validation rules,
// a bad-request failure with a readable message is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar validates a single value against a tag expression.
func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
