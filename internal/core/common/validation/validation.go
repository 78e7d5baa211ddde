package validation

import (
	"fmt"

	errors "github.com/frahmantamala/asaas-go/internal"
)

type ValidatorFunc func(any) *errors.APIError

type FieldValidator struct {
	FieldName  string
	Value      any
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value any) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value any) *errors.APIError {
		missing := false
		switch v := value.(type) {
		case string:
			missing = v == ""
		case *string:
			missing = v == nil || *v == ""
		case float64:
			missing = v == 0
		case *float64:
			missing = v == nil
		default:
			missing = v == nil
		}
		if missing {
			return requestError(fmt.Sprintf("%s is required", fv.FieldName))
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Positive() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value any) *errors.APIError {
		switch v := value.(type) {
		case float64:
			if v < 0 {
				return requestError(fmt.Sprintf("%s must be positive", fv.FieldName))
			}
		case *float64:
			if v != nil && *v < 0 {
				return requestError(fmt.Sprintf("%s must be positive", fv.FieldName))
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value any) *errors.APIError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				return requestError(fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max))
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator func(any) *errors.APIError) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate runs every registered check and reports the first failure, so
// callers get exactly one root cause.
func (v *ValidationBuilder) Validate() *errors.APIError {
	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if err := validator(field.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func requestError(message string) *errors.APIError {
	return errors.NewValidationError(message)
}
