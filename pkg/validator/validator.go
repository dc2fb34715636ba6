package validator

import (
	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
	ValidateVar(field interface{}, tag string) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	v := validators.New(validators.WithRequiredStructEnabled())
	return &validator{
		validator: v,
	}
}

// ValidateStruct func
func (v *validator) ValidateStruct(inf interface{}) error {
	return v.validator.Struct(inf)
}

// ValidateVar func - validates a single value against a tag such as "min=0,max=2"
func (v *validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}
