package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validator checks prompt input structs before they reach the services.
// Malformed dates and numbers stop here; the core assumes well-formed input.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
