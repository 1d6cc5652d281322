// Package validation validates configuration structs using struct tags.
//
//	type Config struct {
//	    BaseURL string `validate:"required,httpurl"`
//	}
//	err := validation.Validate(cfg)
//
// Failures are returned as *errors.AppError with a per-field breakdown in
// Details["fields"].
package validation
