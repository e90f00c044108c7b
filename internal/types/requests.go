package types

import "github.com/go-playground/validator/v10"

// ParseJobRequest is the request body for POST /parse/job. Exactly one of
// Text or URL must be provided; Title improves taxonomy code resolution.
type ParseJobRequest struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty" validate:"required_without=URL,excluded_with=URL"`
	URL   string `json:"url,omitempty" validate:"omitempty,url"`
}

// ParseResumeRequest is the request body for POST /parse/resume.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Validate validates the ParseJobRequest using the validator.
func (r *ParseJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
