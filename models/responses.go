package models

import "encoding/json"

// FormWithSubmissions is a form annotated with its stored submissions, as
// returned by the admin listing.
type FormWithSubmissions struct {
	Form

	Submissions     []Submission `json:"submissions"`
	SubmissionCount int          `json:"submissionCount"`
}

// UnmarshalJSON decodes the embedded form with its defaults and then the
// submission annotations, which the promoted Form decoder would drop.
func (f *FormWithSubmissions) UnmarshalJSON(b []byte) error {
	var form Form
	if err := json.Unmarshal(b, &form); err != nil {
		return err
	}

	var annotations struct {
		Submissions     []Submission `json:"submissions"`
		SubmissionCount int          `json:"submissionCount"`
	}
	if err := json.Unmarshal(b, &annotations); err != nil {
		return err
	}

	*f = FormWithSubmissions{
		Form:            form,
		Submissions:     annotations.Submissions,
		SubmissionCount: annotations.SubmissionCount,
	}
	return nil
}

// Violation is one failed rule of one field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Message string      `json:"message"`
	Errors  []Violation `json:"errors,omitempty"`
}
