package models

import "time"

// SubmissionData is the open key/value map captured from a form. Values are
// restricted to JSON scalars: string, float64, bool or nil.
type SubmissionData map[string]any

// Submission is a stored, immutable set of answers to a form.
type Submission struct {
	ID     string         `json:"id"`
	FormID string         `json:"formId"`
	Data   SubmissionData `json:"data"`

	// SubmittedBy is set when the submitter presented a valid token.
	SubmittedBy string `json:"submittedBy,omitempty"`

	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table associated with Submission.
func (s Submission) TableName() string {
	return "form_submissions"
}

// SubmissionMetadata describes who submitted a form and from where.
type SubmissionMetadata struct {
	SubmittedBy string
	IPAddress   string
	UserAgent   string
}
