package models

import "time"

// EmailTemplate is a reusable notification text. Subject and Body may hold
// {{fieldName}} placeholders that are filled from submitted data.
type EmailTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with EmailTemplate.
func (t EmailTemplate) TableName() string {
	return "email_templates"
}

// EmailMessage is one outgoing message addressed to every recipient at once.
type EmailMessage struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}
