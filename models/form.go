// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// FieldType enumerates the input kinds a form field can render as.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldDate     FieldType = "date"
	FieldFile     FieldType = "file"
)

// Form is an administrator-defined form bound to a logical page of the
// website. Fields are embedded and live and die with the form.
type Form struct {
	// ID is the server-assigned identifier (UUID v7).
	ID string `json:"id"`

	// Title is the human readable name of the form. Required.
	Title string `json:"title"`

	// Description is optional free text shown above the form.
	Description string `json:"description,omitempty"`

	// Page is the logical binding used by the public site (e.g. "contact").
	// Required.
	Page string `json:"page"`

	// Fields is the ordered list of inputs. The order of this slice is the
	// order in which submissions are validated.
	Fields []Field `json:"fields"`

	// EmailSettings controls the notification sent after a submission.
	EmailSettings EmailSettings `json:"emailSettings"`

	// IsActive gates public visibility by page. Defaults to true.
	IsActive bool `json:"isActive"`

	// CreatedBy and UpdatedBy are actor ids resolved by the auth layer.
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnmarshalJSON decodes a form and applies the defaults of a freshly
// created document: an absent isActive means the form is active.
func (f *Form) UnmarshalJSON(b []byte) error {
	type alias Form
	decoded := alias{IsActive: true}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	*f = Form(decoded)
	return nil
}

// TableName returns the name of the database table associated with Form.
func (f Form) TableName() string {
	return "forms"
}

// FieldNames returns the names of all fields in definition order.
func (f Form) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}

// PublicForm is the view of a form served to anonymous visitors. It omits
// notification settings and actor ids.
type PublicForm struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Page        string  `json:"page"`
	Fields      []Field `json:"fields"`
	IsActive    bool    `json:"isActive"`
}

// Public returns the visitor-facing view of f.
func (f Form) Public() PublicForm {
	return PublicForm{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Page:        f.Page,
		Fields:      f.Fields,
		IsActive:    f.IsActive,
	}
}

// Field describes one input of a form.
type Field struct {
	// Name is the key used in submitted data. Unique within a form.
	Name string `json:"name"`

	// Label is the display text. Also used in generated violation messages.
	Label string `json:"label"`

	Type         FieldType     `json:"type"`
	Placeholder  string        `json:"placeholder,omitempty"`
	DefaultValue any           `json:"defaultValue,omitempty"`
	Options      []FieldOption `json:"options,omitempty"`

	Validation  FieldValidation   `json:"validation"`
	Conditional *FieldConditional `json:"conditional,omitempty"`

	// Order controls display sequence. Fields are sorted by it on save.
	Order int `json:"order"`

	// IsActive is false for fields the engine must ignore. Defaults to true.
	IsActive bool `json:"isActive"`
}

// UnmarshalJSON decodes a field; an absent isActive means active.
func (f *Field) UnmarshalJSON(b []byte) error {
	type alias Field
	decoded := alias{IsActive: true}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	*f = Field(decoded)
	return nil
}

// DisplayName returns the label, or the name when no label is set.
func (f Field) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// FieldOption is one (label, value) choice of a select or radio field.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldValidation holds the rules checked against a submitted value.
type FieldValidation struct {
	Required      bool     `json:"required"`
	Pattern       string   `json:"pattern,omitempty"`
	MinLength     *int     `json:"minLength,omitempty"`
	MaxLength     *int     `json:"maxLength,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	CustomMessage string   `json:"customMessage,omitempty"`
}

// FieldConditional makes a field applicable depending on the submitted value
// of another field. ShowWhen is consulted before HideWhen.
type FieldConditional struct {
	DependsOn string        `json:"dependsOn,omitempty"`
	ShowWhen  OptionalValue `json:"showWhen,omitzero"`
	HideWhen  OptionalValue `json:"hideWhen,omitzero"`
}

// EmailSettings configures the notification sent on submission.
type EmailSettings struct {
	SendEmailOnSubmission bool     `json:"sendEmailOnSubmission"`
	EmailTemplateID       string   `json:"emailTemplateId,omitempty"`
	RecipientEmails       []string `json:"recipientEmails,omitempty"`
}

// FormPatch is a partial update of a form. Nil members are left unchanged.
type FormPatch struct {
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Page          *string        `json:"page,omitempty"`
	Fields        *[]Field       `json:"fields,omitempty"`
	EmailSettings *EmailSettings `json:"emailSettings,omitempty"`
	IsActive      *bool          `json:"isActive,omitempty"`
}

// Apply copies every non-nil member of p onto form.
func (p FormPatch) Apply(form *Form) {
	if p.Title != nil {
		form.Title = *p.Title
	}
	if p.Description != nil {
		form.Description = *p.Description
	}
	if p.Page != nil {
		form.Page = *p.Page
	}
	if p.Fields != nil {
		form.Fields = *p.Fields
	}
	if p.EmailSettings != nil {
		form.EmailSettings = *p.EmailSettings
	}
	if p.IsActive != nil {
		form.IsActive = *p.IsActive
	}
}
