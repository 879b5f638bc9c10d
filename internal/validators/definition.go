package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// Field name constants used to restrict Validate to a part of a definition.
const (
	// FieldTitle targets the form title.
	FieldTitle = "title"

	// FieldPage targets the page the form is bound to.
	FieldPage = "page"

	// FieldFields targets the field definitions: names, types, rules and
	// conditional dependencies.
	FieldFields = "fields"

	// FieldEmailSettings targets the notification settings of a form.
	FieldEmailSettings = "emailSettings"

	// FieldName targets the name of an email template.
	FieldName = "name"

	// FieldSubject targets the subject of an email template.
	FieldSubject = "subject"

	// FieldBody targets the body of an email template.
	FieldBody = "body"
)

// allowedFieldTypes is the exhaustive set of field types a form may declare.
var allowedFieldTypes = []models.FieldType{
	models.FieldText,
	models.FieldEmail,
	models.FieldNumber,
	models.FieldTextarea,
	models.FieldSelect,
	models.FieldCheckbox,
	models.FieldRadio,
	models.FieldDate,
	models.FieldFile,
}

// DefinitionValidator checks forms and email templates before they are saved.
type DefinitionValidator struct {
}

func NewDefinitionValidator() Validator {
	return &DefinitionValidator{}
}

// Validate returns a *ValidationError listing every problem found, or an
// error wrapping ErrDuplicateFieldName when two fields of a form share a name.
func (v *DefinitionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Form:
		return v.validateForm(ctx, value, fields...)
	case *models.Form:
		return v.validateForm(ctx, *value, fields...)

	case models.EmailTemplate:
		return v.validateEmailTemplate(ctx, value, fields...)
	case *models.EmailTemplate:
		return v.validateEmailTemplate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isAllowedFieldType(t models.FieldType) bool {
	for _, allowed := range allowedFieldTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func (v *DefinitionValidator) validateForm(_ context.Context, form models.Form, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPage, FieldFields, FieldEmailSettings}
	}

	var violations []models.Violation
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(form.Title) == "" {
				violations = append(violations, models.Violation{Field: FieldTitle, Message: "title is required"})
			}
		case FieldPage:
			if strings.TrimSpace(form.Page) == "" {
				violations = append(violations, models.Violation{Field: FieldPage, Message: "page is required"})
			}
		case FieldFields:
			if err := checkUniqueFieldNames(form.Fields); err != nil {
				return err
			}
			violations = append(violations, validateFieldDefinitions(form.Fields)...)
		case FieldEmailSettings:
			violations = append(violations, validateEmailSettings(form.EmailSettings)...)
		default:
			return ErrUnknownField
		}
	}

	return NewValidationError(violations)
}

func checkUniqueFieldNames(fields []models.Field) error {
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFieldName, field.Name)
		}
		seen[field.Name] = struct{}{}
	}
	return nil
}

func validateFieldDefinitions(fields []models.Field) []models.Violation {
	names := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		names[field.Name] = struct{}{}
	}

	var violations []models.Violation
	add := func(i int, path, message string) {
		violations = append(violations, models.Violation{Field: fmt.Sprintf("fields[%d].%s", i, path), Message: message})
	}

	for i, field := range fields {
		if strings.TrimSpace(field.Name) == "" {
			add(i, "name", "field name is required")
		}
		if !isAllowedFieldType(field.Type) {
			add(i, "type", fmt.Sprintf("unsupported field type %q", field.Type))
		}

		rules := field.Validation
		if rules.Pattern != "" {
			if _, err := regexp.Compile(rules.Pattern); err != nil {
				add(i, "validation.pattern", fmt.Sprintf("invalid pattern: %v", err))
			}
		}
		if rules.MinLength != nil && *rules.MinLength < 0 {
			add(i, "validation.minLength", "minLength must not be negative")
		}
		if rules.MaxLength != nil && *rules.MaxLength < 0 {
			add(i, "validation.maxLength", "maxLength must not be negative")
		}
		if rules.MinLength != nil && rules.MaxLength != nil && *rules.MinLength > *rules.MaxLength {
			add(i, "validation.minLength", "minLength must not exceed maxLength")
		}
		if rules.Min != nil && rules.Max != nil && *rules.Min > *rules.Max {
			add(i, "validation.min", "min must not exceed max")
		}

		if cond := field.Conditional; cond != nil {
			if cond.DependsOn == "" {
				if cond.ShowWhen.Set || cond.HideWhen.Set {
					add(i, "conditional.dependsOn", "dependsOn is required when showWhen or hideWhen is set")
				}
			} else if _, ok := names[cond.DependsOn]; !ok || cond.DependsOn == field.Name {
				add(i, "conditional.dependsOn", fmt.Sprintf("dependsOn must name another field of the form, got %q", cond.DependsOn))
			}
			if cond.ShowWhen.Set && cond.HideWhen.Set {
				add(i, "conditional", "showWhen and hideWhen cannot both be set")
			}
		}
	}

	return violations
}

func validateEmailSettings(settings models.EmailSettings) []models.Violation {
	var violations []models.Violation

	for i, address := range settings.RecipientEmails {
		if _, err := mail.ParseAddress(address); err != nil {
			violations = append(violations, models.Violation{
				Field:   fmt.Sprintf("emailSettings.recipientEmails[%d]", i),
				Message: fmt.Sprintf("invalid email address %q", address),
			})
		}
	}

	if settings.SendEmailOnSubmission {
		if settings.EmailTemplateID == "" {
			violations = append(violations, models.Violation{
				Field:   "emailSettings.emailTemplateId",
				Message: "email template is required when notifications are enabled",
			})
		}
		if len(settings.RecipientEmails) == 0 {
			violations = append(violations, models.Violation{
				Field:   "emailSettings.recipientEmails",
				Message: "at least one recipient is required when notifications are enabled",
			})
		}
	}

	return violations
}

func (v *DefinitionValidator) validateEmailTemplate(_ context.Context, template models.EmailTemplate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSubject, FieldBody}
	}

	var violations []models.Violation
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(template.Name) == "" {
				violations = append(violations, models.Violation{Field: FieldName, Message: "name is required"})
			}
		case FieldSubject:
			if strings.TrimSpace(template.Subject) == "" {
				violations = append(violations, models.Violation{Field: FieldSubject, Message: "subject is required"})
			}
		case FieldBody:
			if strings.TrimSpace(template.Body) == "" {
				violations = append(violations, models.Violation{Field: FieldBody, Message: "body is required"})
			}
		default:
			return ErrUnknownField
		}
	}

	return NewValidationError(violations)
}
