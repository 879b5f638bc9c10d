// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.Form {
	return models.Form{
		Title: "Contact us",
		Page:  "contact",
		Fields: []models.Field{
			{Name: "name", Label: "Name", Type: models.FieldText, IsActive: true,
				Validation: models.FieldValidation{Required: true, MinLength: intPtr(2), MaxLength: intPtr(50)}},
			{Name: "email", Label: "Email", Type: models.FieldEmail, IsActive: true,
				Validation: models.FieldValidation{Required: true, Pattern: "^[^@]+@[^@]+$"}},
			{Name: "subscribe", Label: "Subscribe", Type: models.FieldCheckbox, IsActive: true},
			{Name: "frequency", Label: "Frequency", Type: models.FieldSelect, IsActive: true,
				Conditional: showWhen("subscribe", true)},
		},
		EmailSettings: models.EmailSettings{
			SendEmailOnSubmission: true,
			EmailTemplateID:       "tpl-1",
			RecipientEmails:       []string{"team@example.org"},
		},
		IsActive: true,
	}
}

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)
	var out []string
	for _, v := range ViolationsOf(err) {
		out = append(out, v.Field)
	}
	return out
}

func TestNewDefinitionValidator(t *testing.T) {
	require.NotNil(t, NewDefinitionValidator())
}

func TestDefinitionValidator_Dispatch(t *testing.T) {
	v := NewDefinitionValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("form value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validForm()))
	})

	t.Run("form pointer", func(t *testing.T) {
		f := validForm()
		require.NoError(t, v.Validate(ctx, &f))
	})

	t.Run("template value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.EmailTemplate{Name: "n", Subject: "s", Body: "b"}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validForm(), "nope"), ErrUnknownField)
	})
}

func TestDefinitionValidator_FormTopLevel(t *testing.T) {
	v := NewDefinitionValidator()
	form := validForm()
	form.Title = " "
	form.Page = ""

	err := v.Validate(context.Background(), form)
	assert.Equal(t, []string{"title", "page"}, violationFields(t, err))
}

func TestDefinitionValidator_ScopedFields(t *testing.T) {
	v := NewDefinitionValidator()
	form := validForm()
	form.Title = ""

	require.NoError(t, v.Validate(context.Background(), form, FieldPage, FieldFields))
}

func TestDefinitionValidator_DuplicateFieldName(t *testing.T) {
	v := NewDefinitionValidator()
	form := validForm()
	form.Fields = append(form.Fields, models.Field{Name: "email", Type: models.FieldText, IsActive: true})

	err := v.Validate(context.Background(), form)
	require.ErrorIs(t, err, ErrDuplicateFieldName)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestDefinitionValidator_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.Form)
		want   []string
	}{
		{
			name:   "empty field name",
			mutate: func(f *models.Form) { f.Fields[0].Name = "" },
			want:   []string{"fields[0].name"},
		},
		{
			name:   "unsupported type",
			mutate: func(f *models.Form) { f.Fields[0].Type = "slider" },
			want:   []string{"fields[0].type"},
		},
		{
			name:   "broken pattern",
			mutate: func(f *models.Form) { f.Fields[1].Validation.Pattern = "([" },
			want:   []string{"fields[1].validation.pattern"},
		},
		{
			name:   "minLength above maxLength",
			mutate: func(f *models.Form) { f.Fields[0].Validation.MinLength = intPtr(60) },
			want:   []string{"fields[0].validation.minLength"},
		},
		{
			name:   "negative length",
			mutate: func(f *models.Form) { f.Fields[0].Validation.MaxLength = intPtr(-1) },
			want:   []string{"fields[0].validation.maxLength", "fields[0].validation.minLength"},
		},
		{
			name: "min above max",
			mutate: func(f *models.Form) {
				f.Fields[2].Validation.Min = floatPtr(5)
				f.Fields[2].Validation.Max = floatPtr(1)
			},
			want: []string{"fields[2].validation.min"},
		},
		{
			name:   "dependsOn unknown field",
			mutate: func(f *models.Form) { f.Fields[3].Conditional.DependsOn = "ghost" },
			want:   []string{"fields[3].conditional.dependsOn"},
		},
		{
			name:   "dependsOn itself",
			mutate: func(f *models.Form) { f.Fields[3].Conditional.DependsOn = "frequency" },
			want:   []string{"fields[3].conditional.dependsOn"},
		},
		{
			name:   "both showWhen and hideWhen",
			mutate: func(f *models.Form) { f.Fields[3].Conditional.HideWhen = models.Some(false) },
			want:   []string{"fields[3].conditional"},
		},
		{
			name:   "values without dependsOn",
			mutate: func(f *models.Form) { f.Fields[3].Conditional.DependsOn = "" },
			want:   []string{"fields[3].conditional.dependsOn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			err := NewDefinitionValidator().Validate(context.Background(), form)
			assert.Equal(t, tt.want, violationFields(t, err))
		})
	}
}

func TestDefinitionValidator_EmailSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings models.EmailSettings
		want     []string
	}{
		{
			name:     "disabled with nothing set",
			settings: models.EmailSettings{},
		},
		{
			name:     "invalid recipient",
			settings: models.EmailSettings{RecipientEmails: []string{"ok@example.org", "broken"}},
			want:     []string{"emailSettings.recipientEmails[1]"},
		},
		{
			name:     "enabled without template or recipients",
			settings: models.EmailSettings{SendEmailOnSubmission: true},
			want:     []string{"emailSettings.emailTemplateId", "emailSettings.recipientEmails"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.EmailSettings = tt.settings
			err := NewDefinitionValidator().Validate(context.Background(), form, FieldEmailSettings)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, violationFields(t, err))
		})
	}
}

func TestDefinitionValidator_EmailTemplate(t *testing.T) {
	err := NewDefinitionValidator().Validate(context.Background(), &models.EmailTemplate{Name: "welcome"})
	assert.Equal(t, []string{"subject", "body"}, violationFields(t, err))
}

func TestValidationError(t *testing.T) {
	assert.Nil(t, NewValidationError(nil))

	err := NewValidationError([]models.Violation{{Field: "a", Message: "a is required"}, {Field: "b", Message: "b format is invalid"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: a: a is required; b: b format is invalid", err.Error())
	assert.Len(t, ViolationsOf(err), 2)
	assert.Nil(t, ViolationsOf(ErrUnknownField))
}
