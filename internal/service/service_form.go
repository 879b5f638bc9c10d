package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/store"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/utils"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/validators"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// formService is the concrete implementation of FormService.
type formService struct {
	formRepository       store.FormRepository
	submissionRepository store.SubmissionRepository

	validator   validators.Validator
	idGenerator IDGenerator

	logger *logger.Logger
}

// NewFormService constructs a FormService backed by the given repositories.
// Definitions are checked with validator before every write.
func NewFormService(
	formRepository store.FormRepository,
	submissionRepository store.SubmissionRepository,
	validator validators.Validator,
	idGenerator IDGenerator,
	logger *logger.Logger,
) FormService {
	return &formService{
		formRepository:       formRepository,
		submissionRepository: submissionRepository,
		validator:            validator,
		idGenerator:          idGenerator,
		logger:               logger,
	}
}

// CreateForm assigns a fresh id, orders the fields and stores the form.
//
// Returns a *validators.ValidationError for malformed definitions,
// validators.ErrDuplicateFieldName for repeated field names and
// store.ErrActivePageConflict when another active form owns the page.
func (s *formService) CreateForm(ctx context.Context, form models.Form) (models.Form, error) {
	log := logger.FromContext(ctx)

	form.Fields = sortedFields(form.Fields)
	if err := s.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("page", form.Page).Msg("form definition rejected")
		return models.Form{}, fmt.Errorf("invalid form definition: %w", err)
	}

	form.ID = s.idGenerator.Generate()
	actorID, _ := utils.GetActorIDFromContext(ctx)
	form.CreatedBy = actorID
	form.UpdatedBy = actorID

	created, err := s.formRepository.CreateForm(ctx, form)
	if err != nil {
		log.Err(err).Str("page", form.Page).Msg("form creation ended with error")
		return models.Form{}, fmt.Errorf("form creation ended with error: %w", err)
	}

	log.Info().Str("form_id", created.ID).Str("page", created.Page).Msg("form created")
	return created, nil
}

func (s *formService) GetForm(ctx context.Context, id string) (models.Form, error) {
	if !utils.IsValidID(id) {
		return models.Form{}, store.ErrFormNotFound
	}

	form, err := s.formRepository.GetForm(ctx, id)
	if err != nil {
		return models.Form{}, fmt.Errorf("form lookup failed: %w", err)
	}

	return form, nil
}

func (s *formService) GetFormByPage(ctx context.Context, page string) (models.Form, error) {
	if page == "" {
		return models.Form{}, store.ErrFormNotFound
	}

	form, err := s.formRepository.GetActiveFormByPage(ctx, page)
	if err != nil {
		return models.Form{}, fmt.Errorf("form lookup by page failed: %w", err)
	}

	return form, nil
}

// ListForms returns all forms, newest first, each with its submissions
// (newest first) and their count.
func (s *formService) ListForms(ctx context.Context) ([]models.FormWithSubmissions, error) {
	log := logger.FromContext(ctx)

	forms, err := s.formRepository.ListForms(ctx)
	if err != nil {
		log.Err(err).Msg("listing forms failed")
		return nil, fmt.Errorf("listing forms failed: %w", err)
	}

	result := make([]models.FormWithSubmissions, 0, len(forms))
	if len(forms) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(forms))
	for _, form := range forms {
		ids = append(ids, form.ID)
	}

	grouped, err := s.submissionRepository.ListSubmissionsByForms(ctx, ids)
	if err != nil {
		log.Err(err).Int("forms", len(ids)).Msg("listing submissions of forms failed")
		return nil, fmt.Errorf("listing submissions of forms failed: %w", err)
	}

	for _, form := range forms {
		submissions := grouped[form.ID]
		if submissions == nil {
			submissions = []models.Submission{}
		}
		result = append(result, models.FormWithSubmissions{
			Form:            form,
			Submissions:     submissions,
			SubmissionCount: len(submissions),
		})
	}

	return result, nil
}

// UpdateForm loads the form, applies patch and stores the result after the
// same checks as CreateForm. The id and the creation metadata are kept.
func (s *formService) UpdateForm(ctx context.Context, id string, patch models.FormPatch) (models.Form, error) {
	log := logger.FromContext(ctx)

	current, err := s.GetForm(ctx, id)
	if err != nil {
		return models.Form{}, err
	}

	patch.Apply(&current)
	current.ID = id
	current.Fields = sortedFields(current.Fields)

	if err = s.validator.Validate(ctx, current); err != nil {
		log.Debug().Err(err).Str("form_id", id).Msg("form update rejected")
		return models.Form{}, fmt.Errorf("invalid form definition: %w", err)
	}

	if actorID, ok := utils.GetActorIDFromContext(ctx); ok {
		current.UpdatedBy = actorID
	}

	updated, err := s.formRepository.UpdateForm(ctx, current)
	if err != nil {
		log.Err(err).Str("form_id", id).Msg("form update ended with error")
		return models.Form{}, fmt.Errorf("form update ended with error: %w", err)
	}

	log.Info().Str("form_id", id).Msg("form updated")
	return updated, nil
}

func (s *formService) DeleteForm(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return store.ErrFormNotFound
	}

	if err := s.formRepository.DeleteForm(ctx, id); err != nil {
		log.Err(err).Str("form_id", id).Msg("form deletion ended with error")
		return fmt.Errorf("form deletion ended with error: %w", err)
	}

	log.Info().Str("form_id", id).Msg("form deleted with its submissions")
	return nil
}

// sortedFields returns a copy of fields ordered by Order. Fields with equal
// Order keep their relative position.
func sortedFields(fields []models.Field) []models.Field {
	sorted := slices.Clone(fields)
	slices.SortStableFunc(sorted, func(a, b models.Field) int {
		return a.Order - b.Order
	})
	return sorted
}
