package service

import (
	"context"
	"fmt"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/store"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/utils"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/validators"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// submissionService is the concrete implementation of SubmissionService.
type submissionService struct {
	formRepository       store.FormRepository
	submissionRepository store.SubmissionRepository

	notifications NotificationService
	idGenerator   IDGenerator

	logger *logger.Logger
}

// NewSubmissionService constructs a SubmissionService. notifications is
// invoked after every stored submission whose form has email enabled.
func NewSubmissionService(
	formRepository store.FormRepository,
	submissionRepository store.SubmissionRepository,
	notifications NotificationService,
	idGenerator IDGenerator,
	logger *logger.Logger,
) SubmissionService {
	return &submissionService{
		formRepository:       formRepository,
		submissionRepository: submissionRepository,
		notifications:        notifications,
		idGenerator:          idGenerator,
		logger:               logger,
	}
}

// Submit runs the intake pipeline:
//  1. resolve the form (store.ErrFormNotFound when missing);
//  2. evaluate the field rules against the raw data;
//  3. keep only the scalar values of active fields;
//  4. persist the submission;
//  5. trigger the notification when the form asks for one.
//
// Validation failures are returned as *validators.ValidationError carrying
// every violation. Notification problems never fail the submission.
func (s *submissionService) Submit(ctx context.Context, formID string, data models.SubmissionData, meta models.SubmissionMetadata) (models.Submission, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(formID) {
		return models.Submission{}, store.ErrFormNotFound
	}

	form, err := s.formRepository.GetForm(ctx, formID)
	if err != nil {
		log.Debug().Err(err).Str("form_id", formID).Msg("submission target lookup failed")
		return models.Submission{}, fmt.Errorf("form lookup failed: %w", err)
	}

	if data == nil {
		data = models.SubmissionData{}
	}

	if err = validators.NewValidationError(validators.ValidateSubmission(data, form.Fields)); err != nil {
		log.Debug().Err(err).Str("form_id", formID).Msg("submission rejected")
		return models.Submission{}, err
	}

	normalized, err := validators.NormalizeSubmissionData(data, form.Fields)
	if err != nil {
		log.Debug().Err(err).Str("form_id", formID).Msg("submission data rejected")
		return models.Submission{}, err
	}

	submission := models.Submission{
		ID:          s.idGenerator.Generate(),
		FormID:      form.ID,
		Data:        normalized,
		SubmittedBy: meta.SubmittedBy,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
	}

	saved, err := s.submissionRepository.CreateSubmission(ctx, submission)
	if err != nil {
		log.Err(err).Str("form_id", formID).Msg("saving submission ended with error")
		return models.Submission{}, fmt.Errorf("saving submission ended with error: %w", err)
	}

	log.Info().Str("form_id", formID).Str("submission_id", saved.ID).Msg("submission stored")

	if form.EmailSettings.SendEmailOnSubmission {
		s.notifications.NotifySubmission(ctx, form, saved)
	}

	return saved, nil
}

// ListByForm returns the submissions of an existing form, newest first.
func (s *submissionService) ListByForm(ctx context.Context, formID string) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(formID) {
		return nil, store.ErrFormNotFound
	}

	if _, err := s.formRepository.GetForm(ctx, formID); err != nil {
		return nil, fmt.Errorf("form lookup failed: %w", err)
	}

	submissions, err := s.submissionRepository.ListSubmissionsByForm(ctx, formID)
	if err != nil {
		log.Err(err).Str("form_id", formID).Msg("listing submissions failed")
		return nil, fmt.Errorf("listing submissions failed: %w", err)
	}

	if submissions == nil {
		submissions = []models.Submission{}
	}

	return submissions, nil
}

func (s *submissionService) GetSubmission(ctx context.Context, id string) (models.Submission, error) {
	if !utils.IsValidID(id) {
		return models.Submission{}, store.ErrSubmissionNotFound
	}

	submission, err := s.submissionRepository.GetSubmission(ctx, id)
	if err != nil {
		return models.Submission{}, fmt.Errorf("submission lookup failed: %w", err)
	}

	return submission, nil
}

func (s *submissionService) DeleteSubmission(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return store.ErrSubmissionNotFound
	}

	if err := s.submissionRepository.DeleteSubmission(ctx, id); err != nil {
		log.Err(err).Str("submission_id", id).Msg("submission deletion ended with error")
		return fmt.Errorf("submission deletion ended with error: %w", err)
	}

	log.Info().Str("submission_id", id).Msg("submission deleted")
	return nil
}
