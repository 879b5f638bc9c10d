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

type emailTemplateService struct {
	templateRepository store.EmailTemplateRepository

	validator   validators.Validator
	idGenerator IDGenerator

	logger *logger.Logger
}

func NewEmailTemplateService(
	templateRepository store.EmailTemplateRepository,
	validator validators.Validator,
	idGenerator IDGenerator,
	logger *logger.Logger,
) EmailTemplateService {
	return &emailTemplateService{
		templateRepository: templateRepository,
		validator:          validator,
		idGenerator:        idGenerator,
		logger:             logger,
	}
}

func (s *emailTemplateService) CreateEmailTemplate(ctx context.Context, template models.EmailTemplate) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, template); err != nil {
		log.Debug().Err(err).Str("name", template.Name).Msg("email template rejected")
		return models.EmailTemplate{}, fmt.Errorf("invalid email template: %w", err)
	}

	template.ID = s.idGenerator.Generate()

	created, err := s.templateRepository.CreateEmailTemplate(ctx, template)
	if err != nil {
		log.Err(err).Str("name", template.Name).Msg("email template creation ended with error")
		return models.EmailTemplate{}, fmt.Errorf("email template creation ended with error: %w", err)
	}

	return created, nil
}

func (s *emailTemplateService) GetEmailTemplate(ctx context.Context, id string) (models.EmailTemplate, error) {
	if !utils.IsValidID(id) {
		return models.EmailTemplate{}, store.ErrEmailTemplateNotFound
	}

	template, err := s.templateRepository.GetEmailTemplate(ctx, id)
	if err != nil {
		return models.EmailTemplate{}, fmt.Errorf("email template lookup failed: %w", err)
	}

	return template, nil
}

func (s *emailTemplateService) ListEmailTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	templates, err := s.templateRepository.ListEmailTemplates(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing email templates failed")
		return nil, fmt.Errorf("listing email templates failed: %w", err)
	}

	if templates == nil {
		templates = []models.EmailTemplate{}
	}

	return templates, nil
}

func (s *emailTemplateService) DeleteEmailTemplate(ctx context.Context, id string) error {
	if !utils.IsValidID(id) {
		return store.ErrEmailTemplateNotFound
	}

	if err := s.templateRepository.DeleteEmailTemplate(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("template_id", id).Msg("email template deletion ended with error")
		return fmt.Errorf("email template deletion ended with error: %w", err)
	}

	return nil
}
