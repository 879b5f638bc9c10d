package service

import (
	"fmt"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/store"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/utils"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/validators"
)

// Services aggregates every service used by the transport layer.
type Services struct {
	FormService          FormService
	SubmissionService    SubmissionService
	NotificationService  NotificationService
	EmailTemplateService EmailTemplateService
	AuthService          AuthService
	AppInfoService       AppInfoService
}

// NewServices wires all services on top of storages. Notifications are
// handed to mailQueue.
func NewServices(storages *store.Storages, mailQueue MailQueue, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	definitionValidator := validators.NewDefinitionValidator()
	idGenerator := utils.NewUUIDGenerator()
	notificationService := NewNotificationService(storages.EmailTemplateRepository, mailQueue, logger)

	return &Services{
		FormService: NewFormService(
			storages.FormRepository,
			storages.SubmissionRepository,
			definitionValidator,
			idGenerator,
			logger,
		),
		SubmissionService: NewSubmissionService(
			storages.FormRepository,
			storages.SubmissionRepository,
			notificationService,
			idGenerator,
			logger,
		),
		NotificationService:  notificationService,
		EmailTemplateService: NewEmailTemplateService(storages.EmailTemplateRepository, definitionValidator, idGenerator, logger),
		AuthService:          NewAuthService(cfg.App, logger),
		AppInfoService:       appInfoService,
	}, nil
}
