package http

import (
	"context"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/service"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// fakeFormService implements service.FormService. Each method field can be
// overridden per test case.
type fakeFormService struct {
	createFormFn    func(ctx context.Context, form models.Form) (models.Form, error)
	getFormFn       func(ctx context.Context, id string) (models.Form, error)
	getFormByPageFn func(ctx context.Context, page string) (models.Form, error)
	listFormsFn     func(ctx context.Context) ([]models.FormWithSubmissions, error)
	updateFormFn    func(ctx context.Context, id string, patch models.FormPatch) (models.Form, error)
	deleteFormFn    func(ctx context.Context, id string) error
}

func (f *fakeFormService) CreateForm(ctx context.Context, form models.Form) (models.Form, error) {
	return f.createFormFn(ctx, form)
}

func (f *fakeFormService) GetForm(ctx context.Context, id string) (models.Form, error) {
	return f.getFormFn(ctx, id)
}

func (f *fakeFormService) GetFormByPage(ctx context.Context, page string) (models.Form, error) {
	return f.getFormByPageFn(ctx, page)
}

func (f *fakeFormService) ListForms(ctx context.Context) ([]models.FormWithSubmissions, error) {
	return f.listFormsFn(ctx)
}

func (f *fakeFormService) UpdateForm(ctx context.Context, id string, patch models.FormPatch) (models.Form, error) {
	return f.updateFormFn(ctx, id, patch)
}

func (f *fakeFormService) DeleteForm(ctx context.Context, id string) error {
	return f.deleteFormFn(ctx, id)
}

type fakeSubmissionService struct {
	submitFn           func(ctx context.Context, formID string, data models.SubmissionData, meta models.SubmissionMetadata) (models.Submission, error)
	listByFormFn       func(ctx context.Context, formID string) ([]models.Submission, error)
	getSubmissionFn    func(ctx context.Context, id string) (models.Submission, error)
	deleteSubmissionFn func(ctx context.Context, id string) error
}

func (f *fakeSubmissionService) Submit(ctx context.Context, formID string, data models.SubmissionData, meta models.SubmissionMetadata) (models.Submission, error) {
	return f.submitFn(ctx, formID, data, meta)
}

func (f *fakeSubmissionService) ListByForm(ctx context.Context, formID string) ([]models.Submission, error) {
	return f.listByFormFn(ctx, formID)
}

func (f *fakeSubmissionService) GetSubmission(ctx context.Context, id string) (models.Submission, error) {
	return f.getSubmissionFn(ctx, id)
}

func (f *fakeSubmissionService) DeleteSubmission(ctx context.Context, id string) error {
	return f.deleteSubmissionFn(ctx, id)
}

type fakeEmailTemplateService struct {
	createFn func(ctx context.Context, template models.EmailTemplate) (models.EmailTemplate, error)
	getFn    func(ctx context.Context, id string) (models.EmailTemplate, error)
	listFn   func(ctx context.Context) ([]models.EmailTemplate, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeEmailTemplateService) CreateEmailTemplate(ctx context.Context, template models.EmailTemplate) (models.EmailTemplate, error) {
	return f.createFn(ctx, template)
}

func (f *fakeEmailTemplateService) GetEmailTemplate(ctx context.Context, id string) (models.EmailTemplate, error) {
	return f.getFn(ctx, id)
}

func (f *fakeEmailTemplateService) ListEmailTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	return f.listFn(ctx)
}

func (f *fakeEmailTemplateService) DeleteEmailTemplate(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeAuthService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

const (
	testAdminToken = "admin-token"
	testActorID    = "admin-7"
	testFormID     = "0190f5a0-1111-7000-8000-000000000001"
)

// acceptAdminToken accepts only testAdminToken.
func acceptAdminToken() *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != testAdminToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{ActorID: testActorID}, nil
		},
	}
}

// newTestServices returns services whose every method panics unless
// overridden, plus a working auth and version service.
func newTestServices() *service.Services {
	return &service.Services{
		FormService:          &fakeFormService{},
		SubmissionService:    &fakeSubmissionService{},
		EmailTemplateService: &fakeEmailTemplateService{},
		AuthService:          acceptAdminToken(),
		AppInfoService:       &fakeAppInfoService{version: "1.2.3"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}
