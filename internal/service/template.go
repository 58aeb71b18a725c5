package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"flexdeck/internal/config"
	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/domain/repositories"
	"flexdeck/internal/domain/services"
	"flexdeck/internal/flex"
)

// templateService implements the TemplateService interface
type templateService struct {
	templateRepo repositories.TemplateRepository
	docRepo      repositories.DocRepository
	logger       *slog.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(
	templateRepo repositories.TemplateRepository,
	docRepo repositories.DocRepository,
	logger *slog.Logger,
) services.TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		docRepo:      docRepo,
		logger:       logger,
	}
}

// ListTemplates lists public templates plus the user's own
func (s *templateService) ListTemplates(ctx context.Context, userID string) ([]models.Template, error) {
	return s.templateRepo.ListVisible(ctx, userID)
}

// CreateTemplate saves a template from an existing draft or an
// explicit document model
func (s *templateService) CreateTemplate(ctx context.Context, ownerID string, req *services.CreateTemplateRequest) (*models.Template, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var model flexdoc.Document
	switch {
	case req.DocID != nil:
		doc, err := s.docRepo.GetByID(ctx, *req.DocID, ownerID)
		if err != nil {
			return nil, err
		}
		model = doc.Content
	case req.DocModel != nil:
		model = *req.DocModel
	}

	if model.Type() == flexdoc.DocTypeFolder {
		return nil, fmt.Errorf("%w: folders cannot be saved as templates", domain.ErrValidation)
	}

	tpl := &models.Template{
		OwnerID:     &ownerID,
		IsPublic:    false,
		Name:        req.Name,
		Description: req.Description,
		DocModel:    model,
	}

	if err := s.templateRepo.Create(ctx, tpl); err != nil {
		return nil, err
	}

	s.logger.Info("template created",
		"id", tpl.ID,
		"owner_id", ownerID,
		"name", tpl.Name,
	)

	return tpl, nil
}

// DeleteTemplate deletes a template the user owns
func (s *templateService) DeleteTemplate(ctx context.Context, id, ownerID string) error {
	if err := s.templateRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("template deleted", "id", id, "owner_id", ownerID)
	return nil
}

// CloneTemplate copies a template's model into a fresh draft
func (s *templateService) CloneTemplate(ctx context.Context, userID, templateID, title string) (*models.Doc, error) {
	tpl, err := s.templateRepo.GetByID(ctx, templateID, userID)
	if err != nil {
		return nil, err
	}

	content := tpl.DocModel
	if title == "" {
		title = tpl.Name
	}

	report := flex.Validate(content)

	doc := &models.Doc{
		OwnerID: userID,
		Type:    content.Type(),
		Title:   title,
		Content: content,
		Status:  report.Status,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("template cloned",
		"template_id", templateID,
		"doc_id", doc.ID,
		"owner_id", userID,
	)

	return doc, nil
}

func (s *templateService) validateCreateRequest(req *services.CreateTemplateRequest) error {
	if req.DocID == nil && req.DocModel == nil {
		return fmt.Errorf("either doc_id or doc_model must be provided")
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxTemplateNameLength),
		),
	)
}
