package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"flexdeck/internal/config"
	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/domain/repositories"
	"flexdeck/internal/domain/services"
	"flexdeck/internal/flex"
	"flexdeck/internal/service/scheduler"
	"flexdeck/internal/templates"
)

// documentService implements the DocumentService interface
type documentService struct {
	docRepo      repositories.DocRepository
	templateRepo repositories.TemplateRepository
	registry     *templates.Registry
	saves        scheduler.SaveScheduler
	logger       *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocRepository,
	templateRepo repositories.TemplateRepository,
	registry *templates.Registry,
	saves scheduler.SaveScheduler,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		docRepo:      docRepo,
		templateRepo: templateRepo,
		registry:     registry,
		saves:        saves,
		logger:       logger,
	}
}

// CreateDocument creates a new draft
func (s *documentService) CreateDocument(ctx context.Context, ownerID string, req *services.CreateDocumentRequest) (*models.Doc, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	content, err := s.resolveInitialContent(ctx, ownerID, req)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = content.Title()
	}

	report := flex.Validate(content)

	doc := &models.Doc{
		OwnerID: ownerID,
		Type:    content.Type(),
		Title:   title,
		Content: content,
		Status:  report.Status,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("doc created",
		"id", doc.ID,
		"owner_id", ownerID,
		"type", doc.Type,
		"status", doc.Status,
	)

	return doc, nil
}

// resolveInitialContent picks the initial document model: explicit
// content wins, then a stored template, then a built-in seed.
func (s *documentService) resolveInitialContent(ctx context.Context, ownerID string, req *services.CreateDocumentRequest) (flexdoc.Document, error) {
	if req.Content != nil {
		return *req.Content, nil
	}

	if req.TemplateID != nil {
		tpl, err := s.templateRepo.GetByID(ctx, *req.TemplateID, ownerID)
		if err != nil {
			return flexdoc.Document{}, err
		}
		return tpl.DocModel, nil
	}

	kind := req.SeedKind
	if kind == "" {
		kind = "bubble"
	}
	if kind == "carousel" && req.CardCount > 0 {
		return s.registry.SeedCarousel(req.CardCount, req.Title)
	}
	return s.registry.Seed(kind, req.Title)
}

// GetDocument retrieves a draft with a fresh validation report
func (s *documentService) GetDocument(ctx context.Context, id, ownerID string) (*models.Doc, *flexdoc.Report, error) {
	doc, err := s.docRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, nil, err
	}

	report := flex.Validate(doc.Content)
	return doc, &report, nil
}

// UpdateDocument saves a draft, recomputing its status
func (s *documentService) UpdateDocument(ctx context.Context, id, ownerID string, req *services.UpdateDocumentRequest) (*models.Doc, *flexdoc.Report, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc, err := s.docRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, nil, err
	}

	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.Content != nil {
		doc.Content = *req.Content
		doc.Type = req.Content.Type()
	}

	report := flex.Validate(doc.Content)
	doc.Status = report.Status

	if req.Deferred {
		// Debounced write: the editor's autosave path. The response
		// reflects the in-memory state; the row catches up when the
		// timer fires or on shutdown flush.
		pending := *doc
		s.saves.Schedule(doc.ID, func(saveCtx context.Context) error {
			return s.docRepo.Update(saveCtx, &pending)
		})
		doc.UpdatedAt = time.Now()
		return doc, &report, nil
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, nil, err
	}

	s.logger.Info("doc saved",
		"id", doc.ID,
		"owner_id", ownerID,
		"status", doc.Status,
	)

	return doc, &report, nil
}

// DeleteDocument deletes a draft and its versions and shares
func (s *documentService) DeleteDocument(ctx context.Context, id, ownerID string) error {
	if err := s.docRepo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("doc deleted", "id", id, "owner_id", ownerID)
	return nil
}

// ListDocuments lists a user's drafts, newest first
func (s *documentService) ListDocuments(ctx context.Context, ownerID string) ([]models.Doc, error) {
	return s.docRepo.ListByOwner(ctx, ownerID)
}

// Flush forces any pending deferred saves to disk
func (s *documentService) Flush(ctx context.Context) error {
	return s.saves.Flush(ctx)
}

func (s *documentService) validateCreateRequest(req *services.CreateDocumentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Length(0, config.MaxDocumentTitleLength)),
		validation.Field(&req.SeedKind, validation.In("", "bubble", "carousel", "special")),
		validation.Field(&req.CardCount, validation.Min(0), validation.Max(config.MaxCarouselCards)),
	)
}

func (s *documentService) validateUpdateRequest(req *services.UpdateDocumentRequest) error {
	if req.Title == nil && req.Content == nil {
		return fmt.Errorf("either title or content must be provided")
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.Length(0, config.MaxDocumentTitleLength)),
	)
}
