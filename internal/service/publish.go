package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/domain/repositories"
	"flexdeck/internal/domain/services"
	"flexdeck/internal/flex"
	"flexdeck/internal/flex/wire"
)

// publishService implements the PublishService interface
type publishService struct {
	docRepo     repositories.DocRepository
	versionRepo repositories.VersionRepository
	shareRepo   repositories.ShareRepository
	txManager   repositories.TransactionManager
	liffID      string
	shareBase   string
	logger      *slog.Logger
}

// NewPublishService creates a new publish service
func NewPublishService(
	docRepo repositories.DocRepository,
	versionRepo repositories.VersionRepository,
	shareRepo repositories.ShareRepository,
	txManager repositories.TransactionManager,
	liffID string,
	shareBase string,
	logger *slog.Logger,
) services.PublishService {
	return &publishService{
		docRepo:     docRepo,
		versionRepo: versionRepo,
		shareRepo:   shareRepo,
		txManager:   txManager,
		liffID:      liffID,
		shareBase:   shareBase,
		logger:      logger,
	}
}

// Publish runs the strict gate, compiles the draft, and atomically
// snapshots a new version while swapping the active share. The old
// token dies the moment the new one goes live; previously sent
// messages keep working because they embed the compiled JSON, not the
// token.
func (s *publishService) Publish(ctx context.Context, docID, ownerID string) (*services.PublishResult, error) {
	doc, err := s.docRepo.GetByID(ctx, docID, ownerID)
	if err != nil {
		return nil, err
	}

	ok, blocking := flex.IsPublishable(doc.Content)
	if !ok {
		codes := make([]string, 0, len(blocking))
		for _, issue := range blocking {
			codes = append(codes, issue.Code)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPublishable, strings.Join(codes, ", "))
	}

	token := mintShareToken()

	compiled := flex.Compile(doc.Content, s.compileContext(doc.ID, token))
	flexJSON, err := json.Marshal(compiled)
	if err != nil {
		return nil, fmt.Errorf("marshal compiled message: %w", err)
	}

	report := flex.Validate(doc.Content)

	version := &models.Version{
		OwnerID:          ownerID,
		DocID:            docID,
		FlexJSON:         flexJSON,
		ValidationReport: report,
	}
	share := &models.Share{
		OwnerID:  ownerID,
		DocID:    docID,
		Token:    token,
		IsActive: true,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.versionRepo.Create(txCtx, version); err != nil {
			return err
		}
		if err := s.shareRepo.DeactivateForDoc(txCtx, docID, ownerID); err != nil {
			return err
		}
		share.VersionID = version.ID
		return s.shareRepo.Create(txCtx, share)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("doc published",
		"doc_id", docID,
		"owner_id", ownerID,
		"version_no", version.VersionNo,
		"version_id", version.ID,
	)

	return &services.PublishResult{
		Version:  version,
		Share:    share,
		ShareURL: flex.ShareDeepLink(s.compileContext(docID, token)),
	}, nil
}

// ListVersions lists a document's snapshots, newest first
func (s *publishService) ListVersions(ctx context.Context, docID, ownerID string) ([]models.Version, error) {
	// Ownership check doubles as a 404 for foreign documents
	if _, err := s.docRepo.GetByID(ctx, docID, ownerID); err != nil {
		return nil, err
	}
	return s.versionRepo.ListByDoc(ctx, docID, ownerID)
}

// GetVersion retrieves one snapshot
func (s *publishService) GetVersion(ctx context.Context, versionID, ownerID string) (*models.Version, error) {
	return s.versionRepo.GetByID(ctx, versionID, ownerID)
}

// GetActiveShare returns the document's active share
func (s *publishService) GetActiveShare(ctx context.Context, docID, ownerID string) (*models.Share, error) {
	return s.shareRepo.GetActiveByDoc(ctx, docID, ownerID)
}

// ResolveToken resolves a share token publicly
func (s *publishService) ResolveToken(ctx context.Context, token string) (*services.ShareResolution, error) {
	share, err := s.shareRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	version, err := s.versionRepo.GetByID(ctx, share.VersionID, share.OwnerID)
	if err != nil {
		return nil, err
	}

	return &services.ShareResolution{
		Token:     share.Token,
		DocID:     share.DocID,
		VersionNo: version.VersionNo,
		FlexJSON:  version.FlexJSON,
	}, nil
}

// ResolveActiveToken returns the active token for a document publicly
func (s *publishService) ResolveActiveToken(ctx context.Context, docID string) (string, error) {
	return s.shareRepo.GetActiveTokenByDoc(ctx, docID)
}

// ShareMessages compiles the draft into the ordered message slice for
// the platform share API. Uses the active token when one exists so
// share buttons inside the cards deep-link correctly; otherwise the
// deep link falls back to preview mode.
func (s *publishService) ShareMessages(ctx context.Context, docID, ownerID string) ([]wire.ShareMessage, error) {
	doc, err := s.docRepo.GetByID(ctx, docID, ownerID)
	if err != nil {
		return nil, err
	}

	if doc.Content.Type() == flexdoc.DocTypeFolder {
		return nil, fmt.Errorf("%w: folders cannot be shared", domain.ErrValidation)
	}

	var token string
	share, err := s.shareRepo.GetActiveByDoc(ctx, docID, ownerID)
	switch {
	case err == nil:
		token = share.Token
	case errors.Is(err, domain.ErrNotFound):
		// Never published: preview-mode deep links
	default:
		return nil, err
	}

	return flex.ShareMessages(doc.Content, s.compileContext(docID, token)), nil
}

func (s *publishService) compileContext(docID, token string) flex.Context {
	return flex.Context{
		DocID:        docID,
		ShareToken:   token,
		LIFFID:       s.liffID,
		ShareBaseURL: s.shareBase,
	}
}

// mintShareToken builds an unguessable 64-hex-char token from two
// random UUIDs with the dashes stripped.
func mintShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") +
		strings.ReplaceAll(uuid.NewString(), "-", "")
}
