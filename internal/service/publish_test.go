package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/domain/repositories"
	"flexdeck/internal/flex/wire"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func publishableDoc(ownerID string) *models.Doc {
	content := flexdoc.Document{Bubble: &flexdoc.BubbleDoc{
		Type:  flexdoc.DocTypeBubble,
		Title: "Shop card",
		Section: flexdoc.Section{
			Hero: []flexdoc.HeroComponent{{
				ID: "hero_1", Kind: flexdoc.KindHeroImage, Enabled: true,
				Image: &flexdoc.ImageSource{
					Kind:      flexdoc.SourceExternal,
					URL:       "https://cdn.example.com/hero.png",
					LastCheck: &flexdoc.ImageCheckResult{OK: true, Level: flexdoc.CheckPass},
				},
				Ratio: flexdoc.RatioWide, Mode: flexdoc.FitCover,
			}},
			Body: []flexdoc.BodyComponent{{
				ID: "t_1", Kind: flexdoc.KindTitle, Enabled: true,
				Text: "Big summer sale", Size: flexdoc.SizeLG, Weight: flexdoc.WeightBold,
			}},
		},
	}}
	return &models.Doc{
		ID:      "doc-1",
		OwnerID: ownerID,
		Type:    flexdoc.DocTypeBubble,
		Title:   "Shop card",
		Content: content,
		Status:  flexdoc.StatusPublishable,
	}
}

// uncheckedImageDoc has an http hero image with no reachability check,
// which previews fine but blocks the publish gate.
func uncheckedImageDoc(ownerID string) *models.Doc {
	doc := publishableDoc(ownerID)
	doc.Content.Bubble.Section.Hero[0].Image.URL = "http://cdn.example.com/hero.png"
	doc.Content.Bubble.Section.Hero[0].Image.LastCheck = nil
	doc.Status = flexdoc.StatusPreviewable
	return doc
}

type stubDocRepo struct {
	doc *models.Doc
	err error
}

func (r *stubDocRepo) Create(ctx context.Context, doc *models.Doc) error { return nil }

func (r *stubDocRepo) GetByID(ctx context.Context, id, ownerID string) (*models.Doc, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.doc == nil || r.doc.ID != id || r.doc.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return r.doc, nil
}

func (r *stubDocRepo) Update(ctx context.Context, doc *models.Doc) error { return nil }

func (r *stubDocRepo) Delete(ctx context.Context, id, ownerID string) error { return nil }
func (r *stubDocRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Doc, error) {
	return nil, nil
}

type stubVersionRepo struct {
	created []*models.Version
	nextNo  int
}

func (r *stubVersionRepo) Create(ctx context.Context, version *models.Version) error {
	r.nextNo++
	version.ID = fmt.Sprintf("ver-%d", r.nextNo)
	version.VersionNo = r.nextNo
	r.created = append(r.created, version)
	return nil
}

func (r *stubVersionRepo) GetByID(ctx context.Context, id, ownerID string) (*models.Version, error) {
	for _, v := range r.created {
		if v.ID == id && v.OwnerID == ownerID {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubVersionRepo) ListByDoc(ctx context.Context, docID, ownerID string) ([]models.Version, error) {
	out := make([]models.Version, 0, len(r.created))
	for _, v := range r.created {
		if v.DocID == docID {
			out = append(out, *v)
		}
	}
	return out, nil
}

type stubShareRepo struct {
	shares      []*models.Share
	deactivated int
}

func (r *stubShareRepo) Create(ctx context.Context, share *models.Share) error {
	share.ID = "share-" + share.Token[:8]
	r.shares = append(r.shares, share)
	return nil
}

func (r *stubShareRepo) DeactivateForDoc(ctx context.Context, docID, ownerID string) error {
	r.deactivated++
	for _, s := range r.shares {
		if s.DocID == docID {
			s.IsActive = false
		}
	}
	return nil
}

func (r *stubShareRepo) GetActiveByDoc(ctx context.Context, docID, ownerID string) (*models.Share, error) {
	for _, s := range r.shares {
		if s.DocID == docID && s.IsActive {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubShareRepo) GetByToken(ctx context.Context, token string) (*models.Share, error) {
	for _, s := range r.shares {
		if s.Token == token && s.IsActive {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubShareRepo) GetActiveTokenByDoc(ctx context.Context, docID string) (string, error) {
	for _, s := range r.shares {
		if s.DocID == docID && s.IsActive {
			return s.Token, nil
		}
	}
	return "", domain.ErrNotFound
}

// stubTxManager runs the function directly and counts invocations so
// tests can assert the swap went through the transaction boundary.
type stubTxManager struct {
	calls int
}

func (m *stubTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.calls++
	return fn(ctx)
}

func newTestPublishService(docRepo *stubDocRepo, versionRepo *stubVersionRepo, shareRepo *stubShareRepo, tx *stubTxManager) *publishService {
	return &publishService{
		docRepo:     docRepo,
		versionRepo: versionRepo,
		shareRepo:   shareRepo,
		txManager:   tx,
		liffID:      "1234-abcd",
		shareBase:   "https://liff.line.me",
		logger:      testLogger(),
	}
}

func TestPublish_GateRefusalCarriesCodes(t *testing.T) {
	docRepo := &stubDocRepo{doc: uncheckedImageDoc("u1")}
	versionRepo := &stubVersionRepo{}
	shareRepo := &stubShareRepo{}
	tx := &stubTxManager{}
	svc := newTestPublishService(docRepo, versionRepo, shareRepo, tx)

	_, err := svc.Publish(context.Background(), "doc-1", "u1")
	if !errors.Is(err, domain.ErrNotPublishable) {
		t.Fatalf("err = %v, want ErrNotPublishable", err)
	}
	if !strings.Contains(err.Error(), flexdoc.CodeImagePublishBlock) {
		t.Errorf("err = %v, want the escalated image code in the message", err)
	}
	if len(versionRepo.created) != 0 || len(shareRepo.shares) != 0 || tx.calls != 0 {
		t.Error("refused publish must not touch the repositories")
	}
}

func TestPublish_CreatesVersionAndSwapsShare(t *testing.T) {
	docRepo := &stubDocRepo{doc: publishableDoc("u1")}
	versionRepo := &stubVersionRepo{}
	shareRepo := &stubShareRepo{}
	tx := &stubTxManager{}
	svc := newTestPublishService(docRepo, versionRepo, shareRepo, tx)

	first, err := svc.Publish(context.Background(), "doc-1", "u1")
	if err != nil {
		t.Fatalf("first publish: %v", err)
	}
	second, err := svc.Publish(context.Background(), "doc-1", "u1")
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}

	if tx.calls != 2 {
		t.Errorf("tx.calls = %d, want one transaction per publish", tx.calls)
	}
	if first.Version.VersionNo != 1 || second.Version.VersionNo != 2 {
		t.Errorf("version numbers = %d, %d, want 1, 2", first.Version.VersionNo, second.Version.VersionNo)
	}
	if len(first.Version.FlexJSON) == 0 {
		t.Error("version snapshot must carry the compiled JSON")
	}
	if first.Version.ValidationReport.Status != flexdoc.StatusPublishable {
		t.Errorf("snapshot report status = %q", first.Version.ValidationReport.Status)
	}

	active := 0
	for _, s := range shareRepo.shares {
		if s.IsActive {
			active++
			if s.Token != second.Share.Token {
				t.Errorf("active token = %q, want the second publish's %q", s.Token, second.Share.Token)
			}
			if s.VersionID != second.Version.ID {
				t.Errorf("active share points at version %q, want %q", s.VersionID, second.Version.ID)
			}
		}
	}
	if active != 1 {
		t.Errorf("active shares = %d, want exactly 1", active)
	}
	if first.Share.Token == second.Share.Token {
		t.Error("each publish must mint a fresh token")
	}
	if !strings.Contains(second.ShareURL, "liff.state=") {
		t.Errorf("share url = %q, want a deep link", second.ShareURL)
	}
}

func TestPublish_TokenShape(t *testing.T) {
	hex64 := regexp.MustCompile(`^[0-9a-f]{64}$`)
	for i := 0; i < 5; i++ {
		token := mintShareToken()
		if !hex64.MatchString(token) {
			t.Fatalf("token %q is not 64 lowercase hex chars", token)
		}
	}
}

func TestPublish_UnknownDocIs404(t *testing.T) {
	svc := newTestPublishService(&stubDocRepo{}, &stubVersionRepo{}, &stubShareRepo{}, &stubTxManager{})

	_, err := svc.Publish(context.Background(), "doc-x", "u1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveToken_ReturnsSnapshot(t *testing.T) {
	docRepo := &stubDocRepo{doc: publishableDoc("u1")}
	versionRepo := &stubVersionRepo{}
	shareRepo := &stubShareRepo{}
	svc := newTestPublishService(docRepo, versionRepo, shareRepo, &stubTxManager{})

	result, err := svc.Publish(context.Background(), "doc-1", "u1")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	resolution, err := svc.ResolveToken(context.Background(), result.Share.Token)
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if resolution.DocID != "doc-1" || resolution.VersionNo != 1 {
		t.Errorf("resolution = %+v", resolution)
	}
	if string(resolution.FlexJSON) != string(result.Version.FlexJSON) {
		t.Error("resolution must hand back the snapshot verbatim")
	}

	if _, err := svc.ResolveToken(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown token err = %v, want ErrNotFound", err)
	}
}

func TestShareMessages_FolderRejected(t *testing.T) {
	folder := &models.Doc{
		ID: "doc-f", OwnerID: "u1", Type: flexdoc.DocTypeFolder,
		Content: flexdoc.Document{Folder: &flexdoc.FolderDoc{Type: flexdoc.DocTypeFolder, ID: "f1", Name: "Campaigns"}},
	}
	svc := newTestPublishService(&stubDocRepo{doc: folder}, &stubVersionRepo{}, &stubShareRepo{}, &stubTxManager{})

	_, err := svc.ShareMessages(context.Background(), "doc-f", "u1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestShareMessages_UnpublishedUsesPreviewLink(t *testing.T) {
	docRepo := &stubDocRepo{doc: publishableDoc("u1")}
	svc := newTestPublishService(docRepo, &stubVersionRepo{}, &stubShareRepo{}, &stubTxManager{})

	messages, err := svc.ShareMessages(context.Background(), "doc-1", "u1")
	if err != nil {
		t.Fatalf("ShareMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if _, ok := messages[0].(*wire.Message); !ok {
		t.Errorf("message = %#v, want flex", messages[0])
	}
}
