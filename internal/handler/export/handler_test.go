package export

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/resumeforge/backend/internal/config"
	"github.com/resumeforge/backend/internal/middleware"
	chatmodel "github.com/resumeforge/backend/internal/model/chat"
	"github.com/resumeforge/backend/internal/model/resume"
	"github.com/resumeforge/backend/internal/model/template"
	chatService "github.com/resumeforge/backend/internal/service/chat"
	exportService "github.com/resumeforge/backend/internal/service/export"
	"github.com/resumeforge/backend/internal/store"
)

type rendererStub struct{}

func (rendererStub) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4 " + html[:20]), nil
}

type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string) (chatmodel.Record, error) {
	return chatmodel.Record{}, f.err
}

func (f failingStore) ListByOwner(context.Context, string) ([]chatmodel.Summary, error) {
	return nil, f.err
}

func (f failingStore) Upsert(context.Context, chatmodel.Record, int64) (chatmodel.Record, error) {
	return chatmodel.Record{}, f.err
}

func (f failingStore) Rename(context.Context, string, string) error { return f.err }

func (f failingStore) Delete(context.Context, string) error { return f.err }

func newTestRouter(st store.Store) http.Handler {
	svc := chatService.NewService(st, nil, config.DefaultChatConfig())
	exporter := exportService.NewService(template.NewMemoryStore(template.Seed()), rendererStub{})
	r := chi.NewRouter()
	r.Use(middleware.Auth(middleware.HeaderIdentity{Header: "X-User-ID"}))
	New(svc, exporter).RegisterRoutes(r)
	return r
}

func get(router http.Handler, path, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestExportEndpoint(t *testing.T) {
	st := store.NewMemoryStore()
	doc := resume.NewDocument()
	doc.Name = "Sam Doe"
	seed := chatmodel.Record{ID: "s1", OwnerID: "alice", Transcript: []chatmodel.Turn{}, Document: doc}
	if _, err := st.Upsert(context.Background(), seed, 0); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router := newTestRouter(st)

	rec := get(router, "/chats/s1/export", "alice")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Errorf("body does not look like a pdf: %q", rec.Body.String())
	}

	if rec := get(router, "/chats/s1/export", "bob"); rec.Code != http.StatusUnauthorized {
		t.Errorf("foreign owner status = %d, want 401", rec.Code)
	}
}

func TestExportStoreFailureReturns500(t *testing.T) {
	router := newTestRouter(failingStore{err: errors.New("connection refused")})

	rec := get(router, "/chats/s1/export", "alice")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500, body = %s", rec.Code, rec.Body.String())
	}
}
