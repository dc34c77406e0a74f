package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/resumeforge/backend/internal/config"
	"github.com/resumeforge/backend/internal/middleware"
	chatmodel "github.com/resumeforge/backend/internal/model/chat"
	"github.com/resumeforge/backend/internal/model/resume"
	"github.com/resumeforge/backend/internal/model/template"
	chatService "github.com/resumeforge/backend/internal/service/chat"
	"github.com/resumeforge/backend/internal/store"
	"github.com/resumeforge/backend/pkg/utils"
)

type engineStub struct {
	reply string
}

func (e engineStub) Suggest(context.Context, []chatmodel.Turn, resume.Document) (string, error) {
	return e.reply, nil
}

func newTestRouter(engine chatService.Engine) http.Handler {
	svc := chatService.NewService(store.NewMemoryStore(), engine, config.DefaultChatConfig())
	h := New(svc, template.NewMemoryStore(template.Seed()))

	r := chi.NewRouter()
	r.Use(middleware.Auth(middleware.HeaderIdentity{Header: "X-User-ID"}))
	h.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProcessTurnEndpoint(t *testing.T) {
	router := newTestRouter(engineStub{reply: `{"acknowledgement": "Added your name.", "updatedSection": {"name": "Sam"}}`})

	payload := map[string]any{
		"chatId": "s1",
		"history": []map[string]any{
			{"role": "user", "parts": []map[string]string{{"text": "My name is Sam"}}},
		},
		"resumeData": resume.NewDocument(),
	}
	rec := doJSON(t, router, http.MethodPost, "/chat", "alice", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var out struct {
		Response struct {
			Acknowledgement string `json:"acknowledgement"`
		} `json:"response"`
		History    []chatmodel.Turn `json:"history"`
		ResumeData resume.Document  `json:"resumeData"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Response.Acknowledgement != "Added your name." {
		t.Errorf("acknowledgement = %q", out.Response.Acknowledgement)
	}
	if len(out.History) != 2 {
		t.Errorf("history length = %d, want 2", len(out.History))
	}
	if out.ResumeData.Name != "Sam" {
		t.Errorf("resume name = %q, want Sam", out.ResumeData.Name)
	}
}

func TestProcessTurnRequiresIdentity(t *testing.T) {
	router := newTestRouter(engineStub{reply: `{}`})

	rec := doJSON(t, router, http.MethodPost, "/chat", "", map[string]any{"chatId": "s1"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	var envelope utils.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error == "" {
		t.Error("error envelope must carry a message")
	}
}

func TestProcessTurnValidation(t *testing.T) {
	router := newTestRouter(engineStub{reply: `{}`})

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing chatId", map[string]any{
			"history": []map[string]any{{"role": "user", "parts": []map[string]string{{"text": "hi"}}}},
		}},
		{"empty history", map[string]any{"chatId": "s1", "history": []map[string]any{}}},
		{"history ends with model turn", map[string]any{
			"chatId": "s1",
			"history": []map[string]any{
				{"role": "model", "parts": []map[string]string{{"text": "hello"}}},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/chat", "alice", tt.payload)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestProcessTurnParseFailureReturns500(t *testing.T) {
	router := newTestRouter(engineStub{reply: "not json at all"})

	payload := map[string]any{
		"chatId": "s1",
		"history": []map[string]any{
			{"role": "user", "parts": []map[string]string{{"text": "hi"}}},
		},
	}
	rec := doJSON(t, router, http.MethodPost, "/chat", "alice", payload)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	// The user turn and the notice were still committed.
	rec = doJSON(t, router, http.MethodGet, "/chats/s1", "alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var out struct {
		History []chatmodel.Turn `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.History) != 2 {
		t.Errorf("history length = %d, want 2", len(out.History))
	}
}

func TestNewChatHandsOutIdentifier(t *testing.T) {
	router := newTestRouter(nil)

	rec := doJSON(t, router, http.MethodPost, "/chats", "alice", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID == "" {
		t.Error("missing session id")
	}
}

func TestGetChatUnknownIDReturnsFreshSession(t *testing.T) {
	router := newTestRouter(nil)

	rec := doJSON(t, router, http.MethodGet, "/chats/brand-new", "alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var out struct {
		ID      string           `json:"id"`
		History []chatmodel.Turn `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != "brand-new" || len(out.History) != 0 {
		t.Errorf("fresh session = %+v", out)
	}
}

func TestChatLifecycle(t *testing.T) {
	router := newTestRouter(engineStub{reply: `{"acknowledgement": "ok", "updatedSection": {}}`})

	turn := map[string]any{
		"chatId": "s1",
		"history": []map[string]any{
			{"role": "user", "parts": []map[string]string{{"text": "help with my resume"}}},
		},
	}
	if rec := doJSON(t, router, http.MethodPost, "/chat", "alice", turn); rec.Code != http.StatusOK {
		t.Fatalf("turn status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/chats", "alice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var summaries []chatmodel.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != "s1" {
		t.Fatalf("summaries = %+v", summaries)
	}

	if rec := doJSON(t, router, http.MethodPatch, "/chats/s1", "alice", map[string]string{"newName": "Backend role"}); rec.Code != http.StatusOK {
		t.Fatalf("rename status = %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPatch, "/chats/s1", "bob", map[string]string{"newName": "hijack"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("foreign rename status = %d, want 401", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPatch, "/chats/missing", "alice", map[string]string{"newName": "x"}); rec.Code != http.StatusNotFound {
		t.Errorf("rename missing status = %d, want 404", rec.Code)
	}

	if rec := doJSON(t, router, http.MethodPut, "/chats/s1/template", "alice", map[string]string{"templateId": "modern"}); rec.Code != http.StatusOK {
		t.Errorf("set template status = %d", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPut, "/chats/s1/template", "alice", map[string]string{"templateId": "nope"}); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown template status = %d, want 400", rec.Code)
	}

	if rec := doJSON(t, router, http.MethodDelete, "/chats/s1", "alice", nil); rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/chats", "alice", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("summaries after delete = %+v", summaries)
	}
}
