package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace_escrow/internal/adapter/persistence/memory"
	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/idempotency"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/infrastructure/payments"
	"marketplace_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type staticTokens map[string]entities.Actor

func (s staticTokens) Validate(token string) (entities.Actor, error) {
	if a, ok := s[token]; ok {
		return a, nil
	}
	return entities.Actor{}, errors.New("unknown token")
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	store := memory.NewStore()
	deps := Dependencies{
		Needs:    usecase.NewNeedUseCase(store.Needs(), store.Offers(), store, nil, log),
		Offers:   usecase.NewOfferUseCase(store.Needs(), store.Offers(), store, nil, log),
		Orders:   usecase.NewOrderUseCase(store.Needs(), store.Offers(), store.Orders(), store, payments.NewMockGateway(log), idempotency.NewMemoryStore(), nil, log),
		Disputes: usecase.NewDisputeUseCase(store.Needs(), store.Orders(), store.Disputes(), store, nil, log),
		Tokens: staticTokens{
			"buyer": {ID: "b1", Name: "Buyer"},
			"admin": {ID: "a1", Name: "Admin", Role: entities.RoleAdmin},
		},
		Log: log,
	}
	return NewRouter(deps)
}

func serve(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{name: "ping is public", method: http.MethodGet, path: "/v1/ping", want: http.StatusOK},
		{name: "needs require a token", method: http.MethodGet, path: "/v1/needs", want: http.StatusUnauthorized},
		{name: "unknown token", method: http.MethodGet, path: "/v1/needs", token: "nope", want: http.StatusUnauthorized},
		{name: "authenticated list", method: http.MethodGet, path: "/v1/needs", token: "buyer", want: http.StatusOK},
		{name: "resolve is admin only", method: http.MethodPost, path: "/v1/disputes/d1/resolve", token: "buyer", body: map[string]string{"outcome": "release"}, want: http.StatusForbidden},
		{name: "admin reaches resolve", method: http.MethodPost, path: "/v1/disputes/d1/resolve", token: "admin", body: map[string]string{"outcome": "release"}, want: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/v1/nothing", token: "buyer", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.path, tt.token, tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestNewRouter_CreateAndFetchNeed(t *testing.T) {
	r := newTestRouter()

	w := serve(r, http.MethodPost, "/v1/needs", "buyer", map[string]any{
		"title":    "Fix the roof",
		"category": "home",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	var created struct {
		Success bool `json:"success"`
		Need    struct {
			ID      string `json:"id"`
			BuyerID string `json:"buyerId"`
		} `json:"need"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.Success || created.Need.ID == "" || created.Need.BuyerID != "b1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = serve(r, http.MethodGet, "/v1/needs/"+created.Need.ID, "buyer", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
