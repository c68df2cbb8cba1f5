package inscriptions_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/features/inscriptions"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := inscriptions.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/inscription", map[string]any{
		"prenom":            "Marie",
		"nom":               "Dubois",
		"email":             "marie.dubois@email.fr",
		"telephone":         "0612345678",
		"age":               25,
		"niveau_experience": "débutant",
	})
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Success        bool   `json:"success"`
		Message        string `json:"message"`
		RegistrationID string `json:"registration_id"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if !resp.Success {
		t.Error("expected success to be true")
	}
	if resp.RegistrationID == "" {
		t.Error("expected a registration_id")
	}
	if resp.Message == "" {
		t.Error("expected a confirmation message")
	}
}

func TestServeCreate_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := inscriptions.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/api/inscription", map[string]any{
		"prenom": "Marie",
	})
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.Success {
		t.Error("expected success to be false")
	}
	for _, field := range []string{"nom", "email", "telephone", "age", "niveau_experience"} {
		if resp.Errors[field] == "" {
			t.Errorf("expected an error for field %q", field)
		}
	}
	if resp.Errors["prenom"] != "" {
		t.Errorf("unexpected error for prenom: %q", resp.Errors["prenom"])
	}

	// Nothing may be persisted on a validation failure.
	n, err := db.Collection("inscriptions").CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 stored registrations, got %d", n)
	}
}

func TestServeCreate_InvalidEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := inscriptions.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/inscription", map[string]any{
		"prenom":            "Marie",
		"nom":               "Dubois",
		"email":             "pas-un-email",
		"telephone":         "0612345678",
		"age":               25,
		"niveau_experience": "débutant",
	})
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Errors["email"] == "" {
		t.Error("expected an error for field email")
	}
}

func TestServeCreate_MalformedBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := inscriptions.NewHandler(db, zap.NewNop())

	req := testutil.NewRawJSONRequest("POST", "/api/inscription", "{not json")
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeCreate_SanitizesMessage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := inscriptions.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewJSONRequest(t, "POST", "/api/inscription", map[string]any{
		"prenom":            "Marie",
		"nom":               "Dubois",
		"email":             "marie.dubois@email.fr",
		"telephone":         "0612345678",
		"age":               25,
		"niveau_experience": "débutant",
		"message":           "<script>alert('x')</script>Bonjour",
	})
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var stored models.Inscription
	if err := db.Collection("inscriptions").FindOne(ctx, map[string]any{}).Decode(&stored); err != nil {
		t.Fatalf("failed to load stored registration: %v", err)
	}
	if stored.Message != "Bonjour" {
		t.Errorf("stored message: got %q, want %q", stored.Message, "Bonjour")
	}
}

func TestServeList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := inscriptions.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateInscription(ctx, "Marie", "Dubois", "marie@email.fr")
	fixtures.CreateInscription(ctx, "Lucie", "Martin", "lucie@email.fr")

	req := httptest.NewRequest("GET", "/api/inscriptions", nil)
	rec := httptest.NewRecorder()

	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Inscriptions []models.Inscription `json:"inscriptions"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Inscriptions) != 2 {
		t.Errorf("expected 2 registrations, got %d", len(resp.Inscriptions))
	}
}

func TestServeList_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := inscriptions.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/inscriptions", nil)
	rec := httptest.NewRecorder()

	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	// Empty list must serialize as [], not null.
	if body := rec.Body.String(); !strings.Contains(body, `"inscriptions":[]`) {
		t.Errorf("expected empty array in body, got %s", body)
	}
}
