package integration

import (
	"net/http"
	"testing"
	"time"

	"teatally/internal/models"
)

func TestAuthLinkFlow_IssueAndResolve(t *testing.T) {
	app := setupApp(t)

	app.registerTelegram(t, 5001, "alice", "Alice Liddell")
	token := app.issueLink(t, 5001, "rating_page", `{"tasting_id":"42"}`)
	if len(token) != 32 {
		t.Fatalf("expected a 32-character token, got %q", token)
	}

	rec := app.request("GET", "/api/auth/resolve?token="+token, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("resolve failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["name"] != "Alice Liddell" {
		t.Errorf("expected resolved name Alice Liddell, got %v", user["name"])
	}
	if result["purpose"] != "rating_page" {
		t.Errorf("expected purpose rating_page, got %v", result["purpose"])
	}
	context := result["context"].(map[string]interface{})
	if context["tasting_id"] != "42" {
		t.Errorf("expected context tasting_id 42, got %v", context["tasting_id"])
	}
	if _, ok := result["admin_token"]; ok {
		t.Error("rating_page resolution must not carry an admin token")
	}

	// Rating links survive repeated resolution
	rec = app.request("GET", "/api/auth/resolve?token="+token, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("second resolve failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestAuthLinkFlow_AdminPanelSingleUse(t *testing.T) {
	app := setupApp(t)

	userID := app.registerTelegram(t, 5002, "bob", "Bob Admin")
	if err := app.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_admin", true).Error; err != nil {
		t.Fatalf("failed to promote user: %v", err)
	}

	token := app.issueLink(t, 5002, "admin_panel", "")

	rec := app.request("GET", "/api/auth/resolve?token="+token, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("resolve failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	adminToken, ok := result["admin_token"].(string)
	if !ok || adminToken == "" {
		t.Fatal("expected a non-empty admin token for admin_panel resolution")
	}

	// The minted session JWT grants admin API access
	rec = app.request("POST", "/api/tastings", `{"title":"Spring Oolongs"}`, adminToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 with minted admin token, got %d: %s", rec.Code, rec.Body.String())
	}

	// Admin links burn on first resolution
	rec = app.request("GET", "/api/auth/resolve?token="+token, "", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second resolve, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "TOKEN_USED" {
		t.Errorf("expected TOKEN_USED, got %v", errObj["code"])
	}
}

func TestAuthLinkFlow_AdminPanelForbiddenForRegularUser(t *testing.T) {
	app := setupApp(t)

	app.registerTelegram(t, 5003, "carol", "Carol")
	rec := app.botRequest("POST", "/api/auth/link", `{"telegram_id":5003,"purpose":"admin_panel"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "FORBIDDEN" {
		t.Errorf("expected FORBIDDEN, got %v", errObj["code"])
	}
}

func TestAuthLinkFlow_UnknownTelegramUser(t *testing.T) {
	app := setupApp(t)

	rec := app.botRequest("POST", "/api/auth/link", `{"telegram_id":99999,"purpose":"rating_page"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "USER_NOT_FOUND" {
		t.Errorf("expected USER_NOT_FOUND, got %v", errObj["code"])
	}
}

func TestAuthLinkFlow_ExpiredToken(t *testing.T) {
	app := setupApp(t)

	app.registerTelegram(t, 5004, "dave", "Dave")
	token := app.issueLink(t, 5004, "result_page", "")

	past := time.Now().Add(-time.Minute)
	if err := app.DB.Model(&models.AuthLink{}).Where("token = ?", token).Update("expires_at", past).Error; err != nil {
		t.Fatalf("failed to expire link: %v", err)
	}

	rec := app.request("GET", "/api/auth/resolve?token="+token, "", "")
	if rec.Code != http.StatusGone {
		t.Fatalf("expected 410, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "TOKEN_EXPIRED" {
		t.Errorf("expected TOKEN_EXPIRED, got %v", errObj["code"])
	}
}

func TestAuthLinkFlow_UnknownToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/auth/resolve?token=deadbeefdeadbeefdeadbeefdeadbeef", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthLinkFlow_GatewayRequiresAPIKey(t *testing.T) {
	app := setupApp(t)

	// request() sends no X-API-Key header
	rec := app.request("POST", "/api/telegram/register", `{"telegram_id":5005}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without API key, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_API_KEY" {
		t.Errorf("expected INVALID_API_KEY, got %v", errObj["code"])
	}
}
