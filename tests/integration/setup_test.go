package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"teatally/internal/handlers"
	"teatally/internal/logger"
	"teatally/internal/middleware"
	"teatally/internal/models"
	"teatally/internal/services"
	"teatally/internal/validator"
)

const (
	testBotKey  = "test-bot-key"
	testBaseURL = "https://tea.example.com"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Tasting{},
		&models.TeaSample{},
		&models.RatingDimension{},
		&models.Rating{},
		&models.AuthLink{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	authLinkService := services.NewAuthLinkService(db, testBaseURL, 30*time.Minute, nil)
	tastingService := services.NewTastingService(db)
	ratingService := services.NewRatingService(db)
	summaryService := services.NewSummaryService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	telegramHandler := handlers.NewTelegramHandler(userService, auditService)
	authLinkHandler := handlers.NewAuthLinkHandler(authLinkService, auditService)
	tastingHandler := handlers.NewTastingHandler(tastingService, auditService)
	ratingHandler := handlers.NewRatingHandler(ratingService, auditService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")

	// Bot gateway routes, guarded by the shared API key
	bot := api.Group("/")
	bot.Use(middleware.BotAuthMiddleware(testBotKey))
	bot.POST("/telegram/register", telegramHandler.Register)
	bot.POST("/auth/link", authLinkHandler.IssueLink)

	// Public routes
	api.GET("/auth/resolve", authLinkHandler.ResolveLink)
	api.GET("/tastings/:id", tastingHandler.GetTasting)
	api.GET("/tastings/:id/samples", tastingHandler.ListSamples)
	api.GET("/tastings/:id/dimensions", tastingHandler.ListDimensions)
	api.GET("/tastings/:id/summary", summaryHandler.GetSummary)
	api.GET("/users/:id/tastings/:tastingId/profile", summaryHandler.GetUserProfile)
	api.GET("/users/:id/tastings/:tastingId/ratings", ratingHandler.GetUserRatings)
	api.POST("/ratings", ratingHandler.SubmitRating)

	// Admin routes
	admin := api.Group("/")
	admin.Use(middleware.AdminAuthMiddleware())
	admin.POST("/tastings", tastingHandler.CreateTasting)
	admin.GET("/tastings", tastingHandler.ListTastings)
	admin.PUT("/tastings/:id", tastingHandler.UpdateTasting)
	admin.POST("/tastings/:id/samples", tastingHandler.AddSample)
	admin.PUT("/samples/:id", tastingHandler.UpdateSample)
	admin.POST("/tastings/:id/dimensions", tastingHandler.AddDimension)
	admin.GET("/tastings/:id/export", summaryHandler.ExportCSV)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// botRequest makes an HTTP request authenticated with the bot gateway API key.
func (app *testApp) botRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testBotKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerTelegram registers a Telegram user through the bot gateway and
// returns the created user's ID.
func (app *testApp) registerTelegram(t *testing.T, telegramID int64, username, fullName string) uint {
	t.Helper()
	body := fmt.Sprintf(`{"telegram_id":%d,"username":%q,"full_name":%q}`, telegramID, username, fullName)
	rec := app.botRequest("POST", "/api/telegram/register", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	var user models.User
	if err := app.DB.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	return user.ID
}

// issueLink issues an auth link through the bot gateway and returns the
// bare token extracted from the URL.
func (app *testApp) issueLink(t *testing.T, telegramID int64, purpose, contextJSON string) string {
	t.Helper()
	body := fmt.Sprintf(`{"telegram_id":%d,"purpose":%q`, telegramID, purpose)
	if contextJSON != "" {
		body += `,"context":` + contextJSON
	}
	body += `}`
	rec := app.botRequest("POST", "/api/auth/link", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("issue link failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	url := result["url"].(string)
	return strings.TrimPrefix(url, testBaseURL+"/a/")
}

// adminToken creates an admin user directly in the database and returns
// a signed admin session JWT for them, along with the user ID.
func (app *testApp) adminToken(t *testing.T, telegramID int64) (string, uint) {
	t.Helper()
	user := &models.User{TelegramID: telegramID, FullName: "Test Admin", IsAdmin: true}
	if err := app.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create admin user: %v", err)
	}
	token, err := middleware.GenerateAdminToken(user)
	if err != nil {
		t.Fatalf("failed to generate admin token: %v", err)
	}
	return token, user.ID
}
