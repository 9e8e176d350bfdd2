package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"munch/config"
	"munch/internal/delivery/http/middleware"
	"munch/internal/delivery/http/validator"
	"munch/internal/infra/auth"
	"munch/internal/infra/persistence/memory"
	"munch/internal/infra/token"
	"munch/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the handlers against real in-memory stores behind a
// fully configured echo instance, so responses pass through the same
// validator and error handler as production traffic.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dishRepo := memory.NewDishRepository(memory.DefaultSeed())
	userRepo := memory.NewUserRepository()
	cartRepo := memory.NewCartRepository()
	orderRepo := memory.NewOrderRepository()
	activityRepo := memory.NewActivityRepository()
	ratingRepo := memory.NewRatingRepository()
	supportRepo := memory.NewSupportRepository()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Orders: &config.OrdersConfig{
			DefaultDeliveryDelay: time.Hour,
			MinDeliveryLead:      30 * time.Minute,
		},
	}
	hasher := auth.NewBcryptHasher(cfg)
	tokenSvc := token.NewFakeTokenService()

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		UserRepo: userRepo, Hasher: hasher, TokenSvc: tokenSvc, Logger: logger,
	})
	profileUC := impl.NewProfileService(impl.ProfileServiceParams{
		UserRepo: userRepo, ActivityRepo: activityRepo, Logger: logger,
	})
	menuUC := impl.NewMenuService(impl.MenuServiceParams{
		DishRepo: dishRepo, RatingRepo: ratingRepo, UserRepo: userRepo, Logger: logger,
	})
	cartUC := impl.NewCartService(impl.CartServiceParams{
		CartRepo: cartRepo, DishRepo: dishRepo, Logger: logger,
	})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		CartRepo: cartRepo, OrderRepo: orderRepo, Config: cfg, Logger: logger,
	})
	supportUC := impl.NewSupportService(impl.SupportServiceParams{
		SupportRepo: supportRepo, Logger: logger,
	})

	accountHandler := NewAccountHandler(accountUC, logger)
	profileHandler := NewProfileHandler(profileUC, logger)
	menuHandler := NewMenuHandler(menuUC, logger)
	cartHandler := NewCartHandler(cartUC, logger)
	orderHandler := NewOrderHandler(orderUC, logger)
	supportHandler := NewSupportHandler(supportUC, logger)
	metaHandler := NewMetaHandler(cfg)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/status", metaHandler.Status)
	e.GET("/about", metaHandler.About)
	e.POST("/register", accountHandler.Register)
	e.POST("/login", accountHandler.Login)
	e.GET("/me", accountHandler.Me)
	e.POST("/logout", accountHandler.Logout)
	e.GET("/profiles/summary", profileHandler.Summary)
	e.GET("/profile/:email", profileHandler.Get)
	e.PUT("/profile/:email", profileHandler.Update)
	e.DELETE("/profile/:email", profileHandler.Delete)
	e.POST("/profile/:email/login", profileHandler.RecordLogin)
	e.GET("/profile/:email/activity", profileHandler.GetActivity)
	e.GET("/menu", menuHandler.List)
	e.GET("/menu/vegetarian", menuHandler.Vegetarian)
	e.GET("/menu/top-rated", menuHandler.TopRated)
	e.GET("/menu/:id", menuHandler.GetDish)
	e.GET("/menu/:id/ratings", menuHandler.ListRatings)
	e.POST("/menu/:id/ratings", menuHandler.RateDish)
	e.GET("/cart/:email", cartHandler.GetCart)
	e.POST("/cart/:email/:itemId", cartHandler.AddItem)
	e.GET("/orders/summary", orderHandler.Summary)
	e.POST("/orders/:email", orderHandler.Checkout)
	e.GET("/orders/:email", orderHandler.ListForUser)
	e.PUT("/orders/:orderId/confirm", orderHandler.Confirm)
	e.POST("/support", supportHandler.Submit)

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func registerTestUser(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	payload := fmt.Sprintf(
		`{"name":"Alice","email":%q,"password":"secret123","birthDate":"1990-05-20"}`,
		email,
	)
	rec := doRequest(e, http.MethodPost, "/register", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)

	return data["token"].(string)
}

func TestStatusEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestRegisterLoginMeFlow(t *testing.T) {
	e := newTestServer(t)
	registerTestUser(t, e, "alice@example.com")

	rec := doRequest(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	token := body["data"].(map[string]any)["token"].(string)

	rec = doRequest(e, http.MethodGet, "/me?token="+token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")

	rec = doRequest(e, http.MethodPost, "/logout?token="+token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	e := newTestServer(t)
	registerTestUser(t, e, "alice@example.com")

	payload := `{"name":"Imposter","email":"alice@example.com","password":"other","birthDate":"1991-01-01"}`
	rec := doRequest(e, http.MethodPost, "/register", payload)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "USER_ALREADY_EXISTS", body["error"].(map[string]any)["code"])
}

func TestRegister_BadBirthDate(t *testing.T) {
	e := newTestServer(t)

	payload := `{"name":"Alice","email":"alice@example.com","password":"secret123","birthDate":"20-05-1990"}`
	rec := doRequest(e, http.MethodPost, "/register", payload)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	e := newTestServer(t)
	registerTestUser(t, e, "alice@example.com")

	rec := doRequest(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_WithoutToken(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMenuEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/menu", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["data"].([]any), 4)

	// Fixed routes are not swallowed by the :id parameter.
	rec = doRequest(e, http.MethodGet, "/menu/vegetarian", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]any), 2)

	rec = doRequest(e, http.MethodGet, "/menu/top-rated", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]any), 3)

	rec = doRequest(e, http.MethodGet, "/menu/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Veggie Burger")

	rec = doRequest(e, http.MethodGet, "/menu?category=Italian&sortBy=price_desc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	dishes := decodeBody(t, rec)["data"].([]any)
	require.Len(t, dishes, 2)
	assert.Equal(t, "Pasta", dishes[0].(map[string]any)["name"])
}

func TestMenu_UnknownDish(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/menu/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "DISH_NOT_FOUND", body["error"].(map[string]any)["code"])

	rec = doRequest(e, http.MethodGet, "/menu/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRatingsFlow(t *testing.T) {
	e := newTestServer(t)
	registerTestUser(t, e, "alice@example.com")

	rec := doRequest(e, http.MethodPost, "/menu/1/ratings", `{"email":"alice@example.com","score":5}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/menu/1/ratings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"].([]any), 1)

	// Out-of-range score.
	rec = doRequest(e, http.MethodPost, "/menu/1/ratings", `{"email":"alice@example.com","score":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartAndCheckoutFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/cart/alice@example.com/1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = doRequest(e, http.MethodPost, "/cart/alice@example.com/4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/cart/alice@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, cart["items"].([]any), 2)
	assert.InDelta(t, 26.98, cart["total"].(float64), 0.001)

	rec = doRequest(e, http.MethodPost, "/orders/alice@example.com", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(1), order["id"])
	assert.Equal(t, "In Process", order["status"])

	// The cart is empty after checkout; a second checkout fails.
	rec = doRequest(e, http.MethodGet, "/cart/alice@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["data"].(map[string]any)["items"])

	rec = doRequest(e, http.MethodPost, "/orders/alice@example.com", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_CART", decodeBody(t, rec)["error"].(map[string]any)["code"])
}

func TestCart_UnknownDish(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/cart/alice@example.com/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderConfirmFlow(t *testing.T) {
	e := newTestServer(t)

	doRequest(e, http.MethodPost, "/cart/alice@example.com/1", "")
	rec := doRequest(e, http.MethodPost, "/orders/alice@example.com", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPut, "/orders/1/confirm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Delivered", decodeBody(t, rec)["data"].(map[string]any)["status"])

	// A second confirm conflicts.
	rec = doRequest(e, http.MethodPut, "/orders/1/confirm", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ORDER_ALREADY_FINALIZED", decodeBody(t, rec)["error"].(map[string]any)["code"])

	rec = doRequest(e, http.MethodPut, "/orders/999/confirm", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrdersSummaryEndpoint(t *testing.T) {
	e := newTestServer(t)

	doRequest(e, http.MethodPost, "/cart/alice@example.com/1", "")
	doRequest(e, http.MethodPost, "/orders/alice@example.com", "")
	doRequest(e, http.MethodPut, "/orders/1/confirm", "")

	rec := doRequest(e, http.MethodGet, "/orders/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(1), summary["total"])
	assert.Equal(t, float64(1), summary["delivered"])
}

func TestProfileEndpoints(t *testing.T) {
	e := newTestServer(t)
	registerTestUser(t, e, "alice@example.com")

	rec := doRequest(e, http.MethodGet, "/profile/alice@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Alice", profile["name"])

	// The password hash never leaves the service.
	assert.NotContains(t, rec.Body.String(), "password")

	rec = doRequest(e, http.MethodPut, "/profile/alice@example.com",
		`{"name":"Alice Updated","address":"New Street 2","birthDate":"1990-05-20"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Alice Updated")

	rec = doRequest(e, http.MethodGet, "/profiles/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(1), summary["totalUsers"])

	rec = doRequest(e, http.MethodDelete, "/profile/alice@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/profile/alice@example.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivityEndpoints(t *testing.T) {
	e := newTestServer(t)
	registerTestUser(t, e, "alice@example.com")

	rec := doRequest(e, http.MethodPost, "/profile/alice@example.com/login", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/profile/alice@example.com/activity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	activity := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Active", activity["status"])

	rec = doRequest(e, http.MethodPost, "/profile/nobody@example.com/login", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSupportEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/support", `{"email":"alice@example.com","message":"Cold pizza"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decodeBody(t, rec)["data"].(map[string]any)["confirmationId"])

	rec = doRequest(e, http.MethodPost, "/support", `{"email":"","message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
