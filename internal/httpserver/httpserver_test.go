package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onlinemarket/shop/internal/httpserver"
	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/repo"
	"github.com/onlinemarket/shop/internal/service"
)

var testSecret = []byte("test-secret")

type testEnv struct {
	T     *testing.T
	E     *echo.Echo
	DB    *gorm.DB
	Cart  *httpserver.CartHTTP
	Shop  *httpserver.ShopHTTP
	Track *httpserver.TrackHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}))

	gormRepo := repo.NewGormRepo(gdb)
	catalog := repo.NewCatalogRepo(gdb, nil)

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: gdb,
		Cart: &httpserver.CartHTTP{
			Svc:       &service.CartService{Repo: gormRepo, Catalog: catalog},
			JWTSecret: testSecret,
		},
		Shop: &httpserver.ShopHTTP{
			Svc:       &service.CheckoutService{Repo: gormRepo},
			JWTSecret: testSecret,
		},
		Track: &httpserver.TrackHTTP{
			Svc:       &service.OrderService{Repo: gormRepo},
			JWTSecret: testSecret,
		},
	}
}

func accessCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": float64(userID),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	return &http.Cookie{Name: "accessToken", Value: token, Path: "/"}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createProduct(quantity uint) models.Product {
	env.T.Helper()

	p := models.Product{Type: "keyboard", Brand: "acme", Name: "tkl-87", Quantity: quantity}
	require.NoError(env.T, env.DB.Create(&p).Error)
	return p
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
}
