package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": uint(7), "role": "user", "exp": exp.Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return raw
}

func doRequest(authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		id, ok := UserID(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, echo.Map{"userID": id, "role": c.Get("role")})
	}, RequireAuth(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthValidToken(t *testing.T) {
	raw := signToken(t, testSecret, time.Now().Add(time.Minute))

	rec := doRequest("Bearer " + raw)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"userID": 7, "role": "user"}`, rec.Body.String())
}

func TestRequireAuthMissingHeader(t *testing.T) {
	rec := doRequest("")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthBadScheme(t *testing.T) {
	raw := signToken(t, testSecret, time.Now().Add(time.Minute))

	rec := doRequest("Basic " + raw)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthWrongSecret(t *testing.T) {
	raw := signToken(t, []byte("other-secret"), time.Now().Add(time.Minute))

	rec := doRequest("Bearer " + raw)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	raw := signToken(t, testSecret, time.Now().Add(-time.Minute))

	rec := doRequest("Bearer " + raw)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
