package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texnomart/backend/internal/transport"
)

func TestCreateOrderHTTP(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.registerAndLogin("aziz")
	category := env.createCategory(access, "Phones")
	product := env.createProduct(access, "Pixel 9", category.ID, 900)

	rec := env.doJSONRequest("POST", "/orders/add", map[string]any{
		"product":  product.ID,
		"quantity": 2,
		"month":    6,
	}, access)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload transport.OrderPayload
	env.decodeJSON(rec, &payload)
	require.Equal(t, 2, payload.Quantity)
	require.Equal(t, 6, payload.Month)
	require.EqualValues(t, 150, payload.MonthlyPayment)
}

func TestCreateOrderDefaultsHTTP(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.registerAndLogin("aziz")
	category := env.createCategory(access, "Phones")
	product := env.createProduct(access, "Pixel 9", category.ID, 900)

	// Quantity and month fall back to 1 and 3 when the body omits them.
	rec := env.doJSONRequest("POST", "/orders/add", map[string]any{"product": product.ID}, access)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload transport.OrderPayload
	env.decodeJSON(rec, &payload)
	require.Equal(t, 1, payload.Quantity)
	require.Equal(t, 3, payload.Month)
	require.EqualValues(t, 300, payload.MonthlyPayment)
}

func TestCreateOrderMonthOutOfRangeHTTP(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.registerAndLogin("aziz")
	category := env.createCategory(access, "Phones")
	product := env.createProduct(access, "Pixel 9", category.ID, 900)

	for _, month := range []int{2, 13} {
		rec := env.doJSONRequest("POST", "/orders/add", map[string]any{
			"product": product.ID,
			"month":   month,
		}, access)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCreateOrderUnknownProductHTTP(t *testing.T) {
	env := newTestEnv(t)
	access, _ := env.registerAndLogin("aziz")

	rec := env.doJSONRequest("POST", "/orders/add", map[string]any{"product": 42}, access)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrdersRequireAuthHTTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest("GET", "/orders", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSONRequest("POST", "/orders/add", map[string]any{"product": 1}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrdersScopedToUserHTTP(t *testing.T) {
	env := newTestEnv(t)
	adminAccess, _ := env.registerAndLogin("admin")
	category := env.createCategory(adminAccess, "Phones")
	product := env.createProduct(adminAccess, "Pixel 9", category.ID, 900)

	rec := env.doJSONRequest("POST", "/orders/add", map[string]any{"product": product.ID}, adminAccess)
	require.Equal(t, http.StatusCreated, rec.Code)

	otherAccess, _ := env.registerAndLogin("guest")
	rec = env.doJSONRequest("GET", "/orders", nil, otherAccess)
	require.Equal(t, http.StatusOK, rec.Code)

	var payloads []transport.OrderPayload
	env.decodeJSON(rec, &payloads)
	require.Empty(t, payloads)

	rec = env.doJSONRequest("GET", "/orders", nil, adminAccess)
	require.Equal(t, http.StatusOK, rec.Code)
	env.decodeJSON(rec, &payloads)
	require.Len(t, payloads, 1)
}
