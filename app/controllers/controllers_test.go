package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appgraphql "github.com/htoohtoo/storefront/app/graphql"
	"github.com/htoohtoo/storefront/app/routes"
	"github.com/htoohtoo/storefront/app/services"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/router"
	"github.com/htoohtoo/storefront/pkg/session"
	"github.com/htoohtoo/storefront/pkg/snapshot"
	"github.com/htoohtoo/storefront/pkg/testkit"
	"github.com/htoohtoo/storefront/pkg/ws"
)

func newAPI(t *testing.T) http.Handler {
	t.Helper()

	manager := store.NewManager(store.NewAccounts(), snapshot.NewMemory())
	ledger := store.NewLedger()
	schema, err := appgraphql.NewSchema()
	require.NoError(t, err)

	r := router.New()
	routes.RegisterAPI(r, routes.Deps{
		Manager:  manager,
		Ledger:   ledger,
		Checkout: services.NewCheckout(services.NewPaymentGateway(0), ledger),
		Hub:      ws.NewHub(),
		Schema:   schema,
	})
	return session.Middleware(r.Handler())
}

func sess(id string) map[string]string {
	return map[string]string{session.Header: id}
}

func login(t *testing.T, api http.Handler, sessionID, email, password string) string {
	t.Helper()
	rec := testkit.Do(t, api, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, sess(sessionID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := testkit.Data(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	api := newAPI(t)

	rec := testkit.Do(t, api, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "customer@example.com", "password": "nope"}, sess("s1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = testkit.Do(t, api, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "customer@example.com", "password": "customer123"}, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := testkit.Data(t, rec)
	user := data["user"].(map[string]any)
	assert.Equal(t, "John Doe", user["name"])
	assert.Equal(t, "customer", user["role"])
	assert.NotContains(t, user, "password")
}

func TestLoginValidation(t *testing.T) {
	api := newAPI(t)

	rec := testkit.Do(t, api, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "not-an-email"}, sess("s1"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMeRequiresLogin(t *testing.T) {
	api := newAPI(t)

	rec := testkit.Do(t, api, http.MethodGet, "/api/auth/me", nil, sess("s1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, api, "s1", "customer@example.com", "customer123")
	rec = testkit.Do(t, api, http.MethodGet, "/api/auth/me", nil, sess("s1"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductsEndpoints(t *testing.T) {
	api := newAPI(t)

	rec := testkit.Do(t, api, http.MethodGet, "/api/products?category=Fruits", nil, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	testkit.Decode(t, rec, &body)
	assert.Len(t, body.Data, 3)

	rec = testkit.Do(t, api, http.MethodGet, "/api/products/1", nil, sess("s1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = testkit.Do(t, api, http.MethodGet, "/api/products/999", nil, sess("s1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = testkit.Do(t, api, http.MethodGet, "/api/categories", nil, sess("s1"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartFlow(t *testing.T) {
	api := newAPI(t)

	// Unknown products are rejected.
	rec := testkit.Do(t, api, http.MethodPost, "/api/cart/items",
		map[string]string{"productId": "999"}, sess("s1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for i := 0; i < 2; i++ {
		rec = testkit.Do(t, api, http.MethodPost, "/api/cart/items",
			map[string]string{"productId": "1"}, sess("s1"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = testkit.Do(t, api, http.MethodGet, "/api/cart", nil, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)
	data := testkit.Data(t, rec)
	assert.EqualValues(t, 2, data["totalItems"])
	assert.EqualValues(t, 5.98, data["totalPrice"])

	// Carts are per-session.
	rec = testkit.Do(t, api, http.MethodGet, "/api/cart", nil, sess("other"))
	assert.EqualValues(t, 0, testkit.Data(t, rec)["totalItems"])

	rec = testkit.Do(t, api, http.MethodPut, "/api/cart/items/1",
		map[string]int{"quantity": 0}, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, testkit.Data(t, rec)["totalItems"])
}

func TestCheckoutFlow(t *testing.T) {
	api := newAPI(t)
	login(t, api, "s1", "customer@example.com", "customer123")

	address := map[string]string{
		"fullName": "John Doe", "street": "123 Main St", "city": "New York",
		"state": "NY", "postalCode": "10001", "country": "USA", "phone": "+1 234 567 890",
	}
	payload := map[string]any{"address": address, "paymentMethod": "Credit Card"}

	// Empty cart is rejected.
	rec := testkit.Do(t, api, http.MethodPost, "/api/checkout", payload, sess("s1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testkit.Do(t, api, http.MethodPost, "/api/cart/items",
		map[string]string{"productId": "1"}, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = testkit.Do(t, api, http.MethodGet, "/api/checkout/quote", nil, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 5.99, testkit.Data(t, rec)["shipping"])

	rec = testkit.Do(t, api, http.MethodPost, "/api/checkout", payload, sess("s1"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := testkit.Data(t, rec)
	assert.Equal(t, "processing", order["status"])

	// Cart is cleared, and the order leads the history.
	rec = testkit.Do(t, api, http.MethodGet, "/api/cart", nil, sess("s1"))
	assert.EqualValues(t, 0, testkit.Data(t, rec)["totalItems"])

	rec = testkit.Do(t, api, http.MethodGet, "/api/orders", nil, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)
	var orders struct {
		Data []map[string]any `json:"data"`
	}
	testkit.Decode(t, rec, &orders)
	require.NotEmpty(t, orders.Data)
	assert.Equal(t, order["id"], orders.Data[0]["id"])
}

func TestCheckoutMissingAddress(t *testing.T) {
	api := newAPI(t)
	login(t, api, "s1", "customer@example.com", "customer123")

	rec := testkit.Do(t, api, http.MethodPost, "/api/cart/items",
		map[string]string{"productId": "1"}, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = testkit.Do(t, api, http.MethodPost, "/api/checkout",
		map[string]any{"paymentMethod": "Credit Card"}, sess("s1"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdminGuard(t *testing.T) {
	api := newAPI(t)

	rec := testkit.Do(t, api, http.MethodGet, "/api/admin/stats", nil, sess("s1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	customerToken := login(t, api, "s1", "customer@example.com", "customer123")
	headers := sess("s1")
	headers["Authorization"] = "Bearer " + customerToken
	rec = testkit.Do(t, api, http.MethodGet, "/api/admin/stats", nil, headers)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := login(t, api, "s2", "admin@htoohtoo.com", "admin123")
	headers = sess("s2")
	headers["Authorization"] = "Bearer " + adminToken
	rec = testkit.Do(t, api, http.MethodGet, "/api/admin/stats", nil, headers)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAdminOrderStatus(t *testing.T) {
	api := newAPI(t)

	// Place an order as a customer first.
	login(t, api, "s1", "customer@example.com", "customer123")
	rec := testkit.Do(t, api, http.MethodPost, "/api/cart/items",
		map[string]string{"productId": "1"}, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)

	address := map[string]string{
		"fullName": "John Doe", "street": "123 Main St", "city": "New York",
		"state": "NY", "postalCode": "10001", "country": "USA", "phone": "+1 234 567 890",
	}
	rec = testkit.Do(t, api, http.MethodPost, "/api/checkout",
		map[string]any{"address": address, "paymentMethod": "Credit Card"}, sess("s1"))
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := testkit.Data(t, rec)["id"].(string)

	adminToken := login(t, api, "s2", "admin@htoohtoo.com", "admin123")
	headers := sess("s2")
	headers["Authorization"] = "Bearer " + adminToken

	rec = testkit.Do(t, api, http.MethodPatch, "/api/admin/orders/"+orderID+"/status",
		map[string]string{"status": "shipped"}, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "shipped", testkit.Data(t, rec)["status"])

	rec = testkit.Do(t, api, http.MethodPatch, "/api/admin/orders/"+orderID+"/status",
		map[string]string{"status": "teleported"}, headers)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGraphQLCatalog(t *testing.T) {
	api := newAPI(t)

	rec := testkit.Do(t, api, http.MethodPost, "/api/graphql",
		map[string]string{"query": `{ product(id: "1") { name price } }`}, sess("s1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Product map[string]any `json:"product"`
		} `json:"data"`
	}
	testkit.Decode(t, rec, &body)
	assert.Equal(t, "Fresh Apples", body.Data.Product["name"])
	assert.EqualValues(t, 2.99, body.Data.Product["price"])
}
