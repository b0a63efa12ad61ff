package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhaatuTheGamer/seamless-qr-dining/catalog"
	"github.com/DhaatuTheGamer/seamless-qr-dining/kds"
	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
	"github.com/DhaatuTheGamer/seamless-qr-dining/router"
	"github.com/DhaatuTheGamer/seamless-qr-dining/storage"
	"github.com/DhaatuTheGamer/seamless-qr-dining/store"
	"github.com/DhaatuTheGamer/seamless-qr-dining/toast"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main flow:
// 0. Guest scans table t1 and logs in
// 1. Add items, check the running total
// 2. Place the order (pay later)
// 3. Staff logs in, sees the pending order on the dashboard
// 4. Kitchen advances pending -> preparing -> ready -> delivered
// 5. Staff toggles the payment flag
// 6. Customer calls for the bill, staff resolves the request
func TestEndToEndIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := storage.OpenDatabase("sqlite", "file:integration?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	backend, err := storage.NewDatabaseBackend(db)
	require.NoError(t, err)

	toasts := toast.NewQueue(time.Minute)
	st := store.New(backend, toasts)
	require.NoError(t, st.Load(context.Background()))

	r := router.SetupRouter(router.Deps{
		DB:            db,
		Store:         st,
		Catalog:       catalog.Default(),
		Hub:           kds.NewHub(),
		Toasts:        toasts,
		OTPAcceptCode: "1234",
	})

	customerToken := loginGuest(t, r, "t1")

	// Two burgers and a mocktail
	postJSON(t, r, "/api/cart/items", customerToken, map[string]interface{}{
		"itemId": "m1", "quantity": 2,
	}, http.StatusCreated)
	postJSON(t, r, "/api/cart/items", customerToken, map[string]interface{}{
		"itemId": "dr2", "quantity": 1,
	}, http.StatusCreated)

	w := request(t, r, "GET", "/api/cart", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items []models.CartItem `json:"items"`
		Total float64           `json:"total"`
	}
	decode(t, w, &cart)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 58.0, cart.Total, 1e-9)

	w = request(t, r, "POST", "/api/orders", customerToken, map[string]interface{}{})
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	decode(t, w, &order)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 58.0, order.Total, 1e-9)

	staff := loginStaff(t, r)

	w = request(t, r, "GET", "/api/kds/summary", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		OrdersByStatus map[models.OrderStatus][]models.Order `json:"ordersByStatus"`
	}
	decode(t, w, &summary)
	require.Len(t, summary.OrdersByStatus[models.OrderPending], 1)

	for _, status := range []models.OrderStatus{
		models.OrderPreparing,
		models.OrderReady,
		models.OrderDelivered,
	} {
		w = request(t, r, "PATCH", "/api/orders/"+order.ID+"/status", staff, map[string]interface{}{
			"status": status,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = request(t, r, "PATCH", "/api/orders/"+order.ID+"/payment", staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var paid models.Order
	decode(t, w, &paid)
	assert.True(t, paid.IsPaid)

	w = request(t, r, "POST", "/api/service-requests", customerToken, map[string]interface{}{
		"type": "bill",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var billRequest models.ServiceRequest
	decode(t, w, &billRequest)

	w = request(t, r, "DELETE", "/api/service-requests/"+billRequest.ID, staff, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.ServiceRequests())

	// The order survived as history with its final state.
	final, ok := st.FindOrder(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.OrderDelivered, final.Status)
	assert.True(t, final.IsPaid)
}

func request(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, r *gin.Engine, url, token string, body interface{}, wantCode int) {
	t.Helper()
	w := request(t, r, "POST", url, token, body)
	require.Equal(t, wantCode, w.Code, "POST %s: %s", url, w.Body.String())
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func loginGuest(t *testing.T, r *gin.Engine, tableID string) string {
	t.Helper()
	w := request(t, r, "POST", "/api/auth/table/"+tableID+"/guest", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Token string `json:"token"`
	}
	decode(t, w, &data)
	return data.Token
}

func loginStaff(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := request(t, r, "POST", "/api/auth/staff/register", "", map[string]interface{}{
		"name":     "Chef",
		"email":    "chef@example.com",
		"password": "kitchen123",
		"role":     "staff",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = request(t, r, "POST", "/api/auth/staff/login", "", map[string]interface{}{
		"email":    "chef@example.com",
		"password": "kitchen123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Token string `json:"token"`
	}
	decode(t, w, &data)
	return data.Token
}
