package Controllers_test

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

type testEnv struct {
	Router *gin.Engine
	Store  *store.Store
	Toasts *toast.Queue
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.OpenDatabase("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	backend, err := storage.NewDatabaseBackend(db)
	require.NoError(t, err)

	// A long toast window keeps notifications visible for assertions.
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

	return &testEnv{Router: r, Store: st, Toasts: toasts}
}

// doJSON fires one request and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" field of the JSON response envelope.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	if out != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Message
}

// guestToken logs in as a guest at the given table.
func guestToken(t *testing.T, r *gin.Engine, tableID string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/table/"+tableID+"/guest", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

// staffToken registers a staff account and logs it in.
func staffToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/staff/register", "", map[string]interface{}{
		"name":     "Kitchen Staff",
		"email":    "staff@example.com",
		"password": "s3cret!",
		"role":     "staff",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/staff/login", "", map[string]interface{}{
		"email":    "staff@example.com",
		"password": "s3cret!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

// addToCart puts one line in the cart via the API and returns it.
func addToCart(t *testing.T, r *gin.Engine, token, itemID string, quantity int) models.CartItem {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/cart/items", token, map[string]interface{}{
		"itemId":   itemID,
		"quantity": quantity,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var line models.CartItem
	decodeData(t, w, &line)
	require.NotEmpty(t, line.CartID)
	return line
}
