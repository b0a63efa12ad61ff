package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhaatuTheGamer/seamless-qr-dining/models"
)

type cartPayload struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func TestCartRequiresSession(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env.Router, "GET", "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddToCartAndTotal(t *testing.T) {
	env := setupTestEnv(t)
	token := guestToken(t, env.Router, "t1")

	addToCart(t, env.Router, token, "m1", 2) // 24.00 each
	addToCart(t, env.Router, token, "dr2", 1) // 10.00

	w := doJSON(t, env.Router, "GET", "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cart cartPayload
	decodeData(t, w, &cart)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 58.0, cart.Total, 1e-9)
}

func TestAddToCartValidation(t *testing.T) {
	env := setupTestEnv(t)
	token := guestToken(t, env.Router, "t1")

	w := doJSON(t, env.Router, "POST", "/api/cart/items", token, map[string]interface{}{
		"itemId":   "zzz",
		"quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, env.Router, "POST", "/api/cart/items", token, map[string]interface{}{
		"itemId":   "m1",
		"quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndRemoveCartLine(t *testing.T) {
	env := setupTestEnv(t)
	token := guestToken(t, env.Router, "t1")

	line := addToCart(t, env.Router, token, "s1", 2)

	w := doJSON(t, env.Router, "PATCH", "/api/cart/items/"+line.CartID, token, map[string]interface{}{
		"delta": -1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var cart cartPayload
	decodeData(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Driving the quantity to zero removes the line.
	w = doJSON(t, env.Router, "PATCH", "/api/cart/items/"+line.CartID, token, map[string]interface{}{
		"delta": -1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Items)

	// Removing it again stays a quiet no-op.
	w = doJSON(t, env.Router, "DELETE", "/api/cart/items/"+line.CartID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearCart(t *testing.T) {
	env := setupTestEnv(t)
	token := guestToken(t, env.Router, "t1")

	addToCart(t, env.Router, token, "m2", 1)
	addToCart(t, env.Router, token, "m3", 1)

	w := doJSON(t, env.Router, "DELETE", "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.Store.Cart())
}

func TestAddToCartEmitsNotification(t *testing.T) {
	env := setupTestEnv(t)
	token := guestToken(t, env.Router, "t1")

	addToCart(t, env.Router, token, "m1", 2)

	messages := []string{}
	for _, item := range env.Toasts.Active() {
		messages = append(messages, item.Message)
	}
	assert.Contains(t, messages, "Added 2x Wagyu Beef Burger to cart")
}
