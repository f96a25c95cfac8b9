package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/storecheck/storecheck/internal/models"
	"github.com/storecheck/storecheck/internal/services"
	"go.uber.org/zap"
)

// CartHandler serves the cart API used by the catalog page
type CartHandler struct {
	carts  services.CartService
	menu   []MenuItem
	delay  time.Duration
	logger *zap.Logger
}

// NewCartHandler creates a new cart handler.
// delay postpones every cart update to mimic a slow storefront.
func NewCartHandler(carts services.CartService, menu []MenuItem, delay time.Duration, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		menu:   menu,
		delay:  delay,
		logger: logger,
	}
}

// AddItemRequest is the body of POST /api/cart
type AddItemRequest struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// CartResponse represents the cart sent to the client
type CartResponse struct {
	ID    string            `json:"id"`
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total int64             `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServeHTTP handles GET and POST /api/cart
func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.sendCart(w, currentCart(w, r, h.carts))
	case http.MethodPost:
		h.addItem(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Malformed cart item", http.StatusBadRequest)
		return
	}

	menuItem, ok := findMenuItem(h.menu, req.Name)
	if !ok {
		sendErrorResponse(w, "Unknown menu item", http.StatusBadRequest)
		return
	}

	cart := currentCart(w, r, h.carts)

	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-r.Context().Done():
			return
		}
	}

	updated, err := h.carts.Add(cart.ID, models.CartItem{
		Name:  menuItem.Name,
		Size:  req.Size,
		Price: menuItem.Price(req.Size),
	})
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			sendErrorResponse(w, "Cart not found", http.StatusNotFound)
			return
		}
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Info("Added item to cart",
		zap.String("cartId", updated.ID),
		zap.String("name", menuItem.Name),
		zap.String("size", req.Size),
		zap.Int("count", updated.Count()))

	h.sendCart(w, updated)
}

func (h *CartHandler) sendCart(w http.ResponseWriter, cart *models.Cart) {
	resp := CartResponse{
		ID:    cart.ID,
		Items: cart.Items,
		Count: cart.Count(),
		Total: cart.Total(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn("Failed to encode cart", zap.Error(err))
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
