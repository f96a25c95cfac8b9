package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/storecheck/storecheck/internal/models"
)

// ErrCartNotFound is returned for unknown cart IDs
var ErrCartNotFound = errors.New("cart not found")

// CartService manages fixture storefront carts
type CartService interface {
	Create() *models.Cart
	Get(id string) (*models.Cart, error)
	Add(id string, item models.CartItem) (*models.Cart, error)
}

// CartServiceImpl keeps carts in memory
type CartServiceImpl struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

// NewCartService creates an empty in-memory cart service
func NewCartService() *CartServiceImpl {
	return &CartServiceImpl{
		carts: make(map[string]*models.Cart),
	}
}

// Create starts a new empty cart
func (s *CartServiceImpl) Create() *models.Cart {
	cart := models.NewCart()

	s.mu.Lock()
	s.carts[cart.ID] = cart
	s.mu.Unlock()

	return snapshot(cart)
}

// Get returns a copy of the cart with the given ID
func (s *CartServiceImpl) Get(id string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return snapshot(cart), nil
}

// Add appends an item to the cart and returns the updated copy
func (s *CartServiceImpl) Add(id string, item models.CartItem) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	if err := cart.Add(item); err != nil {
		return nil, fmt.Errorf("invalid cart item: %w", err)
	}
	return snapshot(cart), nil
}

// snapshot copies a cart so callers never share the stored slice
func snapshot(cart *models.Cart) *models.Cart {
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	return &models.Cart{ID: cart.ID, Items: items}
}
