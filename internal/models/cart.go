package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Pizza sizes offered by the storefront
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// CartItem is one product line in a cart
type CartItem struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price int64  `json:"price"`
}

// Cart holds the items a shopper has added
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// Cart errors
var (
	ErrInvalidItemName  = errors.New("item name cannot be empty")
	ErrInvalidItemSize  = errors.New("item size must be small, medium or large")
	ErrInvalidItemPrice = errors.New("item price must be positive")
)

// NewCart creates an empty cart with a fresh ID
func NewCart() *Cart {
	return &Cart{
		ID:    uuid.New().String(),
		Items: []CartItem{},
	}
}

// Add validates and appends an item
func (c *Cart) Add(item CartItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return ErrInvalidItemName
	}
	switch item.Size {
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		return ErrInvalidItemSize
	}
	if item.Price <= 0 {
		return ErrInvalidItemPrice
	}

	c.Items = append(c.Items, item)
	return nil
}

// Count returns the number of items in the cart
func (c *Cart) Count() int {
	return len(c.Items)
}

// Total returns the sum of item prices
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}
