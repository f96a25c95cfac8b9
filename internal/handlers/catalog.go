package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/storecheck/storecheck/internal/models"
	"github.com/storecheck/storecheck/internal/services"
	"go.uber.org/zap"
)

// CartCookie holds the shopper's cart ID
const CartCookie = "cart_id"

// Catalog is the data rendered by the catalog template
type Catalog struct {
	Region string
	Slug   string
	Items  []MenuItem
	Cart   *models.Cart
}

// CatalogHandler renders the pizza catalog for the root and for every known region
type CatalogHandler struct {
	template *template.Template
	menu     []MenuItem
	regions  map[string]string
	carts    services.CartService
	logger   *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(templatePath string, menu []MenuItem, regions map[string]string, carts services.CartService, logger *zap.Logger) (*CatalogHandler, error) {
	tmpl, err := template.New(filepath.Base(templatePath)).Funcs(templateFuncs).ParseFiles(templatePath)
	if err != nil {
		return nil, err
	}

	return &CatalogHandler{
		template: tmpl,
		menu:     menu,
		regions:  regions,
		carts:    carts,
		logger:   logger,
	}, nil
}

var templateFuncs = template.FuncMap{
	"price": func(item MenuItem, size string) int64 { return item.Price(size) },
}

// ServeHTTP handles GET / and GET /{region}
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.Trim(r.URL.Path, "/")
	if slug == "" {
		slug = DefaultRegion
	}
	region, ok := h.regions[slug]
	if !ok {
		http.NotFound(w, r)
		return
	}

	cart := currentCart(w, r, h.carts)

	data := Catalog{
		Region: region,
		Slug:   slug,
		Items:  h.menu,
		Cart:   cart,
	}
	if err := h.template.Execute(w, data); err != nil {
		h.logger.Error("Failed to render catalog", zap.String("region", slug), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}

// currentCart returns the cart named by the cookie, starting a new one when the
// cookie is missing or stale
func currentCart(w http.ResponseWriter, r *http.Request, carts services.CartService) *models.Cart {
	if cookie, err := r.Cookie(CartCookie); err == nil {
		if cart, err := carts.Get(cookie.Value); err == nil {
			return cart
		}
	}

	cart := carts.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     CartCookie,
		Value:    cart.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return cart
}
