package scenario

// Selectors is the DOM contract of the storefront
type Selectors struct {
	CatalogItems  string
	ItemTitle     string
	SelectButton  string
	SizeSmall     string
	AddToCart     string
	CartItemTitle string
	CartItemPrice string
	CartCount     string
	CartButton    string
	RegionName    string
}

// DefaultSelectors returns the selectors used by the live storefront
func DefaultSelectors() Selectors {
	return Selectors{
		CatalogItems:  "#pizza-section .pizza-item",
		ItemTitle:     ".pizza-item__title",
		SelectButton:  ".button-select",
		SizeSmall:     ".button-size-small",
		AddToCart:     ".button-add-to-cart",
		CartItemTitle: ".cart-item__title",
		CartItemPrice: ".cart-item__price",
		CartCount:     ".cart-button__count",
		CartButton:    ".cart-button",
		RegionName:    ".region-name",
	}
}

// Expectations are the literal values each scenario asserts against
type Expectations struct {
	StartURL         string
	CatalogURL       string
	CatalogItemCount int
	RegionName       string
	CartURL          string
	CartItemCount    int
	MultiItemCount   int
}

// DefaultExpectations returns the expected values for the live storefront
func DefaultExpectations() Expectations {
	return Expectations{
		StartURL:         "https://dodopizza.ru/",
		CatalogURL:       "https://dodopizza.ru/moscow",
		CatalogItemCount: 34,
		RegionName:       "Москва",
		CartURL:          "https://dodopizza.ru/",
		CartItemCount:    1,
		MultiItemCount:   5,
	}
}
