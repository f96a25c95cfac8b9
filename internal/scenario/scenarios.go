package scenario

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Scenario names
const (
	CatalogCount      = "catalog-count"
	AddToCart         = "add-to-cart"
	AddMultipleToCart = "add-multiple-to-cart"
)

// DefaultCartWait bounds the wait for the cart counter in the single-item scenario
const DefaultCartWait = 10 * time.Second

// Scenario is one independent end-to-end check
type Scenario struct {
	Name        string
	Description string
	Run         func(ctx context.Context, page Page) error
}

// Suite holds what the scenarios need besides the page
type Suite struct {
	BaseURL   string
	Timeout   time.Duration
	CartWait  time.Duration
	Selectors Selectors
	Expect    Expectations
	Intn      func(n int) int
	Logger    *zap.Logger
}

// Scenarios returns the registered scenarios in execution order
func (s *Suite) Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        CatalogCount,
			Description: "Pizza section displays the expected number of items and region",
			Run:         s.CatalogCount,
		},
		{
			Name:        AddToCart,
			Description: "A random pizza added to the cart shows up with the same name and price",
			Run:         s.AddToCart,
		},
		{
			Name:        AddMultipleToCart,
			Description: "Several random pizzas added to the cart are all counted and listed",
			Run:         s.AddMultipleToCart,
		},
	}
}

// CatalogCount checks the pizza section item count and the detected region
func (s *Suite) CatalogCount(ctx context.Context, page Page) error {
	sel := s.Selectors
	log := s.Logger.With(zap.String("scenario", CatalogCount))

	log.Info("Step 1: Go to page", zap.String("url", s.Expect.StartURL))
	if err := page.Goto(s.Expect.StartURL); err != nil {
		return err
	}

	log.Info("Step 2: Count items in the pizza section")
	items, err := page.QueryAll(sel.CatalogItems)
	if err != nil {
		return fmt.Errorf("failed to query catalog items: %w", err)
	}

	log.Info("Step 3: Read the region name", zap.Int("items", len(items)))
	region, err := page.TextContent(sel.RegionName)
	if err != nil {
		return fmt.Errorf("failed to read region name: %w", err)
	}

	if err := expectEqual("page URL", s.Expect.CatalogURL, page.URL()); err != nil {
		return err
	}
	if err := expectEqual("catalog item count", s.Expect.CatalogItemCount, len(items)); err != nil {
		return err
	}
	return expectEqual("region name", s.Expect.RegionName, strings.TrimSpace(region))
}

// AddToCart adds one random pizza and checks the cart shows its name and price
func (s *Suite) AddToCart(ctx context.Context, page Page) error {
	sel := s.Selectors
	log := s.Logger.With(zap.String("scenario", AddToCart))

	log.Info("Step 1: Go to page", zap.String("url", s.Expect.StartURL))
	if err := page.Goto(s.Expect.StartURL); err != nil {
		return err
	}

	log.Info("Step 2: Add a random pizza to the cart")
	items, err := page.QueryAll(sel.CatalogItems)
	if err != nil {
		return fmt.Errorf("failed to query catalog items: %w", err)
	}
	added, err := s.addRandomItem(page, items, 1, s.cartWait())
	if err != nil {
		return err
	}

	if err := expectEqual("page URL", s.Expect.CartURL, page.URL()); err != nil {
		return err
	}

	cartName, err := page.TextContent(sel.CartItemTitle)
	if err != nil {
		return fmt.Errorf("failed to read cart item title: %w", err)
	}
	if err := expectEqual("cart item name", added.name, strings.TrimSpace(cartName)); err != nil {
		return err
	}

	cartPrice, err := page.TextContent(sel.CartItemPrice)
	if err != nil {
		return fmt.Errorf("failed to read cart item price: %w", err)
	}
	if err := expectEqual("cart item price", NormalizePrice(added.price), NormalizePrice(cartPrice)); err != nil {
		return err
	}

	count, err := page.TextContent(sel.CartCount)
	if err != nil {
		return fmt.Errorf("failed to read cart count: %w", err)
	}
	return expectEqual("cart count", strconv.Itoa(s.Expect.CartItemCount), strings.TrimSpace(count))
}

// AddMultipleToCart adds several random pizzas and checks the cart count and listing
func (s *Suite) AddMultipleToCart(ctx context.Context, page Page) error {
	sel := s.Selectors
	want := s.Expect.MultiItemCount
	log := s.Logger.With(zap.String("scenario", AddMultipleToCart))

	log.Info("Step 1: Go to page", zap.String("url", s.BaseURL))
	if err := page.Goto(s.BaseURL); err != nil {
		return err
	}

	log.Info("Step 2: Add random pizzas to the cart", zap.Int("count", want))
	items, err := page.QueryAll(sel.CatalogItems)
	if err != nil {
		return fmt.Errorf("failed to query catalog items: %w", err)
	}
	for i := 0; i < want; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		added, err := s.addRandomItem(page, items, i+1, s.Timeout)
		if err != nil {
			return fmt.Errorf("add %d of %d: %w", i+1, want, err)
		}
		log.Debug("Added pizza", zap.String("name", added.name), zap.Int("cart", i+1))
	}

	log.Info("Step 3: Click on the cart button")
	if err := page.Click(sel.CartButton); err != nil {
		return fmt.Errorf("failed to open cart: %w", err)
	}

	if err := expectEqual("page URL", s.BaseURL, page.URL()); err != nil {
		return err
	}
	return s.assertCart(page)
}

// assertCart checks the cart counter and the cart listing separately
func (s *Suite) assertCart(page Page) error {
	sel := s.Selectors
	want := s.Expect.MultiItemCount

	count, err := page.TextContent(sel.CartCount)
	if err != nil {
		return fmt.Errorf("failed to read cart count: %w", err)
	}
	if err := expectEqual("cart count", strconv.Itoa(want), strings.TrimSpace(count)); err != nil {
		return err
	}

	titles, err := page.TextContents(sel.CartItemTitle)
	if err != nil {
		return fmt.Errorf("failed to read cart listing: %w", err)
	}
	var listing []string
	for _, title := range titles {
		listing = append(listing, SplitListing(title)...)
	}
	return expectEqual("cart listing entries", want, len(listing))
}

// addedItem is what the shopper saw before the cart changed
type addedItem struct {
	name  string
	price string
}

// addRandomItem selects a random item, picks the small size, adds it to the
// cart and waits until the cart counter shows cartCount.
func (s *Suite) addRandomItem(page Page, items []Element, cartCount int, wait time.Duration) (addedItem, error) {
	sel := s.Selectors

	index, err := PickIndex(s.Intn, len(items))
	if err != nil {
		return addedItem{}, noMatches(sel.CatalogItems)
	}
	item := items[index]

	name, err := item.TextContent(sel.ItemTitle)
	if err != nil {
		return addedItem{}, fmt.Errorf("failed to read item title: %w", err)
	}
	if err := item.Click(sel.SelectButton); err != nil {
		return addedItem{}, fmt.Errorf("failed to select item %d: %w", index, err)
	}
	if err := page.Click(sel.SizeSmall); err != nil {
		return addedItem{}, fmt.Errorf("failed to choose small size: %w", err)
	}
	price, err := page.TextContent(sel.AddToCart)
	if err != nil {
		return addedItem{}, fmt.Errorf("failed to read item price: %w", err)
	}
	if err := page.Click(sel.AddToCart); err != nil {
		return addedItem{}, fmt.Errorf("failed to add item to cart: %w", err)
	}
	if err := page.WaitForText(sel.CartCount, strconv.Itoa(cartCount), wait); err != nil {
		return addedItem{}, fmt.Errorf("cart count did not reach %d: %w", cartCount, err)
	}

	return addedItem{name: strings.TrimSpace(name), price: price}, nil
}

func (s *Suite) cartWait() time.Duration {
	if s.CartWait > 0 {
		return s.CartWait
	}
	return DefaultCartWait
}
