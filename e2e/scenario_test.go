package e2e

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/storecheck/storecheck/internal/scenario"
	"go.uber.org/zap"
)

// TestCatalogCount tests the pizza section on the fixture storefront
// Feature: Catalog
//
//	As a shopper
//	I want to see the whole pizza menu for my region
//	So that I can pick a pizza
func TestCatalogCount(t *testing.T) {
	// Scenario: Count pizzas
	//   Given I am on the storefront
	//   Then I should see 34 pizzas
	//   And I should see the region "Москва"
	serverReachable(t)
	suite := newSuite(t)
	page := openPage(t)

	if err := suite.CatalogCount(context.Background(), page); err != nil {
		t.Fatalf("Catalog check failed: %v", err)
	}
}

// TestCatalogCount_WrongRegion tests that a region mismatch is reported with both values
// Feature: Catalog
//
//	Scenario: Region differs from the expectation
//	  Given I expect the region "Казань"
//	  When I open the storefront root
//	  Then the check fails naming "Казань" and "Москва"
func TestCatalogCount_WrongRegion(t *testing.T) {
	suite := newSuite(t)
	suite.Expect.RegionName = "Казань"
	page := openPage(t)

	err := suite.CatalogCount(context.Background(), page)

	var assertion *scenario.AssertionError
	if !errors.As(err, &assertion) {
		t.Fatalf("Expected an assertion error, got %v", err)
	}
	if assertion.Expected != "Казань" || assertion.Actual != "Москва" {
		t.Errorf("Expected Казань vs Москва, got %v vs %v", assertion.Expected, assertion.Actual)
	}
}

// TestAddToCart tests adding one random pizza
// Feature: Cart
//
//	Scenario: Add a pizza to the cart
//	  Given I am on the storefront
//	  When I add a random small pizza to the cart
//	  Then the cart shows its name and price
//	  And the cart counter reads "1"
func TestAddToCart(t *testing.T) {
	suite := newSuite(t)
	page := openPage(t)

	if err := suite.AddToCart(context.Background(), page); err != nil {
		t.Fatalf("Add to cart failed: %v", err)
	}

	// And the drawer lists exactly that pizza
	titles, err := page.TextContents(".cart-item__title")
	if err != nil {
		t.Fatalf("Failed to read cart listing: %v", err)
	}
	if len(titles) != 1 {
		t.Errorf("Expected 1 cart entry, got %d", len(titles))
	}
}

// TestAddMultipleToCart tests adding five random pizzas
// Feature: Cart
//
//	Scenario: Add several pizzas
//	  Given I am on the Moscow storefront
//	  When I add five random small pizzas
//	  And I open the cart
//	  Then the cart counter reads "5"
//	  And the cart lists five pizzas
func TestAddMultipleToCart(t *testing.T) {
	suite := newSuite(t)
	page := openPage(t)

	if err := suite.AddMultipleToCart(context.Background(), page); err != nil {
		t.Fatalf("Add multiple to cart failed: %v", err)
	}
}

// TestCartIsolation tests that sessions never share a cart
// Feature: Cart
//
//	Scenario: Fresh session starts empty
//	  Given another session added a pizza
//	  When I open the storefront in a new session
//	  Then my cart counter reads "0"
func TestCartIsolation(t *testing.T) {
	suite := newSuite(t)
	if err := suite.AddToCart(context.Background(), openPage(t)); err != nil {
		t.Fatalf("Add to cart failed: %v", err)
	}

	page := openPage(t)
	if err := page.Goto(baseURL + "/"); err != nil {
		t.Fatalf("Failed to navigate: %v", err)
	}
	count, err := page.TextContent(".cart-button__count")
	if err != nil {
		t.Fatalf("Failed to read cart count: %v", err)
	}
	if strings.TrimSpace(count) != "0" {
		t.Errorf("Expected an empty cart, got count '%s'", count)
	}
}

// TestEmptySelector tests that an absent selector yields no elements
// Feature: Queries
//
//	Scenario: Query a selector that is not on the page
//	  Given I am on the storefront
//	  When I query ".sushi-item"
//	  Then I get no elements and no error
func TestEmptySelector(t *testing.T) {
	launcher.SetDefaultTimeout(500 * time.Millisecond)
	defer launcher.SetDefaultTimeout(0)

	page := openPage(t)
	if err := page.Goto(baseURL + "/"); err != nil {
		t.Fatalf("Failed to navigate: %v", err)
	}

	elements, err := page.QueryAll(".sushi-item")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(elements) != 0 {
		t.Errorf("Expected no elements, got %d", len(elements))
	}
}

// TestRunner tests the full run against the fixture storefront
// Feature: Runner
//
//	Scenario: Run every scenario
//	  Given the fixture storefront
//	  When I run all scenarios
//	  Then every scenario passes in its own session
func TestRunner(t *testing.T) {
	runner, err := scenario.NewRunner(launcher, fixtureSettings(),
		scenario.WithExpectations(fixtureExpectations()),
		scenario.WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	results, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for _, result := range results {
		if !result.Passed() {
			t.Errorf("Scenario %s failed: %v", result.Scenario, result.Err)
		}
	}
}
