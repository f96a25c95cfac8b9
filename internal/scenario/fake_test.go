package scenario

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fakeItem is a catalog entry on the fake storefront
type fakeItem struct {
	name  string
	price int
}

// fakePage emulates the storefront DOM contract without a browser
type fakePage struct {
	sel       Selectors
	url       string
	redirects map[string]string
	items     []fakeItem
	region    string

	selected int
	small    bool
	cart     []fakeItem
	cartOpen bool

	// knobs for failure cases
	dropAdds      bool
	countOverride string
	listingJoined bool
	cartPriceText string
	queryErr      error

	waits []time.Duration
	gotos []string
}

func newFakePage(items ...fakeItem) *fakePage {
	return &fakePage{
		sel:      DefaultSelectors(),
		items:    items,
		region:   " Москва ",
		selected: -1,
		redirects: map[string]string{
			"https://dodopizza.ru/": "https://dodopizza.ru/",
		},
	}
}

// menu returns n distinct catalog items
func menu(n int) []fakeItem {
	items := make([]fakeItem, n)
	for i := range items {
		items[i] = fakeItem{name: fmt.Sprintf("Пицца %d", i+1), price: 300 + i*10}
	}
	return items
}

func (p *fakePage) Goto(url string) error {
	p.gotos = append(p.gotos, url)
	if target, ok := p.redirects[url]; ok {
		p.url = target
	} else {
		p.url = url
	}
	return nil
}

func (p *fakePage) URL() string { return p.url }

func (p *fakePage) QueryAll(selector string) ([]Element, error) {
	if p.queryErr != nil {
		return nil, p.queryErr
	}
	if selector != p.sel.CatalogItems {
		return nil, fmt.Errorf("unexpected query %q", selector)
	}
	elements := make([]Element, len(p.items))
	for i := range p.items {
		elements[i] = &fakeElement{page: p, index: i}
	}
	return elements, nil
}

func (p *fakePage) Click(selector string) error {
	switch selector {
	case p.sel.SizeSmall:
		if p.selected < 0 {
			return errors.New("size picker is not open")
		}
		p.small = true
	case p.sel.AddToCart:
		if p.selected < 0 || !p.small {
			return errors.New("add button is not visible")
		}
		if !p.dropAdds {
			p.cart = append(p.cart, p.items[p.selected])
		}
		p.selected, p.small = -1, false
	case p.sel.CartButton:
		p.cartOpen = true
	default:
		return fmt.Errorf("no element for %q", selector)
	}
	return nil
}

func (p *fakePage) TextContent(selector string) (string, error) {
	switch selector {
	case p.sel.RegionName:
		return p.region, nil
	case p.sel.AddToCart:
		if p.selected < 0 {
			return "", errors.New("add button is not visible")
		}
		return fmt.Sprintf("Добавить в корзину за %d ₽", p.items[p.selected].price), nil
	case p.sel.CartCount:
		if p.countOverride != "" {
			return p.countOverride, nil
		}
		return strconv.Itoa(len(p.cart)), nil
	case p.sel.CartItemTitle:
		if len(p.cart) == 0 {
			return "", errors.New("timeout waiting for cart item")
		}
		return p.cart[0].name, nil
	case p.sel.CartItemPrice:
		if len(p.cart) == 0 {
			return "", errors.New("timeout waiting for cart item")
		}
		if p.cartPriceText != "" {
			return p.cartPriceText, nil
		}
		return fmt.Sprintf("%d ₽", p.cart[0].price), nil
	}
	return "", fmt.Errorf("no element for %q", selector)
}

func (p *fakePage) TextContents(selector string) ([]string, error) {
	if selector != p.sel.CartItemTitle {
		return nil, fmt.Errorf("no elements for %q", selector)
	}
	names := make([]string, len(p.cart))
	for i, item := range p.cart {
		names[i] = item.name
	}
	if p.listingJoined {
		return []string{strings.Join(names, "\n")}, nil
	}
	return names, nil
}

func (p *fakePage) WaitForText(selector, want string, timeout time.Duration) error {
	p.waits = append(p.waits, timeout)
	got, err := p.TextContent(selector)
	if err != nil {
		return err
	}
	if strings.TrimSpace(got) != want {
		return fmt.Errorf("timeout %v exceeded waiting for %q to be %q", timeout, selector, want)
	}
	return nil
}

// fakeElement is one catalog item handle
type fakeElement struct {
	page  *fakePage
	index int
}

func (e *fakeElement) Click(selector string) error {
	if selector != e.page.sel.SelectButton {
		return fmt.Errorf("no element for %q inside item", selector)
	}
	e.page.selected = e.index
	return nil
}

func (e *fakeElement) TextContent(selector string) (string, error) {
	if selector != e.page.sel.ItemTitle {
		return "", fmt.Errorf("no element for %q inside item", selector)
	}
	return "\n  " + e.page.items[e.index].name + "  ", nil
}

// fakeSession wraps a fakePage and records Close calls
type fakeSession struct {
	page   Page
	closed bool
}

func (s *fakeSession) Page() Page { return s.page }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

// fakeSessions hands out sessions built by newPage
type fakeSessions struct {
	newPage  func() Page
	openErr  error
	sessions []*fakeSession
}

func (f *fakeSessions) NewSession(ctx context.Context) (Session, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	session := &fakeSession{page: f.newPage()}
	f.sessions = append(f.sessions, session)
	return session, nil
}

// panicPage blows up on navigation
type panicPage struct{ Page }

func (panicPage) Goto(string) error { panic("driver crashed") }
