package handlers

import "github.com/storecheck/storecheck/internal/models"

// MenuItem is a pizza on the fixture storefront with a price per size in rubles
type MenuItem struct {
	Name        string
	Description string
	Small       int64
	Medium      int64
	Large       int64
}

// Price returns the price for size, or 0 for an unknown size
func (m MenuItem) Price(size string) int64 {
	switch size {
	case models.SizeSmall:
		return m.Small
	case models.SizeMedium:
		return m.Medium
	case models.SizeLarge:
		return m.Large
	}
	return 0
}

// DefaultRegion is shown on the storefront root
const DefaultRegion = "moscow"

// DefaultRegions maps URL slugs to the region names shown in the header
var DefaultRegions = map[string]string{
	"moscow":           "Москва",
	"saint-petersburg": "Санкт-Петербург",
	"kazan":            "Казань",
}

// DefaultMenu is the 34-item pizza section served by the fixture storefront
var DefaultMenu = []MenuItem{
	{Name: "Пепперони фреш", Description: "Пикантная пепперони, моцарелла, томаты", Small: 299, Medium: 539, Large: 689},
	{Name: "Сырная", Description: "Моцарелла, сыры чеддер и пармезан", Small: 299, Medium: 539, Large: 689},
	{Name: "Двойной цыпленок", Description: "Цыпленок, моцарелла, соус альфредо", Small: 399, Medium: 639, Large: 799},
	{Name: "Ветчина и сыр", Description: "Ветчина, моцарелла, соус альфредо", Small: 349, Medium: 589, Large: 739},
	{Name: "Чоризо фреш", Description: "Острая чоризо, сладкий перец, моцарелла", Small: 299, Medium: 539, Large: 689},
	{Name: "Маргарита", Description: "Моцарелла, томаты, итальянские травы", Small: 399, Medium: 639, Large: 799},
	{Name: "Пепперони", Description: "Пикантная пепперони, увеличенная порция моцареллы", Small: 449, Medium: 739, Large: 889},
	{Name: "Четыре сыра", Description: "Сыр блю чиз, чеддер, пармезан, моцарелла", Small: 499, Medium: 789, Large: 939},
	{Name: "Ветчина и грибы", Description: "Ветчина, шампиньоны, моцарелла", Small: 399, Medium: 639, Large: 799},
	{Name: "Гавайская", Description: "Цыпленок, ананасы, моцарелла", Small: 449, Medium: 739, Large: 889},
	{Name: "Мясная", Description: "Цыпленок, ветчина, пепперони, чоризо", Small: 549, Medium: 839, Large: 989},
	{Name: "Диабло", Description: "Острая чоризо, перец халапеньо, соус барбекю", Small: 549, Medium: 839, Large: 989},
	{Name: "Карбонара", Description: "Бекон, сыры чеддер и пармезан, моцарелла", Small: 549, Medium: 839, Large: 989},
	{Name: "Четыре сезона", Description: "Ветчина, пепперони, томаты, шампиньоны", Small: 499, Medium: 789, Large: 939},
	{Name: "Овощи и грибы", Description: "Шампиньоны, томаты, сладкий перец, маслины", Small: 449, Medium: 739, Large: 889},
	{Name: "Жюльен", Description: "Цыпленок, шампиньоны, сливочный соус", Small: 549, Medium: 839, Large: 989},
	{Name: "Песто", Description: "Цыпленок, соус песто, кубики брынзы", Small: 549, Medium: 839, Large: 989},
	{Name: "Баварская", Description: "Баварские колбаски, маринованные огурчики", Small: 549, Medium: 839, Large: 989},
	{Name: "Цыпленок барбекю", Description: "Цыпленок, бекон, соус барбекю", Small: 549, Medium: 839, Large: 989},
	{Name: "Цыпленок ранч", Description: "Цыпленок, ветчина, соус ранч", Small: 549, Medium: 839, Large: 989},
	{Name: "Сырный цыпленок", Description: "Цыпленок, сырный соус, моцарелла", Small: 549, Medium: 839, Large: 989},
	{Name: "Деревенская", Description: "Картофель из печи, маринованные огурчики", Small: 449, Medium: 739, Large: 889},
	{Name: "Мексиканская", Description: "Цыпленок, халапеньо, соус сальса", Small: 549, Medium: 839, Large: 989},
	{Name: "Бургер-пицца", Description: "Ветчина, маринованные огурчики, соус бургер", Small: 549, Medium: 839, Large: 989},
	{Name: "Аррива!", Description: "Цыпленок, острая чоризо, соус бургер", Small: 549, Medium: 839, Large: 989},
	{Name: "Домашняя", Description: "Пепперони, ветчина, маринованные огурчики", Small: 499, Medium: 789, Large: 939},
	{Name: "Креветки со сладким чили", Description: "Креветки, ананасы, соус сладкий чили", Small: 649, Medium: 939, Large: 1089},
	{Name: "Креветки блю чиз", Description: "Креветки, сыр блю чиз, моцарелла", Small: 649, Medium: 939, Large: 1089},
	{Name: "Ветчина и огурчики", Description: "Ветчина, маринованные огурчики, соус ранч", Small: 449, Medium: 739, Large: 889},
	{Name: "Грибной жюльен", Description: "Шампиньоны, сливочный соус, чеснок", Small: 449, Medium: 739, Large: 889},
	{Name: "Колбаски барбекю", Description: "Острые колбаски чоризо, соус барбекю", Small: 499, Medium: 789, Large: 939},
	{Name: "Кисло-сладкий цыпленок", Description: "Цыпленок, соус кисло-сладкий, моцарелла", Small: 499, Medium: 789, Large: 939},
	{Name: "Итальянская", Description: "Пепперони, маслины, шампиньоны, томаты", Small: 499, Medium: 789, Large: 939},
	{Name: "Пицца из половинок", Description: "Соберите свою пиццу из двух половинок", Small: 599, Medium: 889, Large: 1039},
}

// findMenuItem returns the item named name
func findMenuItem(menu []MenuItem, name string) (MenuItem, bool) {
	for _, item := range menu {
		if item.Name == name {
			return item, true
		}
	}
	return MenuItem{}, false
}
