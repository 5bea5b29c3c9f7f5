package domain

import "strings"

// MenuItem is one catalog entry. Prices are whole rupees per unit.
type MenuItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Unit  string `json:"unit"`
	Emoji string `json:"emoji,omitempty"`
}

// The kitchen's standing menu. Orders referencing these items get their
// price and unit from here, never from the client.
var menuItems = []MenuItem{
	{ID: 1, Name: "Wheat Chapati", Price: 15, Unit: "pc", Emoji: "🫓"},
	{ID: 2, Name: "Puran Poli", Price: 25, Unit: "pc", Emoji: "🥞"},
	{ID: 3, Name: "Jawar Bhakari", Price: 20, Unit: "pc", Emoji: "🫓"},
	{ID: 4, Name: "Bajara Bhakari", Price: 20, Unit: "pc", Emoji: "🫓"},
	{ID: 5, Name: "Kalnyachi Bhakari", Price: 25, Unit: "pc", Emoji: "🫓"},
	{ID: 6, Name: "Methi Paratha", Price: 25, Unit: "pc", Emoji: "🥙"},
	{ID: 7, Name: "Kothimbir Vadi", Price: 100, Unit: "12pc", Emoji: "🌿"},
	{ID: 8, Name: "Idli Chutney", Price: 60, Unit: "4pc", Emoji: "⚪"},
	{ID: 9, Name: "Medu Vada Chutney", Price: 60, Unit: "4pc", Emoji: "🍩"},
	{ID: 10, Name: "Pohe", Price: 30, Unit: "Plate", Emoji: "🍚"},
	{ID: 11, Name: "Upma", Price: 30, Unit: "Plate", Emoji: "🍲"},
	{ID: 12, Name: "Sabudana Khichadi", Price: 50, Unit: "Plate", Emoji: "🥣"},
	{ID: 13, Name: "Appe Chutney", Price: 60, Unit: "5pc", Emoji: "🔵"},
	{ID: 14, Name: "Til Poli", Price: 30, Unit: "pc", Emoji: "🥮"},
	{ID: 15, Name: "Sabudana Vada", Price: 60, Unit: "4pc", Emoji: "🥔"},
	{ID: 16, Name: "Vermicelli Kheer", Price: 50, Unit: "Bowl", Emoji: "🍮"},
	{ID: 17, Name: "Onion Pakoda (Kanda Bhaje)", Price: 60, Unit: "Plate", Emoji: "🧅"},
}

// Menu returns a copy of the catalog.
func Menu() []MenuItem {
	items := make([]MenuItem, len(menuItems))
	copy(items, menuItems)
	return items
}

// FindMenuItem looks a catalog entry up by id, or by name when the id is
// zero. Name matching is case-insensitive.
func FindMenuItem(id int64, name string) (MenuItem, bool) {
	for _, item := range menuItems {
		if id != 0 && item.ID == id {
			return item, true
		}
		if id == 0 && strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return MenuItem{}, false
}
