package travelbuddy

import (
	"slices"
	"strings"
)

// categoryPalette holds the stable colors assigned to categories by their
// index in the category set, modulo the palette length.
var categoryPalette = []string{
	"blue", "purple", "rose", "amber",
	"emerald", "cyan", "indigo", "lime", "pink", "orange",
}

// categoryFallbackColor is used for categories no longer in the set (stale
// expense categories keep a visual treatment).
const categoryFallbackColor = "slate"

// CategoryColor returns the color of a category within the ledger's set.
// The assignment is stable: it depends only on the category's index.
func (l *BudgetLedger) CategoryColor(category string) string {
	i := slices.Index(l.categories, category)
	if i < 0 {
		return categoryFallbackColor
	}
	return categoryPalette[i%len(categoryPalette)]
}

// CategoryIcon identifies the pictogram of a category.
type CategoryIcon int

const (
	IconTag CategoryIcon = iota // default
	IconFlight
	IconLodging
	IconTicket
	IconFood
	IconCoffee
	IconShopping
	IconCar
	IconBus
	IconTrain
)

func (i CategoryIcon) String() string {
	switch i {
	case IconFlight:
		return "flight"
	case IconLodging:
		return "lodging"
	case IconTicket:
		return "ticket"
	case IconFood:
		return "food"
	case IconCoffee:
		return "coffee"
	case IconShopping:
		return "shopping"
	case IconCar:
		return "car"
	case IconBus:
		return "bus"
	case IconTrain:
		return "train"
	default:
		return "tag"
	}
}

// iconKeywords is the priority-ordered keyword table: the first row with a
// matching keyword wins.
var iconKeywords = []struct {
	icon     CategoryIcon
	keywords []string
}{
	{IconFlight, []string{"flight", "plane", "air"}},
	{IconLodging, []string{"hotel", "stay", "accommodation"}},
	{IconTicket, []string{"activit", "ticket", "tour"}},
	{IconFood, []string{"food", "eat", "restaur"}},
	{IconCoffee, []string{"coffee", "cafe"}},
	{IconShopping, []string{"shop"}},
	{IconCar, []string{"car", "taxi", "uber"}},
	{IconBus, []string{"bus"}},
	{IconTrain, []string{"train", "rail"}},
}

// IconFor maps any category name to an icon. The mapping is deterministic
// and total: unmatched names get the tag icon.
func IconFor(category string) CategoryIcon {
	c := strings.ToLower(category)
	for _, row := range iconKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(c, kw) {
				return row.icon
			}
		}
	}
	return IconTag
}
