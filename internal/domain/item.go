package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity represents the ordered value tier of an item.
// mil-spec < restricted < classified < covert; extraordinary sits above
// covert and is only produced by catalog targets and fusion fallbacks.
type Rarity string

const (
	RarityMilSpec       Rarity = "mil-spec"
	RarityRestricted    Rarity = "restricted"
	RarityClassified    Rarity = "classified"
	RarityCovert        Rarity = "covert"
	RarityExtraordinary Rarity = "extraordinary"
)

var rarityRank = map[Rarity]int{
	RarityMilSpec:       1,
	RarityRestricted:    2,
	RarityClassified:    3,
	RarityCovert:        4,
	RarityExtraordinary: 5,
}

// Rank returns the position of the rarity in the tier order, 0 if unknown
func (r Rarity) Rank() int {
	return rarityRank[r]
}

// Valid reports whether r is a known rarity
func (r Rarity) Valid() bool {
	_, ok := rarityRank[r]
	return ok
}

// Less reports whether r is a lower tier than other
func (r Rarity) Less(other Rarity) bool {
	return r.Rank() < other.Rank()
}

// DisplayName returns the title-cased label, e.g. "Mil-Spec"
func (r Rarity) DisplayName() string {
	// Casers are stateful and must not be shared between goroutines
	return cases.Title(language.English).String(string(r))
}

// Item is an immutable catalog value record.
// Price and Rarity drive every probability computation and must round-trip exactly.
type Item struct {
	ID     string `json:"id" db:"item_id"`
	Name   string `json:"name" db:"name"`
	Price  int64  `json:"price" db:"price"`
	Rarity Rarity `json:"rarity" db:"rarity"`
	Wear   string `json:"wear,omitempty" db:"wear"`
}

// OwnedItem is an item instance held by exactly one account.
// Two instances of the same catalog item are distinct by InstanceID.
type OwnedItem struct {
	InstanceID uuid.UUID  `json:"instance_id" db:"instance_id"`
	AccountID  string     `json:"account_id" db:"account_id"`
	Item       Item       `json:"item"`
	Source     ItemSource `json:"source" db:"source"`
	AcquiredAt time.Time  `json:"acquired_at" db:"acquired_at"`
}

// ItemSource records which operation minted an owned item
type ItemSource string

const (
	SourceCase     ItemSource = "case"
	SourceUpgrade  ItemSource = "upgrade"
	SourceContract ItemSource = "contract"
)

// ContractOutcome is a candidate result of a contract fusion
type ContractOutcome struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Wear   string `json:"wear,omitempty"`
}

// Prices returns the prices of the given items in order
func Prices(items []Item) []int64 {
	prices := make([]int64, len(items))
	for i, item := range items {
		prices[i] = item.Price
	}
	return prices
}

// ItemsOf strips ownership from a slice of owned items
func ItemsOf(owned []OwnedItem) []Item {
	items := make([]Item, len(owned))
	for i, o := range owned {
		items[i] = o.Item
	}
	return items
}
