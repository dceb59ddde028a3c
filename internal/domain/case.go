package domain

// Case is a purchasable pool of candidate items.
// Read-only catalog data; Items keeps catalog order, which breaks price ties.
type Case struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Items []Item `json:"items"`
}

// Validate checks the case can be drawn from
func (c Case) Validate() error {
	if len(c.Items) == 0 || c.Price < 0 {
		return ErrInvalidCaseDefinition
	}
	return nil
}
