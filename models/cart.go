package models

// CartItem is a snapshot of a MenuItem plus the per-line cart fields. Two
// additions of the same menu item produce two separate lines; lines are never
// merged.
type CartItem struct {
	MenuItem
	CartID   string `json:"cartId"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Subtotal -> price x quantity for this line.
func (ci CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// CartTotal sums the subtotals of all lines.
func CartTotal(cart []CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.Subtotal()
	}
	return total
}
