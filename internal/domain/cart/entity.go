// internal/domain/cart/entity.go
package cart

// LineView represents one line of the cart as shown to the storefront
type LineView struct {
	LineID        string `json:"line_id"`
	MerchandiseID string `json:"merchandise_id"`
	ProductTitle  string `json:"product_title"`
	VariantTitle  string `json:"variant_title"`
	Quantity      int    `json:"quantity"`
	UnitCost      string `json:"unit_cost"`
	CurrencyCode  string `json:"currency_code"`
}

// View represents a cart snapshot for the storefront. It mirrors the remote
// cart; the gateway copy stays authoritative.
type View struct {
	CartID        string     `json:"cart_id"`
	CheckoutURL   string     `json:"checkout_url"`
	TotalQuantity int        `json:"total_quantity"`
	SubTotal      string     `json:"sub_total"`
	TotalAmount   string     `json:"total_amount"`
	CurrencyCode  string     `json:"currency_code"`
	Lines         []LineView `json:"lines"`
}

// LineForMerchandise returns the line for a merchandise id, or nil.
// The cart holds at most one line per merchandise id.
func (v *View) LineForMerchandise(merchandiseID string) *LineView {
	for i := range v.Lines {
		if v.Lines[i].MerchandiseID == merchandiseID {
			return &v.Lines[i]
		}
	}
	return nil
}

// Optimistic mutations applied to a local snapshot while the gateway call is
// in flight. They are pure: the receiver is never modified, and the server's
// authoritative response replaces the snapshot on completion.

// ApplyAdd returns a copy of the view with quantity added for the
// merchandise id, inserting a new line when none exists
func (v View) ApplyAdd(merchandiseID string, quantity int) View {
	out := v.clone()
	for i := range out.Lines {
		if out.Lines[i].MerchandiseID == merchandiseID {
			out.Lines[i].Quantity += quantity
			out.TotalQuantity += quantity
			return out
		}
	}
	out.Lines = append(out.Lines, LineView{
		MerchandiseID: merchandiseID,
		Quantity:      quantity,
	})
	out.TotalQuantity += quantity
	return out
}

// ApplyUpdate returns a copy of the view with the line's quantity replaced.
// Quantity zero drops the line.
func (v View) ApplyUpdate(merchandiseID string, quantity int) View {
	out := v.clone()
	for i := range out.Lines {
		if out.Lines[i].MerchandiseID != merchandiseID {
			continue
		}
		out.TotalQuantity += quantity - out.Lines[i].Quantity
		if quantity == 0 {
			out.Lines = append(out.Lines[:i], out.Lines[i+1:]...)
		} else {
			out.Lines[i].Quantity = quantity
		}
		return out
	}
	if quantity > 0 {
		return out.ApplyAdd(merchandiseID, quantity)
	}
	return out
}

// ApplyRemove returns a copy of the view without the line for the
// merchandise id
func (v View) ApplyRemove(merchandiseID string) View {
	return v.ApplyUpdate(merchandiseID, 0)
}

func (v View) clone() View {
	out := v
	out.Lines = make([]LineView, len(v.Lines))
	copy(out.Lines, v.Lines)
	return out
}
