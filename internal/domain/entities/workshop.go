package entities

import "time"

const DefaultCurrency = "INR"

// Workshop is the tenancy root. Each owner has at most one.
type Workshop struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone"`
	GSTNumber string    `json:"gst_number,omitempty"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// CurrencyOrDefault returns the display currency used on documents and
// audit descriptions.
func (w Workshop) CurrencyOrDefault() string {
	if w.Currency == "" {
		return DefaultCurrency
	}
	return w.Currency
}
