package model

import "time"

// RentalItem is a single piece of equipment offered for rent. Price and
// deposit are display text, never parsed as numbers.
type RentalItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ImagePath    string    `json:"image_path"`
	Price        string    `json:"price"`
	Deposit      string    `json:"deposit,omitempty"`
	PriceText    string    `json:"price_text"`
	DepositText  string    `json:"deposit_text"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Rental defaults.
const (
	DefaultRentalPriceText = "Price"
	DefaultDepositText     = "Required Deposit (Refundable)"
	DefaultCategory        = "general"
)

// RentalInput holds the fields for a new rental item. Empty optional fields
// are filled by WithDefaults.
type RentalInput struct {
	Name         string
	ImagePath    string
	Price        string
	Deposit      string
	PriceText    string
	DepositText  string
	Category     string
	Description  string
	IsActive     *bool
	DisplayOrder int
}

// Validate checks the required fields.
func (in RentalInput) Validate() error {
	return requireText("name", in.Name, "image_path", in.ImagePath, "price", in.Price)
}

// WithDefaults returns a copy with unset optional fields filled in.
func (in RentalInput) WithDefaults() RentalInput {
	if in.PriceText == "" {
		in.PriceText = DefaultRentalPriceText
	}
	if in.DepositText == "" {
		in.DepositText = DefaultDepositText
	}
	if in.Category == "" {
		in.Category = DefaultCategory
	}
	if in.IsActive == nil {
		in.IsActive = Ptr(true)
	}
	return in
}

// RentalPatch lists the mutable rental columns. Nil fields are left unchanged.
type RentalPatch struct {
	Name         *string
	ImagePath    *string
	Price        *string
	Deposit      *string
	PriceText    *string
	DepositText  *string
	Category     *string
	Description  *string
	IsActive     *bool
	DisplayOrder *int
}

// Validate rejects blanking a required field.
func (p RentalPatch) Validate() error {
	return firstError(
		requireIfSet("name", p.Name),
		requireIfSet("image_path", p.ImagePath),
		requireIfSet("price", p.Price),
	)
}
