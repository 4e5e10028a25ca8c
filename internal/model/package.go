package model

import "time"

// PackageItem is a bundled party package.
type PackageItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ImagePath    string    `json:"image_path"`
	Price        string    `json:"price"`
	PriceText    string    `json:"price_text"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultPackagePriceText is used when a package is added without a price label.
const DefaultPackagePriceText = "Contact For Details"

// PackageInput holds the fields for a new package.
type PackageInput struct {
	Name         string
	ImagePath    string
	Price        string
	PriceText    string
	Description  string
	IsActive     *bool
	DisplayOrder int
}

// Validate checks the required fields.
func (in PackageInput) Validate() error {
	return requireText("name", in.Name, "image_path", in.ImagePath, "price", in.Price)
}

// WithDefaults returns a copy with unset optional fields filled in.
func (in PackageInput) WithDefaults() PackageInput {
	if in.PriceText == "" {
		in.PriceText = DefaultPackagePriceText
	}
	if in.IsActive == nil {
		in.IsActive = Ptr(true)
	}
	return in
}

// PackagePatch lists the mutable package columns.
type PackagePatch struct {
	Name         *string
	ImagePath    *string
	Price        *string
	PriceText    *string
	Description  *string
	IsActive     *bool
	DisplayOrder *int
}

// Validate rejects blanking a required field.
func (p PackagePatch) Validate() error {
	return firstError(
		requireIfSet("name", p.Name),
		requireIfSet("image_path", p.ImagePath),
		requireIfSet("price", p.Price),
	)
}
