package model

import "time"

// CarouselItem is a slide in the homepage carousel.
type CarouselItem struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	ImagePath       string    `json:"image_path"`
	MobileImagePath string    `json:"mobile_image_path,omitempty"`
	AltText         string    `json:"alt_text"`
	LinkURL         string    `json:"link_url,omitempty"`
	LinkText        string    `json:"link_text,omitempty"`
	DisplayOrder    int       `json:"display_order"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CarouselInput holds the fields for a new carousel slide.
type CarouselInput struct {
	Title           string
	ImagePath       string
	MobileImagePath string
	AltText         string
	LinkURL         string
	LinkText        string
	IsActive        *bool
	DisplayOrder    int
}

// Validate checks the required fields.
func (in CarouselInput) Validate() error {
	return requireText("title", in.Title, "image_path", in.ImagePath, "alt_text", in.AltText)
}

// WithDefaults returns a copy with unset optional fields filled in.
func (in CarouselInput) WithDefaults() CarouselInput {
	if in.IsActive == nil {
		in.IsActive = Ptr(true)
	}
	return in
}

// CarouselPatch lists the mutable carousel columns.
type CarouselPatch struct {
	Title           *string
	ImagePath       *string
	MobileImagePath *string
	AltText         *string
	LinkURL         *string
	LinkText        *string
	IsActive        *bool
	DisplayOrder    *int
}

// Validate rejects blanking a required field.
func (p CarouselPatch) Validate() error {
	return firstError(
		requireIfSet("title", p.Title),
		requireIfSet("image_path", p.ImagePath),
		requireIfSet("alt_text", p.AltText),
	)
}
