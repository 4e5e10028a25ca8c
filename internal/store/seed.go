package store

import (
	"context"
	"fmt"

	"github.com/erazemk/glitzme/internal/model"
)

var seedRentals = []model.RentalInput{
	{
		Name:      "Tables & Chairs",
		ImagePath: "Images/SingularRentals/GMR (Tables & Chairs)(1).webp",
		Price:     "Tables $5-$14 per (Depends On Table Type), Chairs $1-$6 per (Depends On Chair Type), Ask for Details",
		Deposit:   "$25.00 - $150.00 Required Deposit",
		PriceText: "Prices",
		Category:  "furniture",
	},
	{
		Name:      "Arcade Games",
		ImagePath: "Images/SingularRentals/GMR (Arcade Games)(1).webp",
		Price:     "$200.00/Day Rental",
		Deposit:   "$100.00 Required Deposit",
		PriceText: "Price",
		Category:  "entertainment",
	},
	{
		Name:      "Canopy Tents",
		ImagePath: "Images/SingularRentals/GMR (Canopy Tent)(1).webp",
		Price:     "Starting at $70",
		Deposit:   "$100.00 Required Refundable Deposit",
		PriceText: "Prices Vary",
		Category:  "shelter",
	},
	{
		Name:      "Red Carpet",
		ImagePath: "Images/SingularRentals/GMR (Red Carpet)(1).webp",
		Price:     "$80.00/Day Rental",
		Deposit:   "$50.00 Required Deposit",
		PriceText: "Price",
		Category:  "decor",
	},
	{
		Name:      "Black Carpet",
		ImagePath: "Images/SingularRentals/GMR (Black Carpet)(1).webp",
		Price:     "$80/Day Rental",
		Deposit:   "$50 Required Deposit",
		PriceText: "Price",
		Category:  "decor",
	},
	{
		Name:      "Nacho Machine",
		ImagePath: "Images/SingularRentals/GMR (Nacho Machine)(1).webp",
		Price:     "$60/Day Rental",
		Deposit:   "$50 Required Deposit",
		PriceText: "Price",
		Category:  "food_beverage",
	},
	{
		Name:      "Mobile Bars",
		ImagePath: "Images/SingularRentals/GMR (Mobile Bars)(1).webp",
		Price:     "Starting at $30",
		Deposit:   "$100 Required Deposit",
		PriceText: "Prices Vary",
		Category:  "food_beverage",
	},
	{
		Name:      "Queens/Throne Chair",
		ImagePath: "Images/SingularRentals/GMR (Kids Throne Chair)(1).webp",
		Price:     "$44/Day Rental",
		Deposit:   "$50 Required Deposit",
		PriceText: "Price",
		Category:  "furniture",
	},
	{
		Name:      "Snow Machine",
		ImagePath: "Images/SingularRentals/GMR (Snow Machine)(1).webp",
		Price:     "$45/Day Rental",
		Deposit:   "$25 Required Deposit",
		PriceText: "Price",
		Category:  "effects",
	},
}

var seedPackages = []model.PackageInput{
	{Name: "Movie Theater Experience", ImagePath: "Images/Packages/GMR (Movie Theater Experience)(1).webp"},
	{Name: "Boy Soft Play Extreme", ImagePath: "Images/Packages/GMR (Boy Soft Play Extreme)(1).webp"},
	{Name: "Girl Soft Play Extreme", ImagePath: "Images/Packages/GMR (Girl Soft Play Extreme)(1).webp"},
	{Name: "Super Simple Soft Play", ImagePath: "Images/Packages/GMR (Super Simple Soft Play)(1).webp"},
	{Name: "Extreme Party Bundle", ImagePath: "Images/Packages/ExtremePartyBundle.webp"},
	{Name: "Extreme Party Bundle (Game Package)", ImagePath: "Images/Packages/ExtremePartyBundle(Game Package).webp"},
	{Name: "Extreme Party Bundle (Waterslide)", ImagePath: "Images/Packages/ExtremePartyBundle(Waterslide).webp"},
	{Name: "Game Room Extreme", ImagePath: "Images/Packages/GMR (Game Room Extreme)(1).webp"},
	{Name: "Game Package", ImagePath: "Images/Packages/GMR (Game Package)(1).webp"},
	{Name: "Spooky Walkway", ImagePath: "Images/Packages/GMR (Spooky Walkway)(1).webp"},
	{Name: "Winter Wonderland", ImagePath: "Images/Packages/GMR (Winter Wonderland)(1).webp"},
	{Name: "Mobile Bar Experience", ImagePath: "Images/Packages/GMR (Mobile Bar Experience)(1).webp"},
}

var seedTeam = []model.TeamMemberInput{
	{
		Name:            "Ravin Herring",
		Role:            "Founder & Creative Director",
		ImagePath:       "Images/Team/RavinGMR.webp",
		MobileImagePath: "Images/Team/RavinGMR-mobile.webp",
		DisplayOrder:    0,
	},
	{
		Name:            "Deshawn Proby",
		Role:            "Co-Founder & Photographer",
		ImagePath:       "Images/Team/DeshawnGMR.webp",
		MobileImagePath: "Images/Team/DeshawnGMR-mobile.webp",
		DisplayOrder:    1,
	},
	{
		Name:            "Marvin Herring",
		Role:            "Co-Founder & Business Development",
		ImagePath:       "Images/Team/MarvinGMR.webp",
		MobileImagePath: "Images/Team/MarvinGMR-mobile.webp",
		DisplayOrder:    2,
	},
}

var seedSettings = []model.SiteSetting{
	{Key: "business_name", Value: "GlitzME Rentals", Type: model.SettingTypeText, Description: "Business name"},
	{
		Key:         "business_description",
		Value:       "Local Family Owned party rental business serving the Las Vegas Valley. Creating memorable experiences with exceptional customer service - there's no other way but the GlitzME WAY!",
		Type:        model.SettingTypeTextarea,
		Description: "Main business description",
	},
	{Key: "phone_primary", Value: "(702) 344-4717", Type: model.SettingTypeText, Description: "Primary phone number"},
	{Key: "phone_secondary", Value: "(702) 622-0425", Type: model.SettingTypeText, Description: "Secondary phone number"},
	{Key: "email", Value: "Glitzme.rentals21@gmail.com", Type: model.SettingTypeEmail, Description: "Business email"},
	{Key: "address", Value: "Las Vegas, NV", Type: model.SettingTypeText, Description: "Business address"},
	{Key: "tagline", Value: "Family Owned & Operated", Type: model.SettingTypeText, Description: "Business tagline"},
	{Key: "instagram_url", Value: "https://www.instagram.com/glitzme_rentals/", Type: model.SettingTypeURL, Description: "Instagram URL"},
	{
		Key:         "meta_description",
		Value:       "Las Vegas premier party rental company. Family-owned business offering bounce houses, waterslides, tables, chairs, arcade games & complete party packages. Professional service, competitive prices.",
		Type:        model.SettingTypeTextarea,
		Description: "Site meta description",
	},
	{
		Key:         "meta_keywords",
		Value:       "Las Vegas party rentals, bounce house rental, waterslide rental, table chair rental, party equipment, arcade games, Las Vegas events, family business",
		Type:        model.SettingTypeTextarea,
		Description: "Site meta keywords",
	},
	{Key: "team_section_quote", Value: `"None of us is as smart as all of us." - Ken Blanchard`, Type: model.SettingTypeText, Description: "Team section quote"},
}

var seedCarousel = []model.CarouselInput{
	{
		Title:           "GlitzME Rentals Main Logo",
		ImagePath:       "Images/Logos/glitzme-hero-main.webp",
		MobileImagePath: "Images/Logos/glitzme-hero-mobile.webp",
		AltText:         "GlitzME Rentals - Offering Tables, Chairs, and more fun items for your events!",
		DisplayOrder:    0,
	},
	{
		Title:           "Summer Sale",
		ImagePath:       "Images/HomePageAdverts/SumemrSaleGM.webp",
		MobileImagePath: "Images/HomePageAdverts/SumemrSaleGM.webp",
		AltText:         "Summer Sale at GlitzME Rentals",
		LinkURL:         "/contact",
		LinkText:        "View Summer Sale - Contact us for details",
		DisplayOrder:    1,
	},
}

// Seed fills an empty catalog with the default dataset. The catalog counts as
// empty when rental_items has no rows at all. It reports whether anything was
// written; all rows go in one transaction.
func (s *Store) Seed(ctx context.Context) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	var populated bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM rental_items)`).Scan(&populated); err != nil {
		return false, fmt.Errorf("checking for rental items: %w", err)
	}
	if populated {
		return false, nil
	}

	for i, in := range seedRentals {
		in.DisplayOrder = i
		if _, err := addRental(ctx, tx, in); err != nil {
			return false, err
		}
	}
	for i, in := range seedPackages {
		in.Price = model.DefaultPackagePriceText
		in.DisplayOrder = i
		if _, err := addPackage(ctx, tx, in); err != nil {
			return false, err
		}
	}
	for _, in := range seedTeam {
		if _, err := addTeamMember(ctx, tx, in); err != nil {
			return false, err
		}
	}
	for _, st := range seedSettings {
		if err := setSetting(ctx, tx, st); err != nil {
			return false, err
		}
	}
	for _, in := range seedCarousel {
		if _, err := addCarouselItem(ctx, tx, in); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed: %w", err)
	}
	return true, nil
}
