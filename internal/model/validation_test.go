package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name  string
		input interface{ Validate() error }
		field string
	}{
		{"rental ok", RentalInput{Name: "Arcade", ImagePath: "a.webp", Price: "$200"}, ""},
		{"rental blank name", RentalInput{Name: "  ", ImagePath: "a.webp", Price: "$200"}, "name"},
		{"rental missing price", RentalInput{Name: "Arcade", ImagePath: "a.webp"}, "price"},
		{"package missing image", PackageInput{Name: "Bundle", Price: "Ask"}, "image_path"},
		{"team missing role", TeamMemberInput{Name: "Ravin", ImagePath: "r.webp"}, "role"},
		{"team ok", TeamMemberInput{Name: "Ravin", Role: "Founder", ImagePath: "r.webp"}, ""},
		{"carousel missing alt", CarouselInput{Title: "Logo", ImagePath: "l.webp"}, "alt_text"},
		{"setting missing key", SiteSetting{Value: "x"}, "setting_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestPatchValidateOnlyChecksSetFields(t *testing.T) {
	assert.NoError(t, RentalPatch{}.Validate())
	assert.NoError(t, RentalPatch{Deposit: Ptr("")}.Validate())
	assert.Error(t, RentalPatch{Price: Ptr(" ")}.Validate())
	assert.Error(t, PackagePatch{Name: Ptr("")}.Validate())
	assert.Error(t, TeamMemberPatch{Role: Ptr("")}.Validate())
	assert.NoError(t, TeamMemberPatch{MobileImagePath: Ptr("")}.Validate())
	assert.Error(t, CarouselPatch{Title: Ptr("")}.Validate())
}

func TestRentalInputDefaults(t *testing.T) {
	in := RentalInput{Name: "Snow Machine", ImagePath: "s.webp", Price: "$45"}.WithDefaults()

	assert.Equal(t, DefaultRentalPriceText, in.PriceText)
	assert.Equal(t, DefaultDepositText, in.DepositText)
	assert.Equal(t, DefaultCategory, in.Category)
	require.NotNil(t, in.IsActive)
	assert.True(t, *in.IsActive)

	kept := RentalInput{PriceText: "Prices Vary", Category: "effects", IsActive: Ptr(false)}.WithDefaults()
	assert.Equal(t, "Prices Vary", kept.PriceText)
	assert.Equal(t, "effects", kept.Category)
	assert.False(t, *kept.IsActive)
}

func TestPackageInputDefaults(t *testing.T) {
	in := PackageInput{Name: "Game Package", ImagePath: "g.webp", Price: "Contact For Details"}.WithDefaults()
	assert.Equal(t, DefaultPackagePriceText, in.PriceText)
	assert.True(t, *in.IsActive)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "name"}
	assert.Equal(t, "name is required", err.Error())
}
