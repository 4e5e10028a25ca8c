package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/glitzme/internal/model"
)

func TestCarouselLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddCarouselItem(ctx, model.CarouselInput{
		Title:     "Summer Sale",
		ImagePath: "Images/HomePageAdverts/SumemrSaleGM.webp",
		AltText:   "Summer Sale at GlitzME Rentals",
		LinkURL:   "/contact",
		LinkText:  "Contact us for details",
	})
	require.NoError(t, err)

	got, err := s.GetCarouselItem(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "/contact", got.LinkURL)
	assert.Empty(t, got.MobileImagePath)
	assert.True(t, got.IsActive)

	ok, err := s.UpdateCarouselItem(ctx, id, model.CarouselPatch{LinkURL: model.Ptr(""), LinkText: model.Ptr("")})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = s.GetCarouselItem(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.LinkURL)
	assert.Empty(t, got.LinkText)
	assert.Equal(t, "Summer Sale", got.Title)

	ok, err = s.DeleteCarouselItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = s.GetCarouselItem(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListCarouselItems(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCarouselItem(ctx, model.CarouselInput{Title: "Logo", ImagePath: "l.webp", AltText: "Logo", DisplayOrder: 1})
	require.NoError(t, err)
	_, err = s.AddCarouselItem(ctx, model.CarouselInput{Title: "Advert", ImagePath: "a.webp", AltText: "Ad", DisplayOrder: 1})
	require.NoError(t, err)
	_, err = s.AddCarouselItem(ctx, model.CarouselInput{Title: "Old", ImagePath: "o.webp", AltText: "Old", IsActive: model.Ptr(false)})
	require.NoError(t, err)

	active, err := s.ListCarouselItems(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Advert", active[0].Title)
	assert.Equal(t, "Logo", active[1].Title)

	all, err := s.ListCarouselItems(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
