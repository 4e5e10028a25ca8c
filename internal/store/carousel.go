package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/glitzme/internal/model"
)

const carouselColumns = `id, title, image_path, mobile_image_path, alt_text, link_url, link_text,
	display_order, is_active, created_at, updated_at`

// ListCarouselItems returns slides ordered by display order, then title.
func (s *Store) ListCarouselItems(ctx context.Context, activeOnly bool) ([]model.CarouselItem, error) {
	query := `SELECT ` + carouselColumns + ` FROM carousel_items`
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY display_order, title"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing carousel items: %w", err)
	}
	defer rows.Close()

	items := []model.CarouselItem{}
	for rows.Next() {
		item, err := scanCarouselItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning carousel item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetCarouselItem returns a slide by ID, or nil if there is none.
func (s *Store) GetCarouselItem(ctx context.Context, id int64) (*model.CarouselItem, error) {
	item, err := scanCarouselItem(s.db.QueryRowContext(ctx,
		`SELECT `+carouselColumns+` FROM carousel_items WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting carousel item: %w", err)
	}
	return &item, nil
}

// AddCarouselItem inserts a slide and returns its ID.
func (s *Store) AddCarouselItem(ctx context.Context, in model.CarouselInput) (int64, error) {
	return addCarouselItem(ctx, s.db, in)
}

func addCarouselItem(ctx context.Context, ex execer, in model.CarouselInput) (int64, error) {
	in = in.WithDefaults()
	result, err := ex.ExecContext(ctx,
		`INSERT INTO carousel_items
		 (title, image_path, mobile_image_path, alt_text, link_url, link_text, is_active, display_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.ImagePath, nullString(in.MobileImagePath), in.AltText,
		nullString(in.LinkURL), nullString(in.LinkText), *in.IsActive, in.DisplayOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("adding carousel item: %w", err)
	}
	return insertID(result, "carousel item")
}

// UpdateCarouselItem applies the non-nil patch fields.
func (s *Store) UpdateCarouselItem(ctx context.Context, id int64, p model.CarouselPatch) (bool, error) {
	var a assignments
	a.text("title", p.Title)
	a.text("image_path", p.ImagePath)
	a.optionalText("mobile_image_path", p.MobileImagePath)
	a.text("alt_text", p.AltText)
	a.optionalText("link_url", p.LinkURL)
	a.optionalText("link_text", p.LinkText)
	a.flag("is_active", p.IsActive)
	a.number("display_order", p.DisplayOrder)
	return s.updateRow(ctx, "carousel_items", id, a)
}

// DeleteCarouselItem removes a slide.
func (s *Store) DeleteCarouselItem(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "carousel_items", id)
}

func scanCarouselItem(sc scanner) (model.CarouselItem, error) {
	var item model.CarouselItem
	var mobile, linkURL, linkText sql.NullString
	err := sc.Scan(&item.ID, &item.Title, &item.ImagePath, &mobile, &item.AltText, &linkURL, &linkText,
		&item.DisplayOrder, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
	item.MobileImagePath = mobile.String
	item.LinkURL = linkURL.String
	item.LinkText = linkText.String
	return item, err
}
