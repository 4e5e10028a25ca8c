package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/glitzme/internal/model"
)

const packageColumns = `id, name, image_path, price, price_text, description,
	is_active, display_order, created_at, updated_at`

// ListPackages returns packages ordered by display order, then name.
func (s *Store) ListPackages(ctx context.Context, activeOnly bool) ([]model.PackageItem, error) {
	query := `SELECT ` + packageColumns + ` FROM package_items`
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	defer rows.Close()

	items := []model.PackageItem{}
	for rows.Next() {
		item, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning package: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetPackage returns a package by ID, or nil if there is none.
func (s *Store) GetPackage(ctx context.Context, id int64) (*model.PackageItem, error) {
	item, err := scanPackage(s.db.QueryRowContext(ctx,
		`SELECT `+packageColumns+` FROM package_items WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting package: %w", err)
	}
	return &item, nil
}

// AddPackage inserts a package and returns its ID.
func (s *Store) AddPackage(ctx context.Context, in model.PackageInput) (int64, error) {
	return addPackage(ctx, s.db, in)
}

func addPackage(ctx context.Context, ex execer, in model.PackageInput) (int64, error) {
	in = in.WithDefaults()
	result, err := ex.ExecContext(ctx,
		`INSERT INTO package_items (name, image_path, price, price_text, description, is_active, display_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.ImagePath, in.Price, in.PriceText, nullString(in.Description), *in.IsActive, in.DisplayOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("adding package: %w", err)
	}
	return insertID(result, "package")
}

// UpdatePackage applies the non-nil patch fields.
func (s *Store) UpdatePackage(ctx context.Context, id int64, p model.PackagePatch) (bool, error) {
	var a assignments
	a.text("name", p.Name)
	a.text("image_path", p.ImagePath)
	a.text("price", p.Price)
	a.text("price_text", p.PriceText)
	a.optionalText("description", p.Description)
	a.flag("is_active", p.IsActive)
	a.number("display_order", p.DisplayOrder)
	return s.updateRow(ctx, "package_items", id, a)
}

// DeletePackage removes a package.
func (s *Store) DeletePackage(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "package_items", id)
}

func scanPackage(sc scanner) (model.PackageItem, error) {
	var item model.PackageItem
	var description sql.NullString
	err := sc.Scan(&item.ID, &item.Name, &item.ImagePath, &item.Price, &item.PriceText,
		&description, &item.IsActive, &item.DisplayOrder, &item.CreatedAt, &item.UpdatedAt)
	item.Description = description.String
	return item, err
}
