package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/erazemk/glitzme/internal/model"
)

const rentalColumns = `id, name, image_path, price, deposit, price_text, deposit_text,
	category, description, is_active, display_order, created_at, updated_at`

// ListOptions filters a rental listing.
type ListOptions struct {
	ActiveOnly bool
	Category   string
}

// ListRentals returns rental items ordered by display order, then name.
func (s *Store) ListRentals(ctx context.Context, opts ListOptions) ([]model.RentalItem, error) {
	var conds []string
	var args []any
	if opts.ActiveOnly {
		conds = append(conds, "is_active = 1")
	}
	if opts.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, opts.Category)
	}

	query := `SELECT ` + rentalColumns + ` FROM rental_items`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rental items: %w", err)
	}
	defer rows.Close()

	items := []model.RentalItem{}
	for rows.Next() {
		item, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rental item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetRental returns a rental item by ID, or nil if there is none.
func (s *Store) GetRental(ctx context.Context, id int64) (*model.RentalItem, error) {
	item, err := scanRental(s.db.QueryRowContext(ctx,
		`SELECT `+rentalColumns+` FROM rental_items WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting rental item: %w", err)
	}
	return &item, nil
}

// AddRental inserts a rental item and returns its ID.
func (s *Store) AddRental(ctx context.Context, in model.RentalInput) (int64, error) {
	return addRental(ctx, s.db, in)
}

func addRental(ctx context.Context, ex execer, in model.RentalInput) (int64, error) {
	in = in.WithDefaults()
	result, err := ex.ExecContext(ctx,
		`INSERT INTO rental_items
		 (name, image_path, price, deposit, price_text, deposit_text, category, description, is_active, display_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.ImagePath, in.Price, nullString(in.Deposit), in.PriceText, in.DepositText,
		in.Category, nullString(in.Description), *in.IsActive, in.DisplayOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("adding rental item: %w", err)
	}
	return insertID(result, "rental item")
}

// UpdateRental applies the non-nil patch fields. It returns false when no
// row has the ID or the patch is empty.
func (s *Store) UpdateRental(ctx context.Context, id int64, p model.RentalPatch) (bool, error) {
	var a assignments
	a.text("name", p.Name)
	a.text("image_path", p.ImagePath)
	a.text("price", p.Price)
	a.optionalText("deposit", p.Deposit)
	a.text("price_text", p.PriceText)
	a.text("deposit_text", p.DepositText)
	a.text("category", p.Category)
	a.optionalText("description", p.Description)
	a.flag("is_active", p.IsActive)
	a.number("display_order", p.DisplayOrder)
	return s.updateRow(ctx, "rental_items", id, a)
}

// DeleteRental removes a rental item.
func (s *Store) DeleteRental(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "rental_items", id)
}

func scanRental(sc scanner) (model.RentalItem, error) {
	var item model.RentalItem
	var deposit, description sql.NullString
	err := sc.Scan(&item.ID, &item.Name, &item.ImagePath, &item.Price, &deposit,
		&item.PriceText, &item.DepositText, &item.Category, &description,
		&item.IsActive, &item.DisplayOrder, &item.CreatedAt, &item.UpdatedAt)
	item.Deposit = deposit.String
	item.Description = description.String
	return item, err
}
