package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/glitzme/internal/model"
)

// GetSetting returns the value stored under key. The boolean is false when
// the key does not exist.
func (s *Store) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT setting_value FROM site_settings WHERE setting_key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value.String, true, nil
}

// AllSettings returns every setting as a key to value map.
func (s *Store) AllSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT setting_key, setting_value FROM site_settings`)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		settings[key] = value.String
	}
	return settings, rows.Err()
}

// ListSettings returns the full setting records ordered by key.
func (s *Store) ListSettings(ctx context.Context) ([]model.SiteSetting, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT setting_key, setting_value, setting_type, description, updated_at
		 FROM site_settings ORDER BY setting_key`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	settings := []model.SiteSetting{}
	for rows.Next() {
		var st model.SiteSetting
		var value, description sql.NullString
		if err := rows.Scan(&st.Key, &value, &st.Type, &description, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		st.Value = value.String
		st.Description = description.String
		settings = append(settings, st)
	}
	return settings, rows.Err()
}

// SetSetting inserts the setting or overwrites the existing row with the
// same key. An empty type is stored as text.
func (s *Store) SetSetting(ctx context.Context, st model.SiteSetting) error {
	return setSetting(ctx, s.db, st)
}

func setSetting(ctx context.Context, ex execer, st model.SiteSetting) error {
	if st.Type == "" {
		st.Type = model.SettingTypeText
	}
	_, err := ex.ExecContext(ctx,
		`INSERT INTO site_settings (setting_key, setting_value, setting_type, description, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (setting_key) DO UPDATE SET
		     setting_value = excluded.setting_value,
		     setting_type  = excluded.setting_type,
		     description   = excluded.description,
		     updated_at    = CURRENT_TIMESTAMP`,
		st.Key, st.Value, st.Type, nullString(st.Description),
	)
	if err != nil {
		return fmt.Errorf("setting %q: %w", st.Key, err)
	}
	return nil
}
