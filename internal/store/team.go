package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/glitzme/internal/model"
)

const teamColumns = `id, name, role, image_path, mobile_image_path,
	display_order, is_active, created_at, updated_at`

// ListTeamMembers returns team members ordered by display order, then name.
func (s *Store) ListTeamMembers(ctx context.Context, activeOnly bool) ([]model.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members`
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	defer rows.Close()

	members := []model.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetTeamMember returns a team member by ID, or nil if there is none.
func (s *Store) GetTeamMember(ctx context.Context, id int64) (*model.TeamMember, error) {
	m, err := scanTeamMember(s.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM team_members WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting team member: %w", err)
	}
	return &m, nil
}

// AddTeamMember inserts a team member and returns its ID.
func (s *Store) AddTeamMember(ctx context.Context, in model.TeamMemberInput) (int64, error) {
	return addTeamMember(ctx, s.db, in)
}

func addTeamMember(ctx context.Context, ex execer, in model.TeamMemberInput) (int64, error) {
	in = in.WithDefaults()
	result, err := ex.ExecContext(ctx,
		`INSERT INTO team_members (name, role, image_path, mobile_image_path, is_active, display_order)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Name, in.Role, in.ImagePath, nullString(in.MobileImagePath), *in.IsActive, in.DisplayOrder,
	)
	if err != nil {
		return 0, fmt.Errorf("adding team member: %w", err)
	}
	return insertID(result, "team member")
}

// UpdateTeamMember applies the non-nil patch fields.
func (s *Store) UpdateTeamMember(ctx context.Context, id int64, p model.TeamMemberPatch) (bool, error) {
	var a assignments
	a.text("name", p.Name)
	a.text("role", p.Role)
	a.text("image_path", p.ImagePath)
	a.optionalText("mobile_image_path", p.MobileImagePath)
	a.flag("is_active", p.IsActive)
	a.number("display_order", p.DisplayOrder)
	return s.updateRow(ctx, "team_members", id, a)
}

// DeleteTeamMember removes a team member.
func (s *Store) DeleteTeamMember(ctx context.Context, id int64) (bool, error) {
	return s.deleteRow(ctx, "team_members", id)
}

func scanTeamMember(sc scanner) (model.TeamMember, error) {
	var m model.TeamMember
	var mobile sql.NullString
	err := sc.Scan(&m.ID, &m.Name, &m.Role, &m.ImagePath, &mobile,
		&m.DisplayOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	m.MobileImagePath = mobile.String
	return m, err
}
