package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/glitzme/internal/db"
	"github.com/erazemk/glitzme/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(db.NewTestDB(t))
}

func TestStorageFailuresPropagate(t *testing.T) {
	database := db.NewTestDB(t)
	s := New(database)
	ctx := context.Background()
	require.NoError(t, database.Close())

	_, err := s.ListRentals(ctx, ListOptions{})
	assert.Error(t, err)
	_, err = s.GetPackage(ctx, 1)
	assert.Error(t, err)
	_, err = s.AddTeamMember(ctx, model.TeamMemberInput{Name: "a", Role: "b", ImagePath: "c"})
	assert.Error(t, err)
	_, err = s.UpdateCarouselItem(ctx, 1, model.CarouselPatch{Title: model.Ptr("x")})
	assert.Error(t, err)
	_, err = s.DeleteRental(ctx, 1)
	assert.Error(t, err)
	_, _, err = s.GetSetting(ctx, "email")
	assert.Error(t, err)
	_, err = s.Seed(ctx)
	assert.Error(t, err)
}
