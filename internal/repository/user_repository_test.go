package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/blog-platform/internal/database"
	"github.com/iliyamo/blog-platform/internal/utils"
)

// testDB opens a fresh in-memory SQLite database with the full schema.
func testDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.ResetSchema(context.Background(), db))
	return db
}

func TestUserRepo_CreateHashesPassword(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	u, err := repo.Create(ctx, "Ada", " Ada@B.com ", "secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Equal(t, "Ada@B.com", u.Email, "email is stored as supplied, only trimmed")
	require.NotEqual(t, "secret123", u.Password)
	require.True(t, utils.VerifyPassword(u.Password, "secret123"))
}

func TestUserRepo_EmailCaseSensitive(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ada", "Ada@B.com", "secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.Equal(t, "Ada@B.com", created.Email)

	// Lookups match the stored value exactly; a different casing is a miss.
	got, err := repo.GetByEmail(ctx, "Ada@B.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "ada@b.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "Ada", "a@b.com", "secret123", bcrypt.MinCost)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Eve", "a@b.com", "other", bcrypt.MinCost)
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestUserRepo_Lookups(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ada", "a@b.com", "secret123", bcrypt.MinCost)
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, "  a@b.com ")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", byID.Email)

	_, err = repo.GetByEmail(ctx, "x@y.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByID(ctx, 9999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepo_UpdateRehashesPassword(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ada", "a@b.com", "secret123", bcrypt.MinCost)
	require.NoError(t, err)

	newName := "Ada Lovelace"
	newPass := "changed456"
	updated, err := repo.Update(ctx, created.ID, UpdateUserParams{Name: &newName, Password: &newPass}, bcrypt.MinCost)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", updated.Name)
	require.Equal(t, "a@b.com", updated.Email, "omitted fields stay untouched")
	require.True(t, utils.VerifyPassword(updated.Password, "changed456"))
	require.False(t, utils.VerifyPassword(updated.Password, "secret123"))

	_, err = repo.Update(ctx, 9999, UpdateUserParams{Name: &newName}, bcrypt.MinCost)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepo_Delete(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ada", "a@b.com", "secret123", bcrypt.MinCost)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.Delete(ctx, created.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepo_List(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "Ada", "a@b.com", "secret123", bcrypt.MinCost)
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Eve", "e@b.com", "secret456", bcrypt.MinCost)
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "a@b.com", users[0].Email)
	require.Equal(t, "e@b.com", users[1].Email)
}
