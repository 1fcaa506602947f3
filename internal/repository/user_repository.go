package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/iliyamo/blog-platform/internal/model"
	"github.com/iliyamo/blog-platform/internal/utils"
)

// UserRepo provides access to the users table. Plaintext passwords enter
// here and leave as bcrypt hashes; nothing above this layer ever stores one.
type UserRepo struct{ DB *bun.DB }

func NewUserRepo(db *bun.DB) *UserRepo { return &UserRepo{DB: db} }

// UpdateUserParams carries the optional fields of a partial user update.
// Nil means "leave unchanged". Password is plaintext and is re-hashed
// before it touches the database.
type UpdateUserParams struct {
	Name     *string
	Email    *string
	Password *string
}

// Create inserts a user with a freshly hashed password and returns the
// stored row. The email is stored exactly as supplied (case-sensitive);
// only surrounding whitespace is dropped.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (model.User, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	now := time.Now().UTC()
	u := model.User{
		Name:      name,
		Email:     strings.TrimSpace(email),
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.DB.NewInsert().Model(&u).Exec(ctx); err != nil {
		if isDuplicate(err) {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return u, nil
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.DB.NewSelect().Model(&users).Order("u.id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByEmail fetches a user by exact email match. Absence is reported as
// ErrUserNotFound so callers decide the error semantics.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	var u model.User
	err := r.DB.NewSelect().Model(&u).Where("u.email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.NewSelect().Model(&u).Where("u.id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// Update applies a partial update and returns the stored row. A supplied
// password is hashed with the given cost before persisting.
func (r *UserRepo) Update(ctx context.Context, id uint64, p UpdateUserParams, cost int) (model.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Password != nil {
		hash, err := utils.HashPassword(*p.Password, cost)
		if err != nil {
			return model.User{}, err
		}
		u.Password = hash
	}
	u.UpdatedAt = time.Now().UTC()
	if _, err := r.DB.NewUpdate().Model(&u).WherePK().Exec(ctx); err != nil {
		if isDuplicate(err) {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return u, nil
}

// Delete removes a user by id and returns the deleted row.
func (r *UserRepo) Delete(ctx context.Context, id uint64) (model.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if _, err := r.DB.NewDelete().Model(&u).WherePK().Exec(ctx); err != nil {
		return model.User{}, err
	}
	return u, nil
}
