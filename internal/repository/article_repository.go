package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/iliyamo/blog-platform/internal/model"
)

// ArticleRepo provides access to the articles table.
type ArticleRepo struct{ DB *bun.DB }

func NewArticleRepo(db *bun.DB) *ArticleRepo { return &ArticleRepo{DB: db} }

// UpdateArticleParams carries the optional fields of a partial article
// update. Nil means "leave unchanged".
type UpdateArticleParams struct {
	Title       *string
	Description *string
	Body        *string
	Published   *bool
	AuthorID    *uint64
}

// Create inserts the article and fills in its generated id and timestamps.
func (r *ArticleRepo) Create(ctx context.Context, a *model.Article) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := r.DB.NewInsert().Model(a).Exec(ctx); err != nil {
		if isDuplicate(err) {
			return ErrTitleExists
		}
		return err
	}
	return nil
}

// ListPublished returns all published articles ordered by id.
func (r *ArticleRepo) ListPublished(ctx context.Context) ([]model.Article, error) {
	return r.list(ctx, true)
}

// ListDrafts returns all unpublished articles ordered by id.
func (r *ArticleRepo) ListDrafts(ctx context.Context) ([]model.Article, error) {
	return r.list(ctx, false)
}

func (r *ArticleRepo) list(ctx context.Context, published bool) ([]model.Article, error) {
	var articles []model.Article
	err := r.DB.NewSelect().Model(&articles).
		Where("a.published = ?", published).
		Order("a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// GetByID fetches an article together with its author, when one is set.
func (r *ArticleRepo) GetByID(ctx context.Context, id uint64) (model.Article, error) {
	var a model.Article
	err := r.DB.NewSelect().Model(&a).
		Relation("Author").
		Where("a.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, ErrArticleNotFound
		}
		return model.Article{}, err
	}
	return a, nil
}

// Update applies a partial update and returns the stored row.
func (r *ArticleRepo) Update(ctx context.Context, id uint64, p UpdateArticleParams) (model.Article, error) {
	a, err := r.getBare(ctx, id)
	if err != nil {
		return model.Article{}, err
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = p.Description
	}
	if p.Body != nil {
		a.Body = *p.Body
	}
	if p.Published != nil {
		a.Published = *p.Published
	}
	if p.AuthorID != nil {
		a.AuthorID = p.AuthorID
	}
	a.UpdatedAt = time.Now().UTC()
	if _, err := r.DB.NewUpdate().Model(&a).WherePK().Exec(ctx); err != nil {
		if isDuplicate(err) {
			return model.Article{}, ErrTitleExists
		}
		return model.Article{}, err
	}
	return a, nil
}

// Delete removes an article by id and returns the deleted row.
func (r *ArticleRepo) Delete(ctx context.Context, id uint64) (model.Article, error) {
	a, err := r.getBare(ctx, id)
	if err != nil {
		return model.Article{}, err
	}
	if _, err := r.DB.NewDelete().Model(&a).WherePK().Exec(ctx); err != nil {
		return model.Article{}, err
	}
	return a, nil
}

// getBare fetches an article without its author relation.
func (r *ArticleRepo) getBare(ctx context.Context, id uint64) (model.Article, error) {
	var a model.Article
	err := r.DB.NewSelect().Model(&a).Where("a.id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Article{}, ErrArticleNotFound
		}
		return model.Article{}, err
	}
	return a, nil
}
