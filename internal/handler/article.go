package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-platform/internal/model"
	"github.com/iliyamo/blog-platform/internal/queue"
	"github.com/iliyamo/blog-platform/internal/repository"
)

// ArticleHandler bundles dependencies for the article CRUD endpoints.
type ArticleHandler struct {
	Articles *repository.ArticleRepo
}

func NewArticleHandler(articles *repository.ArticleRepo) *ArticleHandler {
	return &ArticleHandler{Articles: articles}
}

type createArticleReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Body        string  `json:"body"`
	Published   *bool   `json:"published"`
	AuthorID    *uint64 `json:"author_id"`
}

type updateArticleReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
	Published   *bool   `json:"published"`
	AuthorID    *uint64 `json:"author_id"`
}

// Create handles POST /v1/articles. Articles default to unpublished.
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || req.Body == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/body required"})
	}

	a := model.Article{
		Title:       title,
		Description: req.Description,
		Body:        req.Body,
		AuthorID:    req.AuthorID,
	}
	if req.Published != nil {
		a.Published = *req.Published
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Articles.Create(ctx, &a); err != nil {
		if errors.Is(err, repository.ErrTitleExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "title already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create article failed"})
	}

	if a.Published {
		_ = queue.PublishArticlePublished(ctx, articlePublishedEvent(a))
	}
	return c.JSON(http.StatusCreated, a)
}

// List handles GET /v1/articles and returns published articles only.
func (h *ArticleHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	articles, err := h.Articles.ListPublished(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, articles)
}

// ListDrafts handles GET /v1/articles/drafts.
func (h *ArticleHandler) ListDrafts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	articles, err := h.Articles.ListDrafts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, articles)
}

// Get handles GET /v1/articles/:id and includes the author when set.
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, a)
}

// Update handles PATCH /v1/articles/:id. Flipping published to true emits
// an article.published event.
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateArticleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	wasDraft := false
	if req.Published != nil && *req.Published {
		if cur, err := h.Articles.GetByID(ctx, id); err == nil {
			wasDraft = !cur.Published
		}
	}

	a, err := h.Articles.Update(ctx, id, repository.UpdateArticleParams{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Published:   req.Published,
		AuthorID:    req.AuthorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrArticleNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		case errors.Is(err, repository.ErrTitleExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "title already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}

	if wasDraft && a.Published {
		_ = queue.PublishArticlePublished(ctx, articlePublishedEvent(a))
	}
	return c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /v1/articles/:id and returns the deleted record.
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Articles.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "article not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, a)
}

func articlePublishedEvent(a model.Article) queue.ArticlePublishedEvent {
	ev := queue.ArticlePublishedEvent{
		ArticleID:   a.ID,
		Title:       a.Title,
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if a.AuthorID != nil {
		ev.AuthorID = *a.AuthorID
	}
	return ev
}
