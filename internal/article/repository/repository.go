package repository

import (
	"context"
	"errors"

	"github.com/articlesvc/articles/internal/article"
)

var (
	ErrNotFound  = errors.New("article not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Repository is the document-store contract the article service depends on.
type Repository interface {
	Count(ctx context.Context) (int64, error)
	// Insert stores a new article under its ID; a description already in use
	// yields an error matching ErrDuplicate.
	Insert(ctx context.Context, a *article.Article) error
	FindByID(ctx context.Context, id string) (*article.Article, error)
	FindAll(ctx context.Context) ([]*article.Article, error)
	// Update replaces the stored document with the same ID.
	Update(ctx context.Context, a *article.Article) error
	// Delete removes the article and returns the document as it was stored.
	Delete(ctx context.Context, id string) (*article.Article, error)
}

// duplicateError keeps the store's message while matching ErrDuplicate.
type duplicateError struct {
	err error
}

func (d *duplicateError) Error() string { return d.err.Error() }

func (d *duplicateError) Unwrap() []error { return []error{ErrDuplicate, d.err} }
