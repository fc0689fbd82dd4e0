package service

import (
	"context"
	"errors"
	"time"

	"github.com/articlesvc/articles/internal/article"
	"github.com/articlesvc/articles/internal/article/repository"
	"github.com/articlesvc/articles/pkg/metrics"
	"github.com/google/uuid"
)

// DefaultMaxArticles is the cap on stored articles.
const DefaultMaxArticles = 100

// Service defines the article operations used by the handler layer. Every
// failure is an *article.Error.
type Service interface {
	Create(ctx context.Context, in article.Input) (*article.Article, error)
	List(ctx context.Context) ([]*article.Article, error)
	Update(ctx context.Context, id string, in article.Input) (*article.Article, error)
	Delete(ctx context.Context, id string) (*article.Article, error)
}

type Option func(*ArticleService)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *ArticleService) { s.now = now }
}

// WithIDGenerator replaces the UUID generator used for new articles.
func WithIDGenerator(gen func() string) Option {
	return func(s *ArticleService) { s.newID = gen }
}

// WithMaxArticles overrides DefaultMaxArticles. Values below 1 are ignored.
func WithMaxArticles(n int64) Option {
	return func(s *ArticleService) {
		if n > 0 {
			s.max = n
		}
	}
}

// ArticleService holds no per-request state; the repository is the only
// shared resource.
type ArticleService struct {
	repo  repository.Repository
	now   func() time.Time
	newID func() string
	max   int64
}

func New(repo repository.Repository, opts ...Option) *ArticleService {
	s := &ArticleService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		max:   DefaultMaxArticles,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create checks the cap, then stores a new article. The count and the insert
// are separate store calls, so concurrent creates can overshoot the cap.
func (s *ArticleService) Create(ctx context.Context, in article.Input) (a *article.Article, err error) {
	defer func() { observe("create", err) }()

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, article.PersistenceError(err)
	}
	if n >= s.max {
		metrics.CapacityRejected.Inc()
		return nil, article.CapacityError(s.max)
	}

	id := s.newID()
	tags, err := article.ParseTags(in.Tags)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	a = &article.Article{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, article.PersistenceError(err)
	}
	return a, nil
}

func (s *ArticleService) List(ctx context.Context) (list []*article.Article, err error) {
	defer func() { observe("list", err) }()

	list, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, article.PersistenceError(err)
	}
	if list == nil {
		list = []*article.Article{}
	}
	return list, nil
}

// Update replaces name, description and tags wholesale and bumps updated_at.
func (s *ArticleService) Update(ctx context.Context, id string, in article.Input) (a *article.Article, err error) {
	defer func() { observe("update", err) }()

	a, err = s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := article.ParseTags(in.Tags)
	if err != nil {
		return nil, err
	}

	a.Name = in.Name
	a.Description = in.Description
	a.Tags = tags
	a.UpdatedAt = s.timestamp()
	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, article.NotFoundError()
		}
		return nil, article.PersistenceError(err)
	}
	return a, nil
}

// Delete returns the article as it was before removal.
func (s *ArticleService) Delete(ctx context.Context, id string) (a *article.Article, err error) {
	defer func() { observe("delete", err) }()

	if _, err = s.find(ctx, id); err != nil {
		return nil, err
	}
	a, err = s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, article.NotFoundError()
		}
		return nil, article.PersistenceError(err)
	}
	return a, nil
}

func (s *ArticleService) find(ctx context.Context, id string) (*article.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, article.NotFoundError()
		}
		return nil, article.PersistenceError(err)
	}
	return a, nil
}

// timestamp is truncated to the store's millisecond precision so the value
// returned to the client equals the one read back later.
func (s *ArticleService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func observe(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = article.KindOf(err).String()
	}
	metrics.ArticleOperations.WithLabelValues(op, outcome).Inc()
}
