package mock

import (
	"context"

	"github.com/fwojciec/locnews"
)

var (
	_ locnews.ArticleService   = (*ArticleService)(nil)
	_ locnews.ArticleWriter    = (*ArticleWriter)(nil)
	_ locnews.ArticlePublisher = (*ArticlePublisher)(nil)
)

// ArticleService is a mock implementation of locnews.ArticleService.
type ArticleService struct {
	CreateArticleFn          func(ctx context.Context, article *locnews.Article) error
	FindArticleByIDFn        func(ctx context.Context, id string) (*locnews.Article, error)
	FindArticlesFn           func(ctx context.Context, filter locnews.ArticleFilter) ([]*locnews.Article, error)
	DeleteArticleFn          func(ctx context.Context, id string) error
	DeleteArticlesBySourceFn func(ctx context.Context, sourceID string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *locnews.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*locnews.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter locnews.ArticleFilter) ([]*locnews.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

func (s *ArticleService) DeleteArticlesBySource(ctx context.Context, sourceID string) error {
	return s.DeleteArticlesBySourceFn(ctx, sourceID)
}

// ArticleWriter is a mock implementation of locnews.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *locnews.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *locnews.Article) error {
	return w.CreateArticleFn(ctx, article)
}

// ArticlePublisher is a mock implementation of locnews.ArticlePublisher.
type ArticlePublisher struct {
	PublishFn func(ctx context.Context, article *locnews.Article) error
}

func (p *ArticlePublisher) Publish(ctx context.Context, article *locnews.Article) error {
	return p.PublishFn(ctx, article)
}
