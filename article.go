package locnews

import (
	"context"
	"time"
)

// Article is the merged record of a feed entry and its crawled body.
type Article struct {
	ID        string `json:"id"`
	SourceID  string `json:"sourceId"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Summary   string `json:"summary"`

	// Content is the serialized article body, or the feed summary when
	// crawling failed.
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`

	// Crawled reports whether Content came from the article page.
	Crawled     bool      `json:"crawled"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceID == "" {
		return Errorf(EINVALID, "article source ID required")
	}
	if a.Link == "" {
		return Errorf(EINVALID, "article link required")
	}
	return nil
}

// ArticleWriter writes articles to storage.
type ArticleWriter interface {
	CreateArticle(ctx context.Context, article *Article) error
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle creates a new article.
	// Returns ECONFLICT if an article with the same link exists.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if article does not exist.
	DeleteArticle(ctx context.Context, id string) error

	// DeleteArticlesBySource removes all articles for a source.
	DeleteArticlesBySource(ctx context.Context, sourceID string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID       *string `json:"id"`
	SourceID *string `json:"sourceId"`
	Link     *string `json:"link"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticlePublisher hands merged articles to downstream consumers
// (classification, indexing).
type ArticlePublisher interface {
	Publish(ctx context.Context, article *Article) error
}
