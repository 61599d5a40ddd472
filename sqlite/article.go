package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/locnews"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ locnews.ArticleService = (*ArticleService)(nil)

// ArticleService implements locnews.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

const articleColumns = "id, source_id, title, link, published, summary, content, image_url, crawled, content_hash, created_at"

// CreateArticle stores a new article. Links are unique.
func (s *ArticleService) CreateArticle(ctx context.Context, article *locnews.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.SourceID, article.Title, article.Link, article.Published,
		article.Summary, article.Content, article.ImageURL, article.Crawled,
		article.ContentHash, article.CreatedAt.Format(timeFormat))

	switch {
	case isUniqueViolation(err):
		return locnews.Errorf(locnews.ECONFLICT, "article %s already exists", article.Link)
	case isForeignKeyViolation(err):
		return locnews.Errorf(locnews.ENOTFOUND, "source not found")
	}
	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*locnews.Article, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id)
	return scanArticle(row)
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter locnews.ArticleFilter) ([]*locnews.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceID != nil {
		query.WriteString(" AND source_id = ?")
		args = append(args, *filter.SourceID)
	}
	if filter.Link != nil {
		query.WriteString(" AND link = ?")
		args = append(args, *filter.Link)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*locnews.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return locnews.Errorf(locnews.ENOTFOUND, "article not found")
	}

	return nil
}

// DeleteArticlesBySource removes every article of a source.
func (s *ArticleService) DeleteArticlesBySource(ctx context.Context, sourceID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE source_id = ?", sourceID)
	return err
}

func scanArticle(row scanner) (*locnews.Article, error) {
	var a locnews.Article
	var createdAt string

	err := row.Scan(&a.ID, &a.SourceID, &a.Title, &a.Link, &a.Published, &a.Summary,
		&a.Content, &a.ImageURL, &a.Crawled, &a.ContentHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, locnews.Errorf(locnews.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	if a.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &a, nil
}
