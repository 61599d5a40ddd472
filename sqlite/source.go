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
var _ locnews.SourceService = (*SourceService)(nil)

// SourceService implements locnews.SourceService using SQLite.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

// CreateSource creates a new source.
func (s *SourceService) CreateSource(ctx context.Context, source *locnews.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	source.ID = uuid.New().String()
	now := time.Now().UTC()
	source.CreatedAt = now
	source.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sources (id, name, feed_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, source.ID, source.Name, source.FeedURL,
		source.CreatedAt.Format(timeFormat), source.UpdatedAt.Format(timeFormat))

	if isUniqueViolation(err) {
		return locnews.Errorf(locnews.ECONFLICT, "source %q already exists", source.Name)
	}
	return err
}

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*locnews.Source, error) {
	sources, err := s.FindSources(ctx, locnews.SourceFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, locnews.Errorf(locnews.ENOTFOUND, "source not found")
	}
	return sources[0], nil
}

// FindSources retrieves sources matching the filter, ordered by name.
func (s *SourceService) FindSources(ctx context.Context, filter locnews.SourceFilter) ([]*locnews.Source, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, feed_url, created_at, updated_at FROM sources WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*locnews.Source
	for rows.Next() {
		source, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	return sources, rows.Err()
}

// UpdateSource updates an existing source.
func (s *SourceService) UpdateSource(ctx context.Context, id string, upd locnews.SourceUpdate) (*locnews.Source, error) {
	source, err := s.FindSourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		source.Name = *upd.Name
	}
	if upd.FeedURL != nil {
		source.FeedURL = *upd.FeedURL
	}

	if err := source.Validate(); err != nil {
		return nil, err
	}

	source.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE sources
		SET name = ?, feed_url = ?, updated_at = ?
		WHERE id = ?
	`, source.Name, source.FeedURL, source.UpdatedAt.Format(timeFormat), id)

	if isUniqueViolation(err) {
		return nil, locnews.Errorf(locnews.ECONFLICT, "source %q already exists", source.Name)
	}
	if err != nil {
		return nil, err
	}

	return source, nil
}

// DeleteSource permanently removes a source. Its articles are removed by
// the foreign key cascade.
func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return locnews.Errorf(locnews.ENOTFOUND, "source not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSource(row scanner) (*locnews.Source, error) {
	var source locnews.Source
	var createdAt, updatedAt string

	if err := row.Scan(&source.ID, &source.Name, &source.FeedURL, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, locnews.Errorf(locnews.ENOTFOUND, "source not found")
		}
		return nil, err
	}

	var err error
	if source.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if source.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &source, nil
}
