package mock

import (
	"context"

	"github.com/fwojciec/locnews"
)

var _ locnews.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of locnews.SourceService.
type SourceService struct {
	CreateSourceFn   func(ctx context.Context, source *locnews.Source) error
	FindSourceByIDFn func(ctx context.Context, id string) (*locnews.Source, error)
	FindSourcesFn    func(ctx context.Context, filter locnews.SourceFilter) ([]*locnews.Source, error)
	UpdateSourceFn   func(ctx context.Context, id string, upd locnews.SourceUpdate) (*locnews.Source, error)
	DeleteSourceFn   func(ctx context.Context, id string) error
}

func (s *SourceService) CreateSource(ctx context.Context, source *locnews.Source) error {
	return s.CreateSourceFn(ctx, source)
}

func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*locnews.Source, error) {
	return s.FindSourceByIDFn(ctx, id)
}

func (s *SourceService) FindSources(ctx context.Context, filter locnews.SourceFilter) ([]*locnews.Source, error) {
	return s.FindSourcesFn(ctx, filter)
}

func (s *SourceService) UpdateSource(ctx context.Context, id string, upd locnews.SourceUpdate) (*locnews.Source, error) {
	return s.UpdateSourceFn(ctx, id, upd)
}

func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	return s.DeleteSourceFn(ctx, id)
}
