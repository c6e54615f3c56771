package queries

import (
	"context"

	"servemart/internal/infra"
	"servemart/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	services ServiceReadStore
}

func NewServiceQueries(services ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{services: services}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.services.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}
	return view, nil
}

func (q *serviceQueriesImpl) List(ctx context.Context) ([]*ServiceView, error) {
	views, err := q.services.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}
	return views, nil
}
