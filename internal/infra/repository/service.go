package repository

import (
	"context"

	"servemart/internal/domain/service"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

var _ shared.ServiceRepository = (*ServiceRepository)(nil)

const createServiceSQL = `
INSERT INTO services (id, provider_id, title, category, price_subunits, available)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *ServiceRepository) Create(ctx context.Context, dbtx db.DBTX, s *service.Service) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createServiceSQL,
		s.ID(),
		s.ProviderID(),
		s.Title(),
		string(s.Category()),
		s.PriceSubunits(),
		s.Available(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err, kindFromPgErr(err))
	}
	return id, nil
}

const setServiceAvailabilitySQL = `
UPDATE services SET available = $2 WHERE id = $1`

func (r *ServiceRepository) SetAvailability(ctx context.Context, dbtx db.DBTX, id uuid.UUID, available bool) error {
	tag, err := dbtx.Exec(ctx, setServiceAvailabilitySQL, id, available)
	if err != nil {
		return infra.WrapRepoErr("failed to update service availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
