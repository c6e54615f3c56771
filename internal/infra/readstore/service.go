package readstore

import (
	"context"

	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/infra/pgconv"
	"servemart/internal/usecase/queries"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

var _ queries.ServiceReadStore = (*ServiceReadStore)(nil)

const findServiceByIDSQL = `
SELECT id, provider_id, title, category, price_subunits, available
FROM services
WHERE id = $1`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := r.db.QueryRow(ctx, findServiceByIDSQL, id).Scan(
		&view.ID, &view.ProviderID, &view.Title, &view.Category, &view.PriceSubunits, &view.Available,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &view, nil
}

const listServicesSQL = `
SELECT id, provider_id, title, category, price_subunits, available
FROM services
WHERE available
ORDER BY title`

func (r *ServiceReadStore) List(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, listServicesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var result []*queries.ServiceView
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(&view.ID, &view.ProviderID, &view.Title, &view.Category, &view.PriceSubunits, &view.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return result, nil
}

const snapshotServiceByIDSQL = `
SELECT id, provider_id, title, price_subunits, available
FROM services
WHERE id = $1`

func (r *ServiceReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var snap shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, snapshotServiceByIDSQL, id).Scan(
		&snap.ID, &snap.ProviderID, &snap.Title, &snap.PriceSubunits, &snap.Available,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service snapshot", err)
	}
	return &snap, nil
}
