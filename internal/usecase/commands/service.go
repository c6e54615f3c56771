package commands

import (
	"context"
	"log/slog"

	"servemart/internal/domain/service"
	"servemart/internal/infra"
	"servemart/internal/pkg/errs"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceInput struct {
	Title         string
	Category      string
	PriceSubunits int64
}

type ServiceCommands interface {
	Create(ctx context.Context, providerID uuid.UUID, in CreateServiceInput) (uuid.UUID, error)
	SetAvailability(ctx context.Context, providerID, serviceID uuid.UUID, available bool) error
}

type serviceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewServiceCommands(uow shared.UnitOfWork) ServiceCommands {
	return &serviceCommandsImpl{uow: uow}
}

func (c *serviceCommandsImpl) Create(ctx context.Context, providerID uuid.UUID, in CreateServiceInput) (uuid.UUID, error) {
	entity, err := service.NewService(
		uuid.New(),
		providerID,
		in.Title,
		service.Category(in.Category),
		in.PriceSubunits,
		true,
	)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "invalid service")
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Services().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("service created", "service_id", id, "provider_id", providerID)

	return id, nil
}

func (c *serviceCommandsImpl) SetAvailability(ctx context.Context, providerID, serviceID uuid.UUID, available bool) error {
	reads := c.uow.CommandReads()

	svc, err := reads.ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrServiceNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if svc.ProviderID != providerID {
		return errs.ErrServiceNotFound
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().SetAvailability(ctx, tx.DB(), serviceID, available)
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
