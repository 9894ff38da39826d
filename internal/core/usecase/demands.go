package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreateDemandUseCase struct {
	demands  port.DemandRepositoryPort
	clients  port.ClientRepositoryPort
	realtors port.RealtorRepositoryPort
}

func NewCreateDemandUseCase(
	demands port.DemandRepositoryPort,
	clients port.ClientRepositoryPort,
	realtors port.RealtorRepositoryPort,
) *CreateDemandUseCase {
	return &CreateDemandUseCase{demands: demands, clients: clients, realtors: realtors}
}

func (uc *CreateDemandUseCase) Execute(ctx context.Context, demand *domain.Demand) (uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateDemand"})

	if err := demand.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return uuid.Nil, err
	}
	if err := checkDemandReferences(ctx, demand, uc.clients, uc.realtors); err != nil {
		ucLogger.Warn("Reference check failed", port.Fields{"error": err.Error()})
		return uuid.Nil, err
	}
	if demand.ID == uuid.Nil {
		demand.ID = uuid.New()
	}

	if err := uc.demands.Create(ctx, demand); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return uuid.Nil, err
	}
	ucLogger.Info("Demand created", port.Fields{"demand_id": demand.ID})
	return demand.ID, nil
}

func checkDemandReferences(
	ctx context.Context,
	demand *domain.Demand,
	clients port.ClientRepositoryPort,
	realtors port.RealtorRepositoryPort,
) error {
	client, err := clients.FindByID(ctx, demand.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}

	realtor, err := realtors.FindByID(ctx, demand.RealtorID)
	if err != nil {
		return err
	}
	if realtor == nil {
		return domain.ErrRealtorNotFound
	}
	return nil
}

type UpdateDemandUseCase struct {
	demands  port.DemandRepositoryPort
	clients  port.ClientRepositoryPort
	realtors port.RealtorRepositoryPort
}

func NewUpdateDemandUseCase(
	demands port.DemandRepositoryPort,
	clients port.ClientRepositoryPort,
	realtors port.RealtorRepositoryPort,
) *UpdateDemandUseCase {
	return &UpdateDemandUseCase{demands: demands, clients: clients, realtors: realtors}
}

func (uc *UpdateDemandUseCase) Execute(ctx context.Context, demand *domain.Demand) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateDemand", "demand_id": demand.ID})

	if err := demand.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.demands.FindByID(ctx, demand.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrDemandNotFound
	}

	if err := checkDemandReferences(ctx, demand, uc.clients, uc.realtors); err != nil {
		ucLogger.Warn("Reference check failed", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.demands.Update(ctx, demand); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Demand updated", nil)
	return nil
}

// DeleteDemandUseCase отказывает в удалении потребности, уже
// участвующей в сделке.
type DeleteDemandUseCase struct {
	demands port.DemandRepositoryPort
	deals   port.DealRepositoryPort
}

func NewDeleteDemandUseCase(demands port.DemandRepositoryPort, deals port.DealRepositoryPort) *DeleteDemandUseCase {
	return &DeleteDemandUseCase{demands: demands, deals: deals}
}

func (uc *DeleteDemandUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteDemand", "demand_id": id})

	existing, err := uc.demands.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrDemandNotFound
	}

	inDeal, err := uc.deals.ExistsForDemand(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if inDeal {
		ucLogger.Warn("Demand is referenced by a deal, refusing to delete", nil)
		return domain.ErrDemandInDeal
	}

	if err := uc.demands.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Demand deleted", nil)
	return nil
}

type GetDemandsUseCase struct {
	demands port.DemandRepositoryPort
}

func NewGetDemandsUseCase(demands port.DemandRepositoryPort) *GetDemandsUseCase {
	return &GetDemandsUseCase{demands: demands}
}

func (uc *GetDemandsUseCase) Execute(ctx context.Context) ([]domain.Demand, error) {
	return uc.demands.List(ctx)
}

type GetDemandByIDUseCase struct {
	demands port.DemandRepositoryPort
}

func NewGetDemandByIDUseCase(demands port.DemandRepositoryPort) *GetDemandByIDUseCase {
	return &GetDemandByIDUseCase{demands: demands}
}

func (uc *GetDemandByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Demand, error) {
	demand, err := uc.demands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if demand == nil {
		return nil, domain.ErrDemandNotFound
	}
	return demand, nil
}
