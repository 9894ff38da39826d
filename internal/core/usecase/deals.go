package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// UpdateDealUseCase - административная починка сделки: перепривязка
// на другую потребность/предложение без повторной проверки подбора.
type UpdateDealUseCase struct {
	deals   port.DealRepositoryPort
	demands port.DemandRepositoryPort
	offers  port.OfferRepositoryPort
}

func NewUpdateDealUseCase(
	deals port.DealRepositoryPort,
	demands port.DemandRepositoryPort,
	offers port.OfferRepositoryPort,
) *UpdateDealUseCase {
	return &UpdateDealUseCase{deals: deals, demands: demands, offers: offers}
}

func (uc *UpdateDealUseCase) Execute(ctx context.Context, deal *domain.Deal) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateDeal", "deal_id": deal.ID})

	existing, err := uc.deals.FindByID(ctx, deal.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrDealNotFound
	}

	demand, err := uc.demands.FindByID(ctx, deal.DemandID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if demand == nil {
		return domain.ErrDemandNotFound
	}

	offer, err := uc.offers.FindByID(ctx, deal.OfferID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if offer == nil {
		return domain.ErrOfferNotFound
	}

	if err := uc.deals.Update(ctx, deal); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Deal updated", nil)
	return nil
}

type DeleteDealUseCase struct {
	deals port.DealRepositoryPort
}

func NewDeleteDealUseCase(deals port.DealRepositoryPort) *DeleteDealUseCase {
	return &DeleteDealUseCase{deals: deals}
}

func (uc *DeleteDealUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteDeal", "deal_id": id})

	existing, err := uc.deals.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrDealNotFound
	}

	if err := uc.deals.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Deal deleted", nil)
	return nil
}

type GetDealsUseCase struct {
	deals port.DealRepositoryPort
}

func NewGetDealsUseCase(deals port.DealRepositoryPort) *GetDealsUseCase {
	return &GetDealsUseCase{deals: deals}
}

func (uc *GetDealsUseCase) Execute(ctx context.Context) ([]domain.Deal, error) {
	return uc.deals.List(ctx)
}

type GetDealByIDUseCase struct {
	deals port.DealRepositoryPort
}

func NewGetDealByIDUseCase(deals port.DealRepositoryPort) *GetDealByIDUseCase {
	return &GetDealByIDUseCase{deals: deals}
}

func (uc *GetDealByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	deal, err := uc.deals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrDealNotFound
	}
	return deal, nil
}
