package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// CreateDealUseCase фиксирует пару "потребность - предложение".
// Обе стороны должны существовать и не участвовать в других сделках.
// После сохранения публикуется событие deal-created с рассчитанным
// распределением комиссии; ошибка публикации не откатывает сделку.
type CreateDealUseCase struct {
	deals       port.DealRepositoryPort
	demands     port.DemandRepositoryPort
	offers      port.OfferRepositoryPort
	commissions *ComputeDealCommissionsUseCase
	events      port.DealEventsPort
}

func NewCreateDealUseCase(
	deals port.DealRepositoryPort,
	demands port.DemandRepositoryPort,
	offers port.OfferRepositoryPort,
	commissions *ComputeDealCommissionsUseCase,
	events port.DealEventsPort,
) *CreateDealUseCase {
	return &CreateDealUseCase{
		deals:       deals,
		demands:     demands,
		offers:      offers,
		commissions: commissions,
		events:      events,
	}
}

func (uc *CreateDealUseCase) Execute(ctx context.Context, demandID, offerID uuid.UUID) (uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "CreateDeal",
		"demand_id": demandID,
		"offer_id":  offerID,
	})

	ucLogger.Info("Use case started", nil)

	demand, err := uc.demands.FindByID(ctx, demandID)
	if err != nil {
		ucLogger.Error("Failed to load demand", err, nil)
		return uuid.Nil, err
	}
	if demand == nil {
		return uuid.Nil, domain.ErrDemandNotFound
	}

	offer, err := uc.offers.FindByID(ctx, offerID)
	if err != nil {
		ucLogger.Error("Failed to load offer", err, nil)
		return uuid.Nil, err
	}
	if offer == nil {
		return uuid.Nil, domain.ErrOfferNotFound
	}

	demandTaken, err := uc.deals.ExistsForDemand(ctx, demandID)
	if err != nil {
		ucLogger.Error("Failed to check demand state", err, nil)
		return uuid.Nil, err
	}
	if demandTaken {
		ucLogger.Warn("Demand is already satisfied", nil)
		return uuid.Nil, domain.ErrDemandSatisfied
	}

	offerTaken, err := uc.deals.ExistsForOffer(ctx, offerID)
	if err != nil {
		ucLogger.Error("Failed to check offer state", err, nil)
		return uuid.Nil, err
	}
	if offerTaken {
		ucLogger.Warn("Offer is already satisfied", nil)
		return uuid.Nil, domain.ErrOfferSatisfied
	}

	deal := domain.NewDeal(demandID, offerID)
	if err := uc.deals.Create(ctx, deal); err != nil {
		ucLogger.Error("Failed to create deal", err, nil)
		return uuid.Nil, err
	}

	// Сделка уже зафиксирована - событие публикуем best-effort.
	if uc.events != nil {
		breakdown, calcErr := uc.commissions.forDeal(ctx, ucLogger, deal)
		if calcErr != nil {
			ucLogger.Error("Failed to compute commissions for deal event", calcErr, nil)
		} else if pubErr := uc.events.DealCreated(ctx, deal, breakdown); pubErr != nil {
			ucLogger.Error("Failed to publish deal-created event", pubErr, nil)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"deal_id": deal.ID})
	return deal.ID, nil
}
