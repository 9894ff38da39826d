package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// FindMatchingOffersUseCase подбирает под потребность еще не
// удовлетворенные предложения, объекты которых проходят проверку
// domain.Matches. Порядок предложений из хранилища сохраняется.
type FindMatchingOffersUseCase struct {
	demands    port.DemandRepositoryPort
	offers     port.OfferRepositoryPort
	properties port.PropertyRepositoryPort
	deals      port.DealRepositoryPort
}

func NewFindMatchingOffersUseCase(
	demands port.DemandRepositoryPort,
	offers port.OfferRepositoryPort,
	properties port.PropertyRepositoryPort,
	deals port.DealRepositoryPort,
) *FindMatchingOffersUseCase {
	return &FindMatchingOffersUseCase{
		demands:    demands,
		offers:     offers,
		properties: properties,
		deals:      deals,
	}
}

func (uc *FindMatchingOffersUseCase) Execute(ctx context.Context, demandID uuid.UUID) ([]domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "FindMatchingOffers",
		"demand_id": demandID,
	})

	ucLogger.Info("Use case started", nil)

	demand, err := uc.demands.FindByID(ctx, demandID)
	if err != nil {
		ucLogger.Error("Failed to load demand", err, nil)
		return nil, err
	}
	if demand == nil {
		ucLogger.Warn("Demand not found", nil)
		return nil, domain.ErrDemandNotFound
	}

	candidates, err := uc.offers.List(ctx)
	if err != nil {
		ucLogger.Error("Failed to load offers", err, nil)
		return nil, err
	}

	satisfied, err := uc.deals.SatisfiedOfferIDs(ctx)
	if err != nil {
		ucLogger.Error("Failed to load satisfied offer ids", err, nil)
		return nil, err
	}

	// Объекты резолвим лениво и кэшируем: одно и то же property может
	// встретиться у нескольких кандидатов только при ошибках данных,
	// но повторный поход в БД в любом случае не нужен.
	cache := make(map[uuid.UUID]*domain.Property)
	lookup := func(propertyID uuid.UUID) *domain.Property {
		if cached, ok := cache[propertyID]; ok {
			return cached
		}
		property, lookupErr := uc.properties.FindByID(ctx, propertyID)
		if lookupErr != nil {
			ucLogger.Error("Failed to load property, skipping offer", lookupErr, port.Fields{"property_id": propertyID})
			property = nil
		}
		cache[propertyID] = property
		return property
	}

	matching := domain.FilterMatchingOffers(demand, candidates, lookup, satisfied)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"candidates_total": len(candidates),
		"matching_found":   len(matching),
	})
	return matching, nil
}
