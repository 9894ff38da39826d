package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// ComputeDealCommissionsUseCase собирает записи сделки и считает
// распределение комиссии. Риэлтор со стороны продавца берется из
// предложения, со стороны покупателя - из потребности. Отсутствие
// сделки или ее предложения дает нулевой результат вместо ошибки:
// потребитель - отчетные экраны.
type ComputeDealCommissionsUseCase struct {
	deals      port.DealRepositoryPort
	offers     port.OfferRepositoryPort
	demands    port.DemandRepositoryPort
	properties port.PropertyRepositoryPort
	realtors   port.RealtorRepositoryPort
}

func NewComputeDealCommissionsUseCase(
	deals port.DealRepositoryPort,
	offers port.OfferRepositoryPort,
	demands port.DemandRepositoryPort,
	properties port.PropertyRepositoryPort,
	realtors port.RealtorRepositoryPort,
) *ComputeDealCommissionsUseCase {
	return &ComputeDealCommissionsUseCase{
		deals:      deals,
		offers:     offers,
		demands:    demands,
		properties: properties,
		realtors:   realtors,
	}
}

func (uc *ComputeDealCommissionsUseCase) Execute(ctx context.Context, dealID uuid.UUID) (domain.CommissionBreakdown, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ComputeDealCommissions",
		"deal_id":  dealID,
	})

	ucLogger.Info("Use case started", nil)

	deal, err := uc.deals.FindByID(ctx, dealID)
	if err != nil {
		ucLogger.Error("Failed to load deal", err, nil)
		return domain.CommissionBreakdown{}, err
	}
	if deal == nil {
		ucLogger.Warn("Deal not found, returning zero breakdown", nil)
		return domain.CommissionBreakdown{}, nil
	}

	return uc.forDeal(ctx, ucLogger, deal)
}

// forDeal считает распределение для уже загруженной сделки.
// Используется и из CreateDealUseCase для публикации события.
func (uc *ComputeDealCommissionsUseCase) forDeal(ctx context.Context, ucLogger port.LoggerPort, deal *domain.Deal) (domain.CommissionBreakdown, error) {
	offer, err := uc.offers.FindByID(ctx, deal.OfferID)
	if err != nil {
		ucLogger.Error("Failed to load offer", err, nil)
		return domain.CommissionBreakdown{}, err
	}
	if offer == nil {
		ucLogger.Warn("Deal offer not found, returning zero breakdown", nil)
		return domain.CommissionBreakdown{}, nil
	}

	property, err := uc.properties.FindByID(ctx, offer.PropertyID)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return domain.CommissionBreakdown{}, err
	}

	sellerRealtor, err := uc.findRealtor(ctx, offer.RealtorID)
	if err != nil {
		ucLogger.Error("Failed to load seller realtor", err, nil)
		return domain.CommissionBreakdown{}, err
	}

	var buyerRealtor *domain.Realtor
	demand, err := uc.demands.FindByID(ctx, deal.DemandID)
	if err != nil {
		ucLogger.Error("Failed to load demand", err, nil)
		return domain.CommissionBreakdown{}, err
	}
	if demand != nil {
		buyerRealtor, err = uc.findRealtor(ctx, demand.RealtorID)
		if err != nil {
			ucLogger.Error("Failed to load buyer realtor", err, nil)
			return domain.CommissionBreakdown{}, err
		}
	}

	breakdown := domain.DealCommissions(offer, property, sellerRealtor, buyerRealtor)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"seller_commission": breakdown.SellerCommission,
		"buyer_commission":  breakdown.BuyerCommission,
		"company_share":     breakdown.CompanyShare,
	})
	return breakdown, nil
}

func (uc *ComputeDealCommissionsUseCase) findRealtor(ctx context.Context, id uuid.UUID) (*domain.Realtor, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	return uc.realtors.FindByID(ctx, id)
}
