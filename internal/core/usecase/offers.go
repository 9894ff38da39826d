package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreateOfferUseCase struct {
	offers     port.OfferRepositoryPort
	clients    port.ClientRepositoryPort
	realtors   port.RealtorRepositoryPort
	properties port.PropertyRepositoryPort
}

func NewCreateOfferUseCase(
	offers port.OfferRepositoryPort,
	clients port.ClientRepositoryPort,
	realtors port.RealtorRepositoryPort,
	properties port.PropertyRepositoryPort,
) *CreateOfferUseCase {
	return &CreateOfferUseCase{offers: offers, clients: clients, realtors: realtors, properties: properties}
}

func (uc *CreateOfferUseCase) Execute(ctx context.Context, offer *domain.Offer) (uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateOffer"})

	if err := offer.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return uuid.Nil, err
	}
	if err := uc.checkReferences(ctx, offer); err != nil {
		ucLogger.Warn("Reference check failed", port.Fields{"error": err.Error()})
		return uuid.Nil, err
	}
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}

	if err := uc.offers.Create(ctx, offer); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return uuid.Nil, err
	}
	ucLogger.Info("Offer created", port.Fields{"offer_id": offer.ID})
	return offer.ID, nil
}

func (uc *CreateOfferUseCase) checkReferences(ctx context.Context, offer *domain.Offer) error {
	return checkOfferReferences(ctx, offer, uc.clients, uc.realtors, uc.properties)
}

// checkOfferReferences проверяет существование клиента, риэлтора
// и объекта, на которые ссылается предложение.
func checkOfferReferences(
	ctx context.Context,
	offer *domain.Offer,
	clients port.ClientRepositoryPort,
	realtors port.RealtorRepositoryPort,
	properties port.PropertyRepositoryPort,
) error {
	client, err := clients.FindByID(ctx, offer.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}

	realtor, err := realtors.FindByID(ctx, offer.RealtorID)
	if err != nil {
		return err
	}
	if realtor == nil {
		return domain.ErrRealtorNotFound
	}

	property, err := properties.FindByID(ctx, offer.PropertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return domain.ErrPropertyNotFound
	}
	return nil
}

type UpdateOfferUseCase struct {
	offers     port.OfferRepositoryPort
	clients    port.ClientRepositoryPort
	realtors   port.RealtorRepositoryPort
	properties port.PropertyRepositoryPort
}

func NewUpdateOfferUseCase(
	offers port.OfferRepositoryPort,
	clients port.ClientRepositoryPort,
	realtors port.RealtorRepositoryPort,
	properties port.PropertyRepositoryPort,
) *UpdateOfferUseCase {
	return &UpdateOfferUseCase{offers: offers, clients: clients, realtors: realtors, properties: properties}
}

func (uc *UpdateOfferUseCase) Execute(ctx context.Context, offer *domain.Offer) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateOffer", "offer_id": offer.ID})

	if err := offer.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.offers.FindByID(ctx, offer.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrOfferNotFound
	}

	if err := checkOfferReferences(ctx, offer, uc.clients, uc.realtors, uc.properties); err != nil {
		ucLogger.Warn("Reference check failed", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.offers.Update(ctx, offer); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Offer updated", nil)
	return nil
}

// DeleteOfferUseCase отказывает в удалении предложения, уже
// участвующего в сделке.
type DeleteOfferUseCase struct {
	offers port.OfferRepositoryPort
	deals  port.DealRepositoryPort
}

func NewDeleteOfferUseCase(offers port.OfferRepositoryPort, deals port.DealRepositoryPort) *DeleteOfferUseCase {
	return &DeleteOfferUseCase{offers: offers, deals: deals}
}

func (uc *DeleteOfferUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteOffer", "offer_id": id})

	existing, err := uc.offers.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrOfferNotFound
	}

	inDeal, err := uc.deals.ExistsForOffer(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if inDeal {
		ucLogger.Warn("Offer is referenced by a deal, refusing to delete", nil)
		return domain.ErrOfferInDeal
	}

	if err := uc.offers.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Offer deleted", nil)
	return nil
}

type GetOffersUseCase struct {
	offers port.OfferRepositoryPort
}

func NewGetOffersUseCase(offers port.OfferRepositoryPort) *GetOffersUseCase {
	return &GetOffersUseCase{offers: offers}
}

func (uc *GetOffersUseCase) Execute(ctx context.Context) ([]domain.Offer, error) {
	return uc.offers.List(ctx)
}

type GetOfferByIDUseCase struct {
	offers port.OfferRepositoryPort
}

func NewGetOfferByIDUseCase(offers port.OfferRepositoryPort) *GetOfferByIDUseCase {
	return &GetOfferByIDUseCase{offers: offers}
}

func (uc *GetOfferByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	offer, err := uc.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}
