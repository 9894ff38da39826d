package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

type offerFixture struct {
	offers     *fakeOfferRepo
	clients    *fakeClientRepo
	realtors   *fakeRealtorRepo
	properties *fakePropertyRepo
	deals      *fakeDealRepo

	client   *domain.Client
	realtor  *domain.Realtor
	property *domain.Property
}

func newOfferFixture() *offerFixture {
	ctx := context.Background()
	f := &offerFixture{
		offers:     &fakeOfferRepo{},
		clients:    newFakeClientRepo(),
		realtors:   newFakeRealtorRepo(),
		properties: newFakePropertyRepo(),
		deals:      newFakeDealRepo(),
	}

	phone := "+375291112233"
	f.client = &domain.Client{ID: uuid.New(), Phone: &phone}
	f.clients.Create(ctx, f.client)

	f.realtor = &domain.Realtor{ID: uuid.New(), Surname: "a", Name: "b", Patronymic: "c"}
	f.realtors.Create(ctx, f.realtor)

	f.property = &domain.Property{ID: uuid.New(), Type: domain.PropertyTypeApartment}
	f.properties.Create(ctx, f.property)

	return f
}

func (f *offerFixture) validOffer() *domain.Offer {
	return &domain.Offer{
		ClientID:     f.client.ID,
		RealtorID:    f.realtor.ID,
		PropertyID:   f.property.ID,
		Price:        1000,
		RentalPeriod: 12,
	}
}

func TestCreateOffer(t *testing.T) {
	f := newOfferFixture()
	uc := NewCreateOfferUseCase(f.offers, f.clients, f.realtors, f.properties)

	id, err := uc.Execute(context.Background(), f.validOffer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected generated id")
	}
}

func TestCreateOfferValidation(t *testing.T) {
	f := newOfferFixture()
	uc := NewCreateOfferUseCase(f.offers, f.clients, f.realtors, f.properties)

	offer := f.validOffer()
	offer.Price = 0
	if _, err := uc.Execute(context.Background(), offer); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	offer = f.validOffer()
	offer.RentalPeriod = -1
	if _, err := uc.Execute(context.Background(), offer); !errors.Is(err, domain.ErrInvalidRentalPeriod) {
		t.Errorf("expected ErrInvalidRentalPeriod, got %v", err)
	}
}

func TestCreateOfferBrokenReferences(t *testing.T) {
	f := newOfferFixture()
	uc := NewCreateOfferUseCase(f.offers, f.clients, f.realtors, f.properties)

	offer := f.validOffer()
	offer.ClientID = uuid.New()
	if _, err := uc.Execute(context.Background(), offer); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}

	offer = f.validOffer()
	offer.RealtorID = uuid.New()
	if _, err := uc.Execute(context.Background(), offer); !errors.Is(err, domain.ErrRealtorNotFound) {
		t.Errorf("expected ErrRealtorNotFound, got %v", err)
	}

	offer = f.validOffer()
	offer.PropertyID = uuid.New()
	if _, err := uc.Execute(context.Background(), offer); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestDeleteOfferInDeal(t *testing.T) {
	f := newOfferFixture()
	offer := f.validOffer()
	offer.ID = uuid.New()
	f.offers.Create(context.Background(), offer)
	f.deals.Create(context.Background(), domain.NewDeal(uuid.New(), offer.ID))

	uc := NewDeleteOfferUseCase(f.offers, f.deals)
	if err := uc.Execute(context.Background(), offer.ID); !errors.Is(err, domain.ErrOfferInDeal) {
		t.Errorf("expected ErrOfferInDeal, got %v", err)
	}
}

func TestDeleteOffer(t *testing.T) {
	f := newOfferFixture()
	offer := f.validOffer()
	offer.ID = uuid.New()
	f.offers.Create(context.Background(), offer)

	uc := NewDeleteOfferUseCase(f.offers, f.deals)
	if err := uc.Execute(context.Background(), offer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := f.offers.FindByID(context.Background(), offer.ID); got != nil {
		t.Error("offer was not deleted")
	}
}
