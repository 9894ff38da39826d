package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

type dealFixture struct {
	deals      *fakeDealRepo
	demands    *fakeDemandRepo
	offers     *fakeOfferRepo
	properties *fakePropertyRepo
	realtors   *fakeRealtorRepo
	events     *fakeDealEvents

	demand *domain.Demand
	offer  *domain.Offer
}

func newDealFixture() *dealFixture {
	ctx := context.Background()
	f := &dealFixture{
		deals:      newFakeDealRepo(),
		demands:    newFakeDemandRepo(),
		offers:     &fakeOfferRepo{},
		properties: newFakePropertyRepo(),
		realtors:   newFakeRealtorRepo(),
		events:     &fakeDealEvents{},
	}

	property := &domain.Property{ID: uuid.New(), Type: domain.PropertyTypeApartment}
	f.properties.Create(ctx, property)

	f.offer = &domain.Offer{
		ID: uuid.New(), ClientID: uuid.New(), RealtorID: uuid.New(),
		PropertyID: property.ID, Price: 1000, RentalPeriod: 12,
	}
	f.offers.Create(ctx, f.offer)

	f.demand = &domain.Demand{
		ID: uuid.New(), ClientID: uuid.New(), RealtorID: uuid.New(),
		PropertyType: domain.PropertyTypeApartment,
		MinPrice:     500, MaxPrice: 1500, MinRentalPeriod: 6, MaxRentalPeriod: 24,
	}
	f.demands.Create(ctx, f.demand)

	return f
}

func (f *dealFixture) useCase() *CreateDealUseCase {
	commissions := NewComputeDealCommissionsUseCase(f.deals, f.offers, f.demands, f.properties, f.realtors)
	return NewCreateDealUseCase(f.deals, f.demands, f.offers, commissions, f.events)
}

func TestCreateDeal(t *testing.T) {
	f := newDealFixture()

	id, err := f.useCase().Execute(context.Background(), f.demand.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected non-nil deal id")
	}

	deal, _ := f.deals.FindByID(context.Background(), id)
	if deal == nil {
		t.Fatal("deal was not persisted")
	}
	if deal.DemandID != f.demand.ID || deal.OfferID != f.offer.ID {
		t.Errorf("deal references wrong records: %+v", deal)
	}
}

func TestCreateDealPublishesEvent(t *testing.T) {
	f := newDealFixture()

	id, err := f.useCase().Execute(context.Background(), f.demand.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.events.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(f.events.published))
	}
	evt := f.events.published[0]
	if evt.deal.ID != id {
		t.Errorf("event carries wrong deal id: %v", evt.deal.ID)
	}
	// Цена 1000, квартира: комиссия продавца 4000.
	if evt.commissions.SellerCommission != 4000 {
		t.Errorf("event carries wrong commissions: %+v", evt.commissions)
	}
}

func TestCreateDealPublishFailureDoesNotFail(t *testing.T) {
	f := newDealFixture()
	f.events.publishErr = errors.New("broker is down")

	id, err := f.useCase().Execute(context.Background(), f.demand.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("expected deal creation to survive publish failure, got %v", err)
	}

	deal, _ := f.deals.FindByID(context.Background(), id)
	if deal == nil {
		t.Fatal("deal was not persisted despite publish failure")
	}
}

func TestCreateDealWithoutEventsPort(t *testing.T) {
	f := newDealFixture()
	commissions := NewComputeDealCommissionsUseCase(f.deals, f.offers, f.demands, f.properties, f.realtors)
	uc := NewCreateDealUseCase(f.deals, f.demands, f.offers, commissions, nil)

	if _, err := uc.Execute(context.Background(), f.demand.ID, f.offer.ID); err != nil {
		t.Fatalf("unexpected error without events port: %v", err)
	}
}

func TestCreateDealDemandNotFound(t *testing.T) {
	f := newDealFixture()

	_, err := f.useCase().Execute(context.Background(), uuid.New(), f.offer.ID)
	if !errors.Is(err, domain.ErrDemandNotFound) {
		t.Fatalf("expected ErrDemandNotFound, got %v", err)
	}
}

func TestCreateDealOfferNotFound(t *testing.T) {
	f := newDealFixture()

	_, err := f.useCase().Execute(context.Background(), f.demand.ID, uuid.New())
	if !errors.Is(err, domain.ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestCreateDealDemandAlreadySatisfied(t *testing.T) {
	f := newDealFixture()
	f.deals.Create(context.Background(), domain.NewDeal(f.demand.ID, uuid.New()))

	_, err := f.useCase().Execute(context.Background(), f.demand.ID, f.offer.ID)
	if !errors.Is(err, domain.ErrDemandSatisfied) {
		t.Fatalf("expected ErrDemandSatisfied, got %v", err)
	}
}

func TestCreateDealOfferAlreadySatisfied(t *testing.T) {
	f := newDealFixture()
	f.deals.Create(context.Background(), domain.NewDeal(uuid.New(), f.offer.ID))

	_, err := f.useCase().Execute(context.Background(), f.demand.ID, f.offer.ID)
	if !errors.Is(err, domain.ErrOfferSatisfied) {
		t.Fatalf("expected ErrOfferSatisfied, got %v", err)
	}
}
