package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

func matchingFixture() (*fakeDemandRepo, *fakeOfferRepo, *fakePropertyRepo, *fakeDealRepo, *domain.Demand) {
	demands := newFakeDemandRepo()
	offers := &fakeOfferRepo{}
	properties := newFakePropertyRepo()
	deals := newFakeDealRepo()

	demand := &domain.Demand{
		ID:              uuid.New(),
		ClientID:        uuid.New(),
		RealtorID:       uuid.New(),
		PropertyType:    domain.PropertyTypeApartment,
		MinPrice:        500,
		MaxPrice:        1500,
		MinRentalPeriod: 6,
		MaxRentalPeriod: 24,
	}
	demands.Create(context.Background(), demand)

	return demands, offers, properties, deals, demand
}

func addOffer(offers *fakeOfferRepo, properties *fakePropertyRepo, price int64) domain.Offer {
	property := &domain.Property{ID: uuid.New(), Type: domain.PropertyTypeApartment}
	properties.Create(context.Background(), property)

	offer := domain.Offer{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		RealtorID:    uuid.New(),
		PropertyID:   property.ID,
		Price:        price,
		RentalPeriod: 12,
	}
	offers.Create(context.Background(), &offer)
	return offer
}

func TestFindMatchingOffersReturnsCandidatesInOrder(t *testing.T) {
	demands, offers, properties, deals, demand := matchingFixture()

	first := addOffer(offers, properties, 1000)
	addOffer(offers, properties, 5000) // вне ценового диапазона
	third := addOffer(offers, properties, 700)

	uc := NewFindMatchingOffersUseCase(demands, offers, properties, deals)
	result, err := uc.Execute(context.Background(), demand.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(result))
	}
	if result[0].ID != first.ID || result[1].ID != third.ID {
		t.Errorf("expected storage order preserved, got %v then %v", result[0].ID, result[1].ID)
	}
}

func TestFindMatchingOffersSkipsSatisfied(t *testing.T) {
	demands, offers, properties, deals, demand := matchingFixture()

	taken := addOffer(offers, properties, 1000)
	free := addOffer(offers, properties, 1000)

	// Предложение taken уже закрыто другой сделкой.
	deals.Create(context.Background(), domain.NewDeal(uuid.New(), taken.ID))

	uc := NewFindMatchingOffersUseCase(demands, offers, properties, deals)
	result, err := uc.Execute(context.Background(), demand.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 1 || result[0].ID != free.ID {
		t.Fatalf("expected only the free offer, got %v", result)
	}
}

func TestFindMatchingOffersDemandNotFound(t *testing.T) {
	demands, offers, properties, deals, _ := matchingFixture()

	uc := NewFindMatchingOffersUseCase(demands, offers, properties, deals)
	_, err := uc.Execute(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrDemandNotFound) {
		t.Fatalf("expected ErrDemandNotFound, got %v", err)
	}
}

func TestFindMatchingOffersSkipsUnresolvableProperty(t *testing.T) {
	demands, offers, properties, deals, demand := matchingFixture()

	addOffer(offers, properties, 1000)
	orphan := domain.Offer{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		RealtorID:    uuid.New(),
		PropertyID:   uuid.New(), // объекта нет
		Price:        1000,
		RentalPeriod: 12,
	}
	offers.Create(context.Background(), &orphan)

	uc := NewFindMatchingOffersUseCase(demands, offers, properties, deals)
	result, err := uc.Execute(context.Background(), demand.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("expected orphan offer to be skipped, got %d offers", len(result))
	}
}

func TestFindMatchingOffersResultsActuallyMatch(t *testing.T) {
	demands, offers, properties, deals, demand := matchingFixture()

	for _, price := range []int64{400, 500, 1000, 1500, 1600} {
		addOffer(offers, properties, price)
	}

	uc := NewFindMatchingOffersUseCase(demands, offers, properties, deals)
	result, err := uc.Execute(context.Background(), demand.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Каждый возвращенный кандидат проходит доменную проверку.
	for _, offer := range result {
		property, _ := properties.FindByID(context.Background(), offer.PropertyID)
		if !domain.Matches(demand, property, &offer) {
			t.Errorf("offer %v returned but does not match", offer.ID)
		}
	}
	if len(result) != 3 {
		t.Errorf("expected 3 offers within the inclusive band, got %d", len(result))
	}
}
