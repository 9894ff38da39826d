package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

type commissionsFixture struct {
	deals      *fakeDealRepo
	offers     *fakeOfferRepo
	demands    *fakeDemandRepo
	properties *fakePropertyRepo
	realtors   *fakeRealtorRepo
}

func newCommissionsFixture() *commissionsFixture {
	return &commissionsFixture{
		deals:      newFakeDealRepo(),
		offers:     &fakeOfferRepo{},
		demands:    newFakeDemandRepo(),
		properties: newFakePropertyRepo(),
		realtors:   newFakeRealtorRepo(),
	}
}

func (f *commissionsFixture) useCase() *ComputeDealCommissionsUseCase {
	return NewComputeDealCommissionsUseCase(f.deals, f.offers, f.demands, f.properties, f.realtors)
}

// addDeal собирает полный граф записей сделки и возвращает ее id.
func (f *commissionsFixture) addDeal(price int64, sellerShare, buyerShare *float64) uuid.UUID {
	ctx := context.Background()

	seller := &domain.Realtor{ID: uuid.New(), Surname: "s", Name: "s", Patronymic: "s", CommissionShare: sellerShare}
	buyer := &domain.Realtor{ID: uuid.New(), Surname: "b", Name: "b", Patronymic: "b", CommissionShare: buyerShare}
	f.realtors.Create(ctx, seller)
	f.realtors.Create(ctx, buyer)

	property := &domain.Property{ID: uuid.New(), Type: domain.PropertyTypeApartment}
	f.properties.Create(ctx, property)

	offer := &domain.Offer{ID: uuid.New(), ClientID: uuid.New(), RealtorID: seller.ID, PropertyID: property.ID, Price: price, RentalPeriod: 12}
	f.offers.Create(ctx, offer)

	demand := &domain.Demand{
		ID: uuid.New(), ClientID: uuid.New(), RealtorID: buyer.ID,
		PropertyType: domain.PropertyTypeApartment,
		MinPrice:     1, MaxPrice: price, MinRentalPeriod: 1, MaxRentalPeriod: 99,
	}
	f.demands.Create(ctx, demand)

	deal := domain.NewDeal(demand.ID, offer.ID)
	f.deals.Create(ctx, deal)
	return deal.ID
}

func TestComputeDealCommissions(t *testing.T) {
	f := newCommissionsFixture()
	dealID := f.addDeal(10000, f64Ptr(50), f64Ptr(20))

	got, err := f.useCase().Execute(context.Background(), dealID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := domain.CommissionBreakdown{
		SellerCommission:   13000,
		BuyerCommission:    1000,
		SellerRealtorShare: 6500,
		BuyerRealtorShare:  200,
		CompanyShare:       7300,
	}
	if got != expected {
		t.Errorf("breakdown = %+v, expected %+v", got, expected)
	}
}

func TestComputeDealCommissionsDefaultShares(t *testing.T) {
	f := newCommissionsFixture()
	// Доли не заданы - оба риэлтора получают умолчание 45%.
	dealID := f.addDeal(10000, nil, nil)

	got, err := f.useCase().Execute(context.Background(), dealID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.SellerRealtorShare != 5850 || got.BuyerRealtorShare != 450 {
		t.Errorf("expected default 45%% shares (5850/450), got %v/%v", got.SellerRealtorShare, got.BuyerRealtorShare)
	}
}

func TestComputeDealCommissionsZeroShareFallsBack(t *testing.T) {
	f := newCommissionsFixture()
	dealID := f.addDeal(10000, f64Ptr(0), f64Ptr(0))

	got, err := f.useCase().Execute(context.Background(), dealID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.SellerRealtorShare != 5850 || got.BuyerRealtorShare != 450 {
		t.Errorf("expected zero share to fall back to default, got %v/%v", got.SellerRealtorShare, got.BuyerRealtorShare)
	}
}

func TestComputeDealCommissionsMissingRealtors(t *testing.T) {
	f := newCommissionsFixture()
	dealID := f.addDeal(10000, nil, nil)

	// Риэлторы удалены после создания сделки.
	f.realtors.realtors = map[uuid.UUID]*domain.Realtor{}

	got, err := f.useCase().Execute(context.Background(), dealID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Отсутствующий риэлтор получает ту же долю, что и риэлтор
	// без заданной доли.
	if got.SellerRealtorShare != 5850 || got.BuyerRealtorShare != 450 {
		t.Errorf("expected missing realtor fallback shares, got %v/%v", got.SellerRealtorShare, got.BuyerRealtorShare)
	}
}

func TestComputeDealCommissionsDealNotFound(t *testing.T) {
	f := newCommissionsFixture()

	got, err := f.useCase().Execute(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected zero breakdown without error, got %v", err)
	}
	if got != (domain.CommissionBreakdown{}) {
		t.Errorf("expected zero breakdown for missing deal, got %+v", got)
	}
}

func TestComputeDealCommissionsOfferGone(t *testing.T) {
	f := newCommissionsFixture()
	dealID := f.addDeal(10000, nil, nil)
	f.offers.offers = nil

	got, err := f.useCase().Execute(context.Background(), dealID)
	if err != nil {
		t.Fatalf("expected zero breakdown without error, got %v", err)
	}
	if got != (domain.CommissionBreakdown{}) {
		t.Errorf("expected zero breakdown when deal offer is gone, got %+v", got)
	}
}
