package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestCommissionForSeller(t *testing.T) {
	tests := []struct {
		name         string
		propertyType PropertyType
		monthlyPrice float64
		expected     float64
	}{
		{"apartment", PropertyTypeApartment, 10000, 13000},
		{"land uses yearly price", PropertyTypeLand, 10000, 11000},
		{"house", PropertyTypeHouse, 10000, 7500},
		{"unknown type yields zero", PropertyType("garage"), 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommissionForSeller(tt.propertyType, tt.monthlyPrice)
			if got != tt.expected {
				t.Errorf("CommissionForSeller(%s, %v) = %v, expected %v", tt.propertyType, tt.monthlyPrice, got, tt.expected)
			}
		})
	}
}

func TestCommissionForBuyer(t *testing.T) {
	if got := CommissionForBuyer(10000); got != 1000 {
		t.Errorf("CommissionForBuyer(10000) = %v, expected 1000", got)
	}
}

func TestShareFraction(t *testing.T) {
	tests := []struct {
		name     string
		share    *float64
		expected float64
	}{
		{"explicit share", f64Ptr(30), 0.30},
		{"unset share falls back to default", nil, 0.45},
		// Нулевая доля трактуется как незаданная, а не как 0%.
		{"zero share falls back to default", f64Ptr(0), 0.45},
		{"full share", f64Ptr(100), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Realtor{ID: uuid.New(), Surname: "a", Name: "b", Patronymic: "c", CommissionShare: tt.share}
			if got := r.ShareFraction(); got != tt.expected {
				t.Errorf("ShareFraction() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDealCommissionsApartmentWithDefaultShares(t *testing.T) {
	offer := &Offer{ID: uuid.New(), Price: 10000, RentalPeriod: 12}
	property := &Property{ID: uuid.New(), Type: PropertyTypeApartment}
	seller := &Realtor{ID: uuid.New(), Surname: "a", Name: "b", Patronymic: "c"}
	buyer := &Realtor{ID: uuid.New(), Surname: "d", Name: "e", Patronymic: "f"}

	got := DealCommissions(offer, property, seller, buyer)

	expected := CommissionBreakdown{
		SellerCommission:   13000,
		BuyerCommission:    1000,
		SellerRealtorShare: 5850,
		BuyerRealtorShare:  450,
		CompanyShare:       7700,
	}
	if got != expected {
		t.Errorf("DealCommissions = %+v, expected %+v", got, expected)
	}
}

func TestDealCommissionsExplicitShares(t *testing.T) {
	offer := &Offer{ID: uuid.New(), Price: 1000, RentalPeriod: 12}
	property := &Property{ID: uuid.New(), Type: PropertyTypeHouse}
	seller := &Realtor{ID: uuid.New(), Surname: "a", Name: "b", Patronymic: "c", CommissionShare: f64Ptr(50)}
	buyer := &Realtor{ID: uuid.New(), Surname: "d", Name: "e", Patronymic: "f", CommissionShare: f64Ptr(20)}

	got := DealCommissions(offer, property, seller, buyer)

	// seller: 5000 + 1000*0.25 = 5250, доля 50% = 2625
	// buyer: 100, доля 20% = 20
	expected := CommissionBreakdown{
		SellerCommission:   5250,
		BuyerCommission:    100,
		SellerRealtorShare: 2625,
		BuyerRealtorShare:  20,
		CompanyShare:       2705,
	}
	if got != expected {
		t.Errorf("DealCommissions = %+v, expected %+v", got, expected)
	}
}

func TestDealCommissionsMissingRealtors(t *testing.T) {
	offer := &Offer{ID: uuid.New(), Price: 10000, RentalPeriod: 12}
	property := &Property{ID: uuid.New(), Type: PropertyTypeApartment}

	got := DealCommissions(offer, property, nil, nil)

	// Не найденный риэлтор получает ту же долю 45%, что и риэлтор
	// без заданной доли.
	expected := CommissionBreakdown{
		SellerCommission:   13000,
		BuyerCommission:    1000,
		SellerRealtorShare: 5850,
		BuyerRealtorShare:  450,
		CompanyShare:       7700,
	}
	if got != expected {
		t.Errorf("DealCommissions = %+v, expected %+v", got, expected)
	}
}

func TestDealCommissionsNilOffer(t *testing.T) {
	got := DealCommissions(nil, &Property{Type: PropertyTypeLand}, nil, nil)
	if got != (CommissionBreakdown{}) {
		t.Errorf("expected zero breakdown for nil offer, got %+v", got)
	}
}

func TestDealCommissionsNilPropertyDefaultsToApartment(t *testing.T) {
	offer := &Offer{ID: uuid.New(), Price: 1000, RentalPeriod: 12}

	got := DealCommissions(offer, nil, nil, nil)

	if got.SellerCommission != 4000 {
		t.Errorf("expected apartment formula for nil property (4000), got %v", got.SellerCommission)
	}
}

func TestDealCommissionsRounding(t *testing.T) {
	offer := &Offer{ID: uuid.New(), Price: 333, RentalPeriod: 12}
	property := &Property{ID: uuid.New(), Type: PropertyTypeApartment}
	seller := &Realtor{ID: uuid.New(), Surname: "a", Name: "b", Patronymic: "c", CommissionShare: f64Ptr(33.33)}

	got := DealCommissions(offer, property, seller, nil)

	// seller: 3333, доля 33.33% = 1110.8889 -> 1110.89
	if got.SellerRealtorShare != 1110.89 {
		t.Errorf("expected share rounded to 1110.89, got %v", got.SellerRealtorShare)
	}
	// buyer: 33.3, доля 45% = 14.985 -> 14.99 (половина - от нуля)
	if got.BuyerRealtorShare != 14.99 {
		t.Errorf("expected share rounded to 14.99, got %v", got.BuyerRealtorShare)
	}
}
