package domain

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string   { return &s }
func intPtr(v int) *int         { return &v }
func f64Ptr(v float64) *float64 { return &v }

func testDemand() *Demand {
	return &Demand{
		ID:              uuid.New(),
		ClientID:        uuid.New(),
		RealtorID:       uuid.New(),
		PropertyType:    PropertyTypeApartment,
		MinPrice:        500,
		MaxPrice:        1500,
		MinRentalPeriod: 6,
		MaxRentalPeriod: 24,
	}
}

func testProperty() *Property {
	return &Property{
		ID:   uuid.New(),
		Type: PropertyTypeApartment,
	}
}

func testOffer(propertyID uuid.UUID) *Offer {
	return &Offer{
		ID:           uuid.New(),
		ClientID:     uuid.New(),
		RealtorID:    uuid.New(),
		PropertyID:   propertyID,
		Price:        1000,
		RentalPeriod: 12,
	}
}

func TestMatchesPropertyTypeMismatch(t *testing.T) {
	demand := testDemand()
	property := testProperty()
	property.Type = PropertyTypeHouse
	offer := testOffer(property.ID)

	if Matches(demand, property, offer) {
		t.Error("expected mismatch for different property types")
	}
}

func TestMatchesAddressFilters(t *testing.T) {
	tests := []struct {
		name     string
		want     *string
		got      *string
		expected bool
	}{
		{"no filter passes anything", nil, strPtr("Минск"), true},
		{"empty filter passes anything", strPtr(""), nil, true},
		{"exact match", strPtr("Минск"), strPtr("Минск"), true},
		{"different value", strPtr("Минск"), strPtr("Брест"), false},
		{"filter set, property has no value", strPtr("Минск"), nil, false},
		{"no case folding", strPtr("Минск"), strPtr("минск"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demand := testDemand()
			demand.City = tt.want
			property := testProperty()
			property.City = tt.got
			offer := testOffer(property.ID)

			if got := Matches(demand, property, offer); got != tt.expected {
				t.Errorf("Matches = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMatchesPriceAndPeriodBandsInclusive(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		period   int
		expected bool
	}{
		{"inside both bands", 1000, 12, true},
		{"price at min", 500, 12, true},
		{"price at max", 1500, 12, true},
		{"price below min", 499, 12, false},
		{"price above max", 1501, 12, false},
		{"period at min", 1000, 6, true},
		{"period at max", 1000, 24, true},
		{"period below min", 1000, 5, false},
		{"period above max", 1000, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demand := testDemand()
			property := testProperty()
			offer := testOffer(property.ID)
			offer.Price = tt.price
			offer.RentalPeriod = tt.period

			if got := Matches(demand, property, offer); got != tt.expected {
				t.Errorf("Matches = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMatchesApartmentRanges(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		value    *int
		expected bool
	}{
		{"both bounds, value inside", intPtr(1), intPtr(3), intPtr(2), true},
		{"both bounds, value at min", intPtr(1), intPtr(3), intPtr(1), true},
		{"both bounds, value at max", intPtr(1), intPtr(3), intPtr(3), true},
		{"both bounds, value above", intPtr(1), intPtr(3), intPtr(4), false},
		{"min only, value above", intPtr(2), nil, intPtr(5), true},
		{"min only, value below", intPtr(2), nil, intPtr(1), false},
		// Верхняя граница без нижней не срабатывает - проверяем,
		// что это поведение закреплено.
		{"max only is ignored", nil, intPtr(3), intPtr(10), true},
		{"value missing passes", intPtr(1), intPtr(3), nil, true},
		{"no bounds passes", nil, nil, intPtr(7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demand := testDemand()
			demand.Apartment = &ApartmentDemand{MinRooms: tt.min, MaxRooms: tt.max}
			property := testProperty()
			property.Apartment = &ApartmentDetails{Rooms: tt.value}
			offer := testOffer(property.ID)

			if got := Matches(demand, property, offer); got != tt.expected {
				t.Errorf("Matches = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMatchesMissingDetailBlocks(t *testing.T) {
	// Нет блока диапазонов у потребности или блока деталей у объекта -
	// детальные критерии не применяются.
	demand := testDemand()
	property := testProperty()
	offer := testOffer(property.ID)

	if !Matches(demand, property, offer) {
		t.Error("expected match when demand has no range block")
	}

	demand.Apartment = &ApartmentDemand{MinRooms: intPtr(10)}
	property.Apartment = nil
	if !Matches(demand, property, offer) {
		t.Error("expected match when property has no details block")
	}
}

func TestMatchesHouseAndLandRanges(t *testing.T) {
	demand := testDemand()
	demand.PropertyType = PropertyTypeHouse
	demand.House = &HouseDemand{MinArea: f64Ptr(100), MaxArea: f64Ptr(200)}
	property := testProperty()
	property.Type = PropertyTypeHouse
	property.House = &HouseDetails{Area: f64Ptr(150)}
	offer := testOffer(property.ID)

	if !Matches(demand, property, offer) {
		t.Error("expected house within area range to match")
	}

	property.House.Area = f64Ptr(250)
	if Matches(demand, property, offer) {
		t.Error("expected house above area range to be rejected")
	}

	demand.PropertyType = PropertyTypeLand
	demand.Land = &LandDemand{MinArea: f64Ptr(500)}
	property.Type = PropertyTypeLand
	property.Land = &LandDetails{Area: f64Ptr(600)}
	if !Matches(demand, property, offer) {
		t.Error("expected land above min area to match")
	}

	property.Land.Area = f64Ptr(400)
	if Matches(demand, property, offer) {
		t.Error("expected land below min area to be rejected")
	}
}

func TestFilterMatchingOffers(t *testing.T) {
	demand := testDemand()

	matchingProp := testProperty()
	tooExpensiveProp := testProperty()
	satisfiedProp := testProperty()
	orphanProp := uuid.New() // объекта с таким id нет

	properties := map[uuid.UUID]*Property{
		matchingProp.ID:     matchingProp,
		tooExpensiveProp.ID: tooExpensiveProp,
		satisfiedProp.ID:    satisfiedProp,
	}
	lookup := func(id uuid.UUID) *Property { return properties[id] }

	good := testOffer(matchingProp.ID)
	expensive := testOffer(tooExpensiveProp.ID)
	expensive.Price = 99999
	satisfied := testOffer(satisfiedProp.ID)
	orphan := testOffer(orphanProp)
	secondGood := testOffer(matchingProp.ID)

	candidates := []Offer{*good, *expensive, *satisfied, *orphan, *secondGood}
	satisfiedIDs := map[uuid.UUID]struct{}{satisfied.ID: {}}

	result := FilterMatchingOffers(demand, candidates, lookup, satisfiedIDs)

	if len(result) != 2 {
		t.Fatalf("expected 2 matching offers, got %d", len(result))
	}
	// Порядок кандидатов сохраняется.
	if result[0].ID != good.ID || result[1].ID != secondGood.ID {
		t.Errorf("expected offers in candidate order, got %v then %v", result[0].ID, result[1].ID)
	}
}

func TestFilterMatchingOffersEmptyCandidates(t *testing.T) {
	demand := testDemand()
	result := FilterMatchingOffers(demand, nil, func(uuid.UUID) *Property { return nil }, nil)
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d offers", len(result))
	}
}
