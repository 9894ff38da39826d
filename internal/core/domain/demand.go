package domain

import (
	"github.com/google/uuid"
)

// Demand - потребность клиента: критерии поиска, выраженные диапазонами.
// Адресные поля - точные фильтры: заданное непустое значение требует
// точного совпадения с объектом, nil не накладывает ограничений.
// Заполнен ровно один блок диапазонов, соответствующий PropertyType.
type Demand struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	RealtorID uuid.UUID

	PropertyType PropertyType

	City            *string
	Street          *string
	HouseNumber     *string
	ApartmentNumber *string

	MinPrice int64
	MaxPrice int64

	MinRentalPeriod int
	MaxRentalPeriod int

	Apartment *ApartmentDemand
	House     *HouseDemand
	Land      *LandDemand
}

// ApartmentDemand - диапазоны для квартир.
type ApartmentDemand struct {
	MinArea  *float64
	MaxArea  *float64
	MinRooms *int
	MaxRooms *int
	MinFloor *int
	MaxFloor *int
}

// HouseDemand - диапазоны для домов.
type HouseDemand struct {
	MinArea   *float64
	MaxArea   *float64
	MinRooms  *int
	MaxRooms  *int
	MinFloors *int
	MaxFloors *int
}

// LandDemand - диапазоны для участков.
type LandDemand struct {
	MinArea *float64
	MaxArea *float64
}

// Validate проверяет обязательные диапазоны цены и срока, а также
// согласованность всех заданных пар min/max.
func (d *Demand) Validate() error {
	if !d.PropertyType.IsValid() {
		return ErrInvalidPropertyType
	}
	if d.MinPrice <= 0 || d.MaxPrice <= 0 || d.MaxPrice < d.MinPrice {
		return ErrInvalidPriceRange
	}
	if d.MinRentalPeriod <= 0 || d.MaxRentalPeriod <= 0 || d.MaxRentalPeriod < d.MinRentalPeriod {
		return ErrInvalidRentalPeriodRange
	}
	if d.Apartment != nil {
		if !floatRangeOK(d.Apartment.MinArea, d.Apartment.MaxArea) ||
			!intRangeOK(d.Apartment.MinRooms, d.Apartment.MaxRooms) ||
			!intRangeOK(d.Apartment.MinFloor, d.Apartment.MaxFloor) {
			return ErrInvalidRange
		}
	}
	if d.House != nil {
		if !floatRangeOK(d.House.MinArea, d.House.MaxArea) ||
			!intRangeOK(d.House.MinRooms, d.House.MaxRooms) ||
			!intRangeOK(d.House.MinFloors, d.House.MaxFloors) {
			return ErrInvalidRange
		}
	}
	if d.Land != nil {
		if !floatRangeOK(d.Land.MinArea, d.Land.MaxArea) {
			return ErrInvalidRange
		}
	}
	return nil
}

func intRangeOK(min, max *int) bool {
	if min == nil || max == nil {
		return true
	}
	return *max >= *min
}

func floatRangeOK(min, max *float64) bool {
	if min == nil || max == nil {
		return true
	}
	return *max >= *min
}
