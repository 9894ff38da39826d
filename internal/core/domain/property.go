package domain

import (
	"github.com/google/uuid"
)

// PropertyType - тип объекта недвижимости. Определяет, какой блок
// деталей заполнен и по какой формуле считается комиссия продавца.
type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeLand      PropertyType = "land"
)

// IsValid проверяет, что тип входит в список поддерживаемых.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeLand:
		return true
	}
	return false
}

// Property - агрегирующая структура для объекта недвижимости.
// Заполнен ровно один из блоков деталей, соответствующий Type.
type Property struct {
	ID   uuid.UUID
	Type PropertyType

	// Адрес. nil означает "не указано".
	City            *string
	Street          *string
	HouseNumber     *string
	ApartmentNumber *string

	// Координаты: широта [-90, 90], долгота [-180, 180].
	Latitude  *float64
	Longitude *float64

	Apartment *ApartmentDetails
	House     *HouseDetails
	Land      *LandDetails
}

// ApartmentDetails - детали для типа "apartment".
type ApartmentDetails struct {
	Floor *int
	Rooms *int
	Area  *float64
}

// HouseDetails - детали для типа "house".
type HouseDetails struct {
	Floors *int
	Rooms  *int
	Area   *float64
}

// LandDetails - детали для типа "land".
type LandDetails struct {
	Area *float64
}

// Validate проверяет инварианты объекта перед сохранением.
func (p *Property) Validate() error {
	if !p.Type.IsValid() {
		return ErrInvalidPropertyType
	}
	if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90) {
		return ErrInvalidCoordinates
	}
	if p.Longitude != nil && (*p.Longitude < -180 || *p.Longitude > 180) {
		return ErrInvalidCoordinates
	}
	return nil
}
