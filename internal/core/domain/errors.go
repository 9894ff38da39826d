package domain

import "errors"

// Ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrRealtorNotFound  = errors.New("realtor not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrOfferNotFound    = errors.New("offer not found")
	ErrDemandNotFound   = errors.New("demand not found")
	ErrDealNotFound     = errors.New("deal not found")

	// Защита ссылочной целостности при удалении.
	ErrRealtorInUse  = errors.New("realtor has linked offers or demands")
	ErrClientInUse   = errors.New("client has linked offers or demands")
	ErrPropertyInUse = errors.New("property has linked offers")
	ErrOfferInDeal   = errors.New("offer is referenced by a deal")
	ErrDemandInDeal  = errors.New("demand is referenced by a deal")

	// Сделка возможна только для еще не удовлетворенных сторон.
	ErrOfferSatisfied  = errors.New("offer is already satisfied by a deal")
	ErrDemandSatisfied = errors.New("demand is already satisfied by a deal")

	// Ошибки валидации входных данных.
	ErrRealtorNameRequired      = errors.New("realtor surname, name and patronymic are required")
	ErrInvalidCommissionShare   = errors.New("commission share must be between 0 and 100")
	ErrClientContactRequired    = errors.New("client phone or email is required")
	ErrInvalidEmail             = errors.New("invalid email format")
	ErrInvalidPropertyType      = errors.New("invalid property type")
	ErrInvalidCoordinates       = errors.New("coordinates are out of range")
	ErrInvalidPrice             = errors.New("price must be positive")
	ErrInvalidRentalPeriod      = errors.New("rental period must be positive")
	ErrInvalidPriceRange        = errors.New("invalid price range")
	ErrInvalidRentalPeriodRange = errors.New("invalid rental period range")
	ErrInvalidRange             = errors.New("range max must be greater or equal to min")
)
