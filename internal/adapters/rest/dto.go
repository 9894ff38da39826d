package rest

import (
	"time"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IDResponse - ответ на создание записи.
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// RealtorRequest - тело запроса создания/обновления риэлтора.
type RealtorRequest struct {
	Surname         string   `json:"surname"`
	Name            string   `json:"name"`
	Patronymic      string   `json:"patronymic"`
	CommissionShare *float64 `json:"commission_share,omitempty"`
}

type RealtorResponse struct {
	ID              uuid.UUID `json:"id"`
	Surname         string    `json:"surname"`
	Name            string    `json:"name"`
	Patronymic      string    `json:"patronymic"`
	CommissionShare *float64  `json:"commission_share,omitempty"`
}

func (req *RealtorRequest) toDomain(id uuid.UUID) *domain.Realtor {
	return &domain.Realtor{
		ID:              id,
		Surname:         req.Surname,
		Name:            req.Name,
		Patronymic:      req.Patronymic,
		CommissionShare: req.CommissionShare,
	}
}

func realtorToResponse(r *domain.Realtor) RealtorResponse {
	return RealtorResponse{
		ID:              r.ID,
		Surname:         r.Surname,
		Name:            r.Name,
		Patronymic:      r.Patronymic,
		CommissionShare: r.CommissionShare,
	}
}

// ClientRequest - тело запроса создания/обновления клиента.
type ClientRequest struct {
	Surname    *string `json:"surname,omitempty"`
	Name       *string `json:"name,omitempty"`
	Patronymic *string `json:"patronymic,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
}

type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	Surname    *string   `json:"surname,omitempty"`
	Name       *string   `json:"name,omitempty"`
	Patronymic *string   `json:"patronymic,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`
}

func (req *ClientRequest) toDomain(id uuid.UUID) *domain.Client {
	return &domain.Client{
		ID:         id,
		Surname:    req.Surname,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Email:      req.Email,
	}
}

func clientToResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Surname:    c.Surname,
		Name:       c.Name,
		Patronymic: c.Patronymic,
		Phone:      c.Phone,
		Email:      c.Email,
	}
}

// ApartmentDetailsDTO / HouseDetailsDTO / LandDetailsDTO - блоки
// деталей объекта, заполняется ровно один, по полю type.
type ApartmentDetailsDTO struct {
	Floor *int     `json:"floor,omitempty"`
	Rooms *int     `json:"rooms,omitempty"`
	Area  *float64 `json:"area,omitempty"`
}

type HouseDetailsDTO struct {
	Floors *int     `json:"floors,omitempty"`
	Rooms  *int     `json:"rooms,omitempty"`
	Area   *float64 `json:"area,omitempty"`
}

type LandDetailsDTO struct {
	Area *float64 `json:"area,omitempty"`
}

type PropertyRequest struct {
	Type            string   `json:"type"`
	City            *string  `json:"city,omitempty"`
	Street          *string  `json:"street,omitempty"`
	HouseNumber     *string  `json:"house_number,omitempty"`
	ApartmentNumber *string  `json:"apartment_number,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`

	Apartment *ApartmentDetailsDTO `json:"apartment,omitempty"`
	House     *HouseDetailsDTO     `json:"house,omitempty"`
	Land      *LandDetailsDTO      `json:"land,omitempty"`
}

type PropertyResponse struct {
	ID              uuid.UUID `json:"id"`
	Type            string    `json:"type"`
	City            *string   `json:"city,omitempty"`
	Street          *string   `json:"street,omitempty"`
	HouseNumber     *string   `json:"house_number,omitempty"`
	ApartmentNumber *string   `json:"apartment_number,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`

	Apartment *ApartmentDetailsDTO `json:"apartment,omitempty"`
	House     *HouseDetailsDTO     `json:"house,omitempty"`
	Land      *LandDetailsDTO      `json:"land,omitempty"`
}

func (req *PropertyRequest) toDomain(id uuid.UUID) *domain.Property {
	p := &domain.Property{
		ID:              id,
		Type:            domain.PropertyType(req.Type),
		City:            req.City,
		Street:          req.Street,
		HouseNumber:     req.HouseNumber,
		ApartmentNumber: req.ApartmentNumber,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	if req.Apartment != nil {
		p.Apartment = &domain.ApartmentDetails{Floor: req.Apartment.Floor, Rooms: req.Apartment.Rooms, Area: req.Apartment.Area}
	}
	if req.House != nil {
		p.House = &domain.HouseDetails{Floors: req.House.Floors, Rooms: req.House.Rooms, Area: req.House.Area}
	}
	if req.Land != nil {
		p.Land = &domain.LandDetails{Area: req.Land.Area}
	}
	return p
}

func propertyToResponse(p *domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:              p.ID,
		Type:            string(p.Type),
		City:            p.City,
		Street:          p.Street,
		HouseNumber:     p.HouseNumber,
		ApartmentNumber: p.ApartmentNumber,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
	}
	if p.Apartment != nil {
		resp.Apartment = &ApartmentDetailsDTO{Floor: p.Apartment.Floor, Rooms: p.Apartment.Rooms, Area: p.Apartment.Area}
	}
	if p.House != nil {
		resp.House = &HouseDetailsDTO{Floors: p.House.Floors, Rooms: p.House.Rooms, Area: p.House.Area}
	}
	if p.Land != nil {
		resp.Land = &LandDetailsDTO{Area: p.Land.Area}
	}
	return resp
}

type OfferRequest struct {
	ClientID     uuid.UUID `json:"client_id"`
	RealtorID    uuid.UUID `json:"realtor_id"`
	PropertyID   uuid.UUID `json:"property_id"`
	Price        int64     `json:"price"`
	RentalPeriod int       `json:"rental_period"`
}

type OfferResponse struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"client_id"`
	RealtorID    uuid.UUID `json:"realtor_id"`
	PropertyID   uuid.UUID `json:"property_id"`
	Price        int64     `json:"price"`
	RentalPeriod int       `json:"rental_period"`
}

func (req *OfferRequest) toDomain(id uuid.UUID) *domain.Offer {
	return &domain.Offer{
		ID:           id,
		ClientID:     req.ClientID,
		RealtorID:    req.RealtorID,
		PropertyID:   req.PropertyID,
		Price:        req.Price,
		RentalPeriod: req.RentalPeriod,
	}
}

func offerToResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		ID:           o.ID,
		ClientID:     o.ClientID,
		RealtorID:    o.RealtorID,
		PropertyID:   o.PropertyID,
		Price:        o.Price,
		RentalPeriod: o.RentalPeriod,
	}
}

// Диапазонные блоки потребности, заполняется один по property_type.
type ApartmentDemandDTO struct {
	MinArea  *float64 `json:"min_area,omitempty"`
	MaxArea  *float64 `json:"max_area,omitempty"`
	MinRooms *int     `json:"min_rooms,omitempty"`
	MaxRooms *int     `json:"max_rooms,omitempty"`
	MinFloor *int     `json:"min_floor,omitempty"`
	MaxFloor *int     `json:"max_floor,omitempty"`
}

type HouseDemandDTO struct {
	MinArea   *float64 `json:"min_area,omitempty"`
	MaxArea   *float64 `json:"max_area,omitempty"`
	MinRooms  *int     `json:"min_rooms,omitempty"`
	MaxRooms  *int     `json:"max_rooms,omitempty"`
	MinFloors *int     `json:"min_floors,omitempty"`
	MaxFloors *int     `json:"max_floors,omitempty"`
}

type LandDemandDTO struct {
	MinArea *float64 `json:"min_area,omitempty"`
	MaxArea *float64 `json:"max_area,omitempty"`
}

type DemandRequest struct {
	ClientID     uuid.UUID `json:"client_id"`
	RealtorID    uuid.UUID `json:"realtor_id"`
	PropertyType string    `json:"property_type"`

	City            *string `json:"city,omitempty"`
	Street          *string `json:"street,omitempty"`
	HouseNumber     *string `json:"house_number,omitempty"`
	ApartmentNumber *string `json:"apartment_number,omitempty"`

	MinPrice        int64 `json:"min_price"`
	MaxPrice        int64 `json:"max_price"`
	MinRentalPeriod int   `json:"min_rental_period"`
	MaxRentalPeriod int   `json:"max_rental_period"`

	Apartment *ApartmentDemandDTO `json:"apartment,omitempty"`
	House     *HouseDemandDTO     `json:"house,omitempty"`
	Land      *LandDemandDTO      `json:"land,omitempty"`
}

type DemandResponse struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"client_id"`
	RealtorID    uuid.UUID `json:"realtor_id"`
	PropertyType string    `json:"property_type"`

	City            *string `json:"city,omitempty"`
	Street          *string `json:"street,omitempty"`
	HouseNumber     *string `json:"house_number,omitempty"`
	ApartmentNumber *string `json:"apartment_number,omitempty"`

	MinPrice        int64 `json:"min_price"`
	MaxPrice        int64 `json:"max_price"`
	MinRentalPeriod int   `json:"min_rental_period"`
	MaxRentalPeriod int   `json:"max_rental_period"`

	Apartment *ApartmentDemandDTO `json:"apartment,omitempty"`
	House     *HouseDemandDTO     `json:"house,omitempty"`
	Land      *LandDemandDTO      `json:"land,omitempty"`
}

func (req *DemandRequest) toDomain(id uuid.UUID) *domain.Demand {
	d := &domain.Demand{
		ID:              id,
		ClientID:        req.ClientID,
		RealtorID:       req.RealtorID,
		PropertyType:    domain.PropertyType(req.PropertyType),
		City:            req.City,
		Street:          req.Street,
		HouseNumber:     req.HouseNumber,
		ApartmentNumber: req.ApartmentNumber,
		MinPrice:        req.MinPrice,
		MaxPrice:        req.MaxPrice,
		MinRentalPeriod: req.MinRentalPeriod,
		MaxRentalPeriod: req.MaxRentalPeriod,
	}
	if req.Apartment != nil {
		d.Apartment = &domain.ApartmentDemand{
			MinArea: req.Apartment.MinArea, MaxArea: req.Apartment.MaxArea,
			MinRooms: req.Apartment.MinRooms, MaxRooms: req.Apartment.MaxRooms,
			MinFloor: req.Apartment.MinFloor, MaxFloor: req.Apartment.MaxFloor,
		}
	}
	if req.House != nil {
		d.House = &domain.HouseDemand{
			MinArea: req.House.MinArea, MaxArea: req.House.MaxArea,
			MinRooms: req.House.MinRooms, MaxRooms: req.House.MaxRooms,
			MinFloors: req.House.MinFloors, MaxFloors: req.House.MaxFloors,
		}
	}
	if req.Land != nil {
		d.Land = &domain.LandDemand{MinArea: req.Land.MinArea, MaxArea: req.Land.MaxArea}
	}
	return d
}

func demandToResponse(d *domain.Demand) DemandResponse {
	resp := DemandResponse{
		ID:              d.ID,
		ClientID:        d.ClientID,
		RealtorID:       d.RealtorID,
		PropertyType:    string(d.PropertyType),
		City:            d.City,
		Street:          d.Street,
		HouseNumber:     d.HouseNumber,
		ApartmentNumber: d.ApartmentNumber,
		MinPrice:        d.MinPrice,
		MaxPrice:        d.MaxPrice,
		MinRentalPeriod: d.MinRentalPeriod,
		MaxRentalPeriod: d.MaxRentalPeriod,
	}
	if d.Apartment != nil {
		resp.Apartment = &ApartmentDemandDTO{
			MinArea: d.Apartment.MinArea, MaxArea: d.Apartment.MaxArea,
			MinRooms: d.Apartment.MinRooms, MaxRooms: d.Apartment.MaxRooms,
			MinFloor: d.Apartment.MinFloor, MaxFloor: d.Apartment.MaxFloor,
		}
	}
	if d.House != nil {
		resp.House = &HouseDemandDTO{
			MinArea: d.House.MinArea, MaxArea: d.House.MaxArea,
			MinRooms: d.House.MinRooms, MaxRooms: d.House.MaxRooms,
			MinFloors: d.House.MinFloors, MaxFloors: d.House.MaxFloors,
		}
	}
	if d.Land != nil {
		resp.Land = &LandDemandDTO{MinArea: d.Land.MinArea, MaxArea: d.Land.MaxArea}
	}
	return resp
}

type CreateDealRequest struct {
	DemandID uuid.UUID `json:"demand_id"`
	OfferID  uuid.UUID `json:"offer_id"`
}

// UpdateDealRequest - административная перепривязка сделки.
type UpdateDealRequest struct {
	DemandID uuid.UUID `json:"demand_id"`
	OfferID  uuid.UUID `json:"offer_id"`
}

type DealResponse struct {
	ID        uuid.UUID `json:"id"`
	DemandID  uuid.UUID `json:"demand_id"`
	OfferID   uuid.UUID `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

func dealToResponse(d *domain.Deal) DealResponse {
	return DealResponse{
		ID:        d.ID,
		DemandID:  d.DemandID,
		OfferID:   d.OfferID,
		CreatedAt: d.CreatedAt,
	}
}

type CommissionBreakdownResponse struct {
	SellerCommission   float64 `json:"seller_commission"`
	BuyerCommission    float64 `json:"buyer_commission"`
	SellerRealtorShare float64 `json:"seller_realtor_share"`
	BuyerRealtorShare  float64 `json:"buyer_realtor_share"`
	CompanyShare       float64 `json:"company_share"`
}

func commissionsToResponse(b domain.CommissionBreakdown) CommissionBreakdownResponse {
	return CommissionBreakdownResponse{
		SellerCommission:   b.SellerCommission,
		BuyerCommission:    b.BuyerCommission,
		SellerRealtorShare: b.SellerRealtorShare,
		BuyerRealtorShare:  b.BuyerRealtorShare,
		CompanyShare:       b.CompanyShare,
	}
}
