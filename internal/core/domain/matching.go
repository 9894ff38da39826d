package domain

import (
	"github.com/google/uuid"
)

// Matches решает, удовлетворяет ли предложение (и его объект) критериям
// потребности. Все условия обязательны, проверка прерывается на первом
// несовпадении. Вызывающая сторона отвечает за то, что property - это
// объект именно этого offer. Отсутствующее необязательное поле трактуется
// как "без ограничений", ошибок функция не возвращает.
func Matches(demand *Demand, property *Property, offer *Offer) bool {
	if demand.PropertyType != property.Type {
		return false
	}

	// Адресные фильтры: заданное непустое значение требует точного
	// равенства, без нормализации и регистронезависимости.
	if !addressFieldMatches(demand.City, property.City) {
		return false
	}
	if !addressFieldMatches(demand.Street, property.Street) {
		return false
	}
	if !addressFieldMatches(demand.HouseNumber, property.HouseNumber) {
		return false
	}
	if !addressFieldMatches(demand.ApartmentNumber, property.ApartmentNumber) {
		return false
	}

	// Ценовой диапазон и срок сдачи - включительно с обеих сторон.
	if offer.Price < demand.MinPrice || offer.Price > demand.MaxPrice {
		return false
	}
	if offer.RentalPeriod < demand.MinRentalPeriod || offer.RentalPeriod > demand.MaxRentalPeriod {
		return false
	}

	switch demand.PropertyType {
	case PropertyTypeApartment:
		if demand.Apartment == nil || property.Apartment == nil {
			return true
		}
		return intInRange(demand.Apartment.MinFloor, demand.Apartment.MaxFloor, property.Apartment.Floor) &&
			intInRange(demand.Apartment.MinRooms, demand.Apartment.MaxRooms, property.Apartment.Rooms) &&
			floatInRange(demand.Apartment.MinArea, demand.Apartment.MaxArea, property.Apartment.Area)
	case PropertyTypeHouse:
		if demand.House == nil || property.House == nil {
			return true
		}
		return intInRange(demand.House.MinFloors, demand.House.MaxFloors, property.House.Floors) &&
			intInRange(demand.House.MinRooms, demand.House.MaxRooms, property.House.Rooms) &&
			floatInRange(demand.House.MinArea, demand.House.MaxArea, property.House.Area)
	case PropertyTypeLand:
		if demand.Land == nil || property.Land == nil {
			return true
		}
		return floatInRange(demand.Land.MinArea, demand.Land.MaxArea, property.Land.Area)
	}

	return true
}

// addressFieldMatches: nil или пустой фильтр пропускает любое значение.
func addressFieldMatches(want, got *string) bool {
	if want == nil || *want == "" {
		return true
	}
	return got != nil && *got == *want
}

// intInRange реализует несимметричную политику диапазонов: верхняя
// граница учитывается только при заданной нижней и заданном значении
// у объекта. Ограничение "только max" при этом не срабатывает - поведение
// сохранено ради совместимости, см. DESIGN.md.
func intInRange(min, max, value *int) bool {
	if min == nil || value == nil {
		return true
	}
	if max != nil {
		return *value >= *min && *value <= *max
	}
	return *value >= *min
}

func floatInRange(min, max, value *float64) bool {
	if min == nil || value == nil {
		return true
	}
	if max != nil {
		return *value >= *min && *value <= *max
	}
	return *value >= *min
}

// PropertyLookup возвращает объект по идентификатору или nil,
// если объект не найден.
type PropertyLookup func(propertyID uuid.UUID) *Property

// FilterMatchingOffers отбирает из candidates предложения, подходящие
// под потребность: уже удовлетворенные (satisfiedOfferIDs) и предложения
// без разрешимого объекта пропускаются. Порядок кандидатов сохраняется.
func FilterMatchingOffers(demand *Demand, candidates []Offer, lookup PropertyLookup, satisfiedOfferIDs map[uuid.UUID]struct{}) []Offer {
	matching := make([]Offer, 0, len(candidates))
	for i := range candidates {
		offer := &candidates[i]
		if _, ok := satisfiedOfferIDs[offer.ID]; ok {
			continue
		}
		property := lookup(offer.PropertyID)
		if property == nil {
			continue
		}
		if Matches(demand, property, offer) {
			matching = append(matching, *offer)
		}
	}
	return matching
}
