package domain

import (
	"math"
)

// missingRealtorShareFraction - коэффициент, применяемый, когда риэлтор
// по сделке вообще не найден. Численно совпадает с DefaultCommissionShare/100,
// но это отдельная ветка: изменение одного умолчания не должно молча
// менять другое.
const missingRealtorShareFraction = 0.45

// CommissionBreakdown - результат расчета комиссий по сделке.
// Все суммы округлены до копеек.
type CommissionBreakdown struct {
	SellerCommission   float64
	BuyerCommission    float64
	SellerRealtorShare float64
	BuyerRealtorShare  float64
	CompanyShare       float64
}

// CommissionForSeller - комиссия со стороны владельца (продавца),
// зависит от типа объекта. Неизвестный тип дает 0 - расчет не падает,
// потому что потребитель результата - отчетные экраны.
func CommissionForSeller(propertyType PropertyType, monthlyPrice float64) float64 {
	switch propertyType {
	case PropertyTypeApartment:
		return 3000 + monthlyPrice
	case PropertyTypeLand:
		yearlyPrice := monthlyPrice * 12
		return 5000 + yearlyPrice*0.05
	case PropertyTypeHouse:
		return 5000 + monthlyPrice*0.25
	default:
		return 0.0
	}
}

// CommissionForBuyer - комиссия со стороны арендатора (покупателя),
// от типа объекта не зависит.
func CommissionForBuyer(monthlyPrice float64) float64 {
	return monthlyPrice * 0.10
}

// DealCommissions считает комиссии и их распределение по сделке.
// offer и property - разрешенные записи сделки; sellerRealtor и
// buyerRealtor могут быть nil (риэлтор не найден), тогда применяется
// missingRealtorShareFraction. Отсутствующее предложение дает нулевой
// результат вместо ошибки.
func DealCommissions(offer *Offer, property *Property, sellerRealtor, buyerRealtor *Realtor) CommissionBreakdown {
	if offer == nil {
		return CommissionBreakdown{}
	}

	propertyType := PropertyTypeApartment
	if property != nil {
		propertyType = property.Type
	}
	monthlyPrice := float64(offer.Price)

	sellerCommission := CommissionForSeller(propertyType, monthlyPrice)
	buyerCommission := CommissionForBuyer(monthlyPrice)

	sellerShare := missingRealtorShareFraction
	if sellerRealtor != nil {
		sellerShare = sellerRealtor.ShareFraction()
	}
	buyerShare := missingRealtorShareFraction
	if buyerRealtor != nil {
		buyerShare = buyerRealtor.ShareFraction()
	}

	sellerRealtorShare := sellerCommission * sellerShare
	buyerRealtorShare := buyerCommission * buyerShare

	// Агентству остается дополнение до полной комиссии с каждой стороны.
	companyShare := (sellerCommission - sellerRealtorShare) + (buyerCommission - buyerRealtorShare)

	return CommissionBreakdown{
		SellerCommission:   round2(sellerCommission),
		BuyerCommission:    round2(buyerCommission),
		SellerRealtorShare: round2(sellerRealtorShare),
		BuyerRealtorShare:  round2(buyerRealtorShare),
		CompanyShare:       round2(companyShare),
	}
}

// round2 округляет до двух знаков, половина - от нуля.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
