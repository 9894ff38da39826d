package port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// PropertyFilter - фильтры списка объектов недвижимости.
// NearLat/NearLon задаются парой: объекты отбираются по общему
// geohash-префиксу с указанной точкой.
type PropertyFilter struct {
	Type    *domain.PropertyType
	City    *string
	Street  *string
	NearLat *float64
	NearLon *float64
}

// PropertyRepositoryPort - контракт хранилища объектов недвижимости.
type PropertyRepositoryPort interface {
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)

	// HasOffers сообщает, ссылаются ли на объект предложения.
	HasOffers(ctx context.Context, id uuid.UUID) (bool, error)
}
