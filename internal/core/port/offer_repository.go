package port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// OfferRepositoryPort - контракт хранилища предложений.
type OfferRepositoryPort interface {
	Create(ctx context.Context, offer *domain.Offer) error
	Update(ctx context.Context, offer *domain.Offer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)

	// List возвращает все предложения в стабильном порядке создания.
	List(ctx context.Context) ([]domain.Offer, error)
}
