package port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// DealRepositoryPort - контракт хранилища сделок.
type DealRepositoryPort interface {
	Create(ctx context.Context, deal *domain.Deal) error
	Update(ctx context.Context, deal *domain.Deal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	List(ctx context.Context) ([]domain.Deal, error)

	// ExistsForOffer / ExistsForDemand - предикаты "сторона уже
	// участвует в сделке".
	ExistsForOffer(ctx context.Context, offerID uuid.UUID) (bool, error)
	ExistsForDemand(ctx context.Context, demandID uuid.UUID) (bool, error)

	// SatisfiedOfferIDs возвращает множество предложений,
	// на которые уже ссылаются сделки.
	SatisfiedOfferIDs(ctx context.Context) (map[uuid.UUID]struct{}, error)
}
