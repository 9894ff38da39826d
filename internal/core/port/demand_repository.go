package port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// DemandRepositoryPort - контракт хранилища потребностей.
type DemandRepositoryPort interface {
	Create(ctx context.Context, demand *domain.Demand) error
	Update(ctx context.Context, demand *domain.Demand) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Demand, error)
	List(ctx context.Context) ([]domain.Demand, error)
}
