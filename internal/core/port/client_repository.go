package port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// ClientRepositoryPort - контракт хранилища клиентов.
type ClientRepositoryPort interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, search string) ([]domain.Client, error)

	HasLinkedRecords(ctx context.Context, id uuid.UUID) (bool, error)
}
