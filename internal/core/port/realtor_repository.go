package port

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/core/domain"
)

// RealtorRepositoryPort - контракт хранилища риэлторов.
// FindByID возвращает (nil, nil), если запись не найдена.
type RealtorRepositoryPort interface {
	Create(ctx context.Context, realtor *domain.Realtor) error
	Update(ctx context.Context, realtor *domain.Realtor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Realtor, error)

	// List возвращает риэлторов, опционально отфильтрованных
	// по подстроке в ФИО.
	List(ctx context.Context, search string) ([]domain.Realtor, error)

	// HasLinkedRecords сообщает, ссылаются ли на риэлтора
	// предложения или потребности.
	HasLinkedRecords(ctx context.Context, id uuid.UUID) (bool, error)
}
