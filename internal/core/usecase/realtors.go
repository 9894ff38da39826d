package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreateRealtorUseCase struct {
	realtors port.RealtorRepositoryPort
}

func NewCreateRealtorUseCase(realtors port.RealtorRepositoryPort) *CreateRealtorUseCase {
	return &CreateRealtorUseCase{realtors: realtors}
}

func (uc *CreateRealtorUseCase) Execute(ctx context.Context, realtor *domain.Realtor) (uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateRealtor"})

	if err := realtor.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return uuid.Nil, err
	}
	if realtor.ID == uuid.Nil {
		realtor.ID = uuid.New()
	}

	if err := uc.realtors.Create(ctx, realtor); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return uuid.Nil, err
	}

	ucLogger.Info("Realtor created", port.Fields{"realtor_id": realtor.ID})
	return realtor.ID, nil
}

type UpdateRealtorUseCase struct {
	realtors port.RealtorRepositoryPort
}

func NewUpdateRealtorUseCase(realtors port.RealtorRepositoryPort) *UpdateRealtorUseCase {
	return &UpdateRealtorUseCase{realtors: realtors}
}

func (uc *UpdateRealtorUseCase) Execute(ctx context.Context, realtor *domain.Realtor) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateRealtor", "realtor_id": realtor.ID})

	if err := realtor.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.realtors.FindByID(ctx, realtor.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrRealtorNotFound
	}

	if err := uc.realtors.Update(ctx, realtor); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Realtor updated", nil)
	return nil
}

// DeleteRealtorUseCase отказывает в удалении риэлтора, на которого
// ссылаются предложения или потребности.
type DeleteRealtorUseCase struct {
	realtors port.RealtorRepositoryPort
}

func NewDeleteRealtorUseCase(realtors port.RealtorRepositoryPort) *DeleteRealtorUseCase {
	return &DeleteRealtorUseCase{realtors: realtors}
}

func (uc *DeleteRealtorUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteRealtor", "realtor_id": id})

	existing, err := uc.realtors.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrRealtorNotFound
	}

	linked, err := uc.realtors.HasLinkedRecords(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if linked {
		ucLogger.Warn("Realtor has linked offers or demands, refusing to delete", nil)
		return domain.ErrRealtorInUse
	}

	if err := uc.realtors.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Realtor deleted", nil)
	return nil
}

type GetRealtorsUseCase struct {
	realtors port.RealtorRepositoryPort
}

func NewGetRealtorsUseCase(realtors port.RealtorRepositoryPort) *GetRealtorsUseCase {
	return &GetRealtorsUseCase{realtors: realtors}
}

func (uc *GetRealtorsUseCase) Execute(ctx context.Context, search string) ([]domain.Realtor, error) {
	return uc.realtors.List(ctx, search)
}

type GetRealtorByIDUseCase struct {
	realtors port.RealtorRepositoryPort
}

func NewGetRealtorByIDUseCase(realtors port.RealtorRepositoryPort) *GetRealtorByIDUseCase {
	return &GetRealtorByIDUseCase{realtors: realtors}
}

func (uc *GetRealtorByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Realtor, error) {
	realtor, err := uc.realtors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if realtor == nil {
		return nil, domain.ErrRealtorNotFound
	}
	return realtor, nil
}
