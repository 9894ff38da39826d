package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewCreatePropertyUseCase(properties port.PropertyRepositoryPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, property *domain.Property) (uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateProperty", "property_type": property.Type})

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return uuid.Nil, err
	}
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}

	if err := uc.properties.Create(ctx, property); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return uuid.Nil, err
	}
	ucLogger.Info("Property created", port.Fields{"property_id": property.ID})
	return property.ID, nil
}

type UpdatePropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewUpdatePropertyUseCase(properties port.PropertyRepositoryPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{properties: properties}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateProperty", "property_id": property.ID})

	if err := property.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.properties.FindByID(ctx, property.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrPropertyNotFound
	}
	// Тип объекта после создания не меняется: блоки деталей живут
	// в типозависимых таблицах.
	property.Type = existing.Type

	if err := uc.properties.Update(ctx, property); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Property updated", nil)
	return nil
}

type DeletePropertyUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewDeletePropertyUseCase(properties port.PropertyRepositoryPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{properties: properties}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteProperty", "property_id": id})

	existing, err := uc.properties.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrPropertyNotFound
	}

	hasOffers, err := uc.properties.HasOffers(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if hasOffers {
		ucLogger.Warn("Property has linked offers, refusing to delete", nil)
		return domain.ErrPropertyInUse
	}

	if err := uc.properties.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Property deleted", nil)
	return nil
}

type GetPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetPropertiesUseCase(properties port.PropertyRepositoryPort) *GetPropertiesUseCase {
	return &GetPropertiesUseCase{properties: properties}
}

func (uc *GetPropertiesUseCase) Execute(ctx context.Context, filter port.PropertyFilter) ([]domain.Property, error) {
	return uc.properties.List(ctx, filter)
}

type GetPropertyByIDUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetPropertyByIDUseCase(properties port.PropertyRepositoryPort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{properties: properties}
}

func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	property, err := uc.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrPropertyNotFound
	}
	return property, nil
}
