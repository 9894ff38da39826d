package usecase

import (
	"context"

	"github.com/google/uuid"

	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

type CreateClientUseCase struct {
	clients port.ClientRepositoryPort
}

func NewCreateClientUseCase(clients port.ClientRepositoryPort) *CreateClientUseCase {
	return &CreateClientUseCase{clients: clients}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, client *domain.Client) (uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateClient"})

	if err := client.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return uuid.Nil, err
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}

	if err := uc.clients.Create(ctx, client); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return uuid.Nil, err
	}
	ucLogger.Info("Client created", port.Fields{"client_id": client.ID})
	return client.ID, nil
}

type UpdateClientUseCase struct {
	clients port.ClientRepositoryPort
}

func NewUpdateClientUseCase(clients port.ClientRepositoryPort) *UpdateClientUseCase {
	return &UpdateClientUseCase{clients: clients}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, client *domain.Client) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateClient", "client_id": client.ID})

	if err := client.Validate(); err != nil {
		ucLogger.Warn("Validation failed", port.Fields{"error": err.Error()})
		return err
	}

	existing, err := uc.clients.FindByID(ctx, client.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrClientNotFound
	}

	if err := uc.clients.Update(ctx, client); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Client updated", nil)
	return nil
}

type DeleteClientUseCase struct {
	clients port.ClientRepositoryPort
}

func NewDeleteClientUseCase(clients port.ClientRepositoryPort) *DeleteClientUseCase {
	return &DeleteClientUseCase{clients: clients}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "DeleteClient", "client_id": id})

	existing, err := uc.clients.FindByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if existing == nil {
		return domain.ErrClientNotFound
	}

	linked, err := uc.clients.HasLinkedRecords(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if linked {
		ucLogger.Warn("Client has linked offers or demands, refusing to delete", nil)
		return domain.ErrClientInUse
	}

	if err := uc.clients.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	ucLogger.Info("Client deleted", nil)
	return nil
}

type GetClientsUseCase struct {
	clients port.ClientRepositoryPort
}

func NewGetClientsUseCase(clients port.ClientRepositoryPort) *GetClientsUseCase {
	return &GetClientsUseCase{clients: clients}
}

func (uc *GetClientsUseCase) Execute(ctx context.Context, search string) ([]domain.Client, error) {
	return uc.clients.List(ctx, search)
}

type GetClientByIDUseCase struct {
	clients port.ClientRepositoryPort
}

func NewGetClientByIDUseCase(clients port.ClientRepositoryPort) *GetClientByIDUseCase {
	return &GetClientByIDUseCase{clients: clients}
}

func (uc *GetClientByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := uc.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}
