package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-service/internal/core/domain"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) (*ClientRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ClientRepository{
		pool: pool,
	}, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, surname, name, patronymic, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		client.ID, client.Surname, client.Name, client.Patronymic, client.Phone, client.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET surname = $2, name = $3, patronymic = $4, phone = $5, email = $6
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		client.ID, client.Surname, client.Name, client.Patronymic, client.Phone, client.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT id, surname, name, patronymic, phone, email
		FROM clients
		WHERE id = $1`

	var client domain.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID, &client.Surname, &client.Name, &client.Patronymic, &client.Phone, &client.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, search string) ([]domain.Client, error) {
	query := `
		SELECT id, surname, name, patronymic, phone, email
		FROM clients`
	args := make([]interface{}, 0, 1)
	if search != "" {
		query += ` WHERE concat_ws(' ', surname, name, patronymic, phone, email) ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY surname, name, patronymic`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID, &client.Surname, &client.Name, &client.Patronymic, &client.Phone, &client.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) HasLinkedRecords(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM offers WHERE client_id = $1)
		    OR EXISTS (SELECT 1 FROM demands WHERE client_id = $1)`

	var linked bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&linked); err != nil {
		return false, fmt.Errorf("failed to check client links: %w", err)
	}
	return linked, nil
}
