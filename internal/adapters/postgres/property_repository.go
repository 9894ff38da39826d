package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"

	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
)

// geohashPrecision - длина префикса geohash для группировки по
// близости. 5 символов - ячейка порядка 5x5 км.
const geohashPrecision = 5

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{
		pool: pool,
	}, nil
}

func propertyGeohash(lat, lon *float64) *string {
	if lat == nil || lon == nil {
		return nil
	}
	h := geohash.EncodeWithPrecision(*lat, *lon, geohashPrecision)
	return &h
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO properties (id, type, city, street, house_number, apartment_number, latitude, longitude, geohash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.Exec(ctx, query,
		property.ID, property.Type,
		property.City, property.Street, property.HouseNumber, property.ApartmentNumber,
		property.Latitude, property.Longitude,
		propertyGeohash(property.Latitude, property.Longitude),
	)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	if err := r.insertDetails(ctx, tx, property); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE properties
		SET city = $2, street = $3, house_number = $4, apartment_number = $5,
		    latitude = $6, longitude = $7, geohash = $8
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		property.ID,
		property.City, property.Street, property.HouseNumber, property.ApartmentNumber,
		property.Latitude, property.Longitude,
		propertyGeohash(property.Latitude, property.Longitude),
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}

	// Детали перезаписываются целиком: тип объекта неизменен,
	// поэтому строка живет в той же таблице.
	deleteQuery := map[domain.PropertyType]string{
		domain.PropertyTypeApartment: `DELETE FROM apartments WHERE property_id = $1`,
		domain.PropertyTypeHouse:     `DELETE FROM houses WHERE property_id = $1`,
		domain.PropertyTypeLand:      `DELETE FROM lands WHERE property_id = $1`,
	}[property.Type]
	if _, err := tx.Exec(ctx, deleteQuery, property.ID); err != nil {
		return fmt.Errorf("failed to reset property details: %w", err)
	}
	if err := r.insertDetails(ctx, tx, property); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) insertDetails(ctx context.Context, tx pgx.Tx, property *domain.Property) error {
	switch property.Type {
	case domain.PropertyTypeApartment:
		d := property.Apartment
		if d == nil {
			d = &domain.ApartmentDetails{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO apartments (property_id, floor, rooms, area) VALUES ($1, $2, $3, $4)`,
			property.ID, d.Floor, d.Rooms, d.Area,
		)
		if err != nil {
			return fmt.Errorf("failed to save apartment details: %w", err)
		}
	case domain.PropertyTypeHouse:
		d := property.House
		if d == nil {
			d = &domain.HouseDetails{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO houses (property_id, floors, rooms, area) VALUES ($1, $2, $3, $4)`,
			property.ID, d.Floors, d.Rooms, d.Area,
		)
		if err != nil {
			return fmt.Errorf("failed to save house details: %w", err)
		}
	case domain.PropertyTypeLand:
		d := property.Land
		if d == nil {
			d = &domain.LandDetails{}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO lands (property_id, area) VALUES ($1, $2)`,
			property.ID, d.Area,
		)
		if err != nil {
			return fmt.Errorf("failed to save land details: %w", err)
		}
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// findQuery выбирает базовые поля и детали всех трех типов одним
// запросом, лишние детали приходят как NULL.
const propertySelect = `
	SELECT p.id, p.type, p.city, p.street, p.house_number, p.apartment_number,
	       p.latitude, p.longitude,
	       a.floor, a.rooms, a.area,
	       h.floors, h.rooms, h.area,
	       l.area
	FROM properties p
	LEFT JOIN apartments a ON a.property_id = p.id
	LEFT JOIN houses h ON h.property_id = p.id
	LEFT JOIN lands l ON l.property_id = p.id`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	var aFloor, aRooms *int
	var aArea *float64
	var hFloors, hRooms *int
	var hArea *float64
	var lArea *float64

	err := row.Scan(
		&p.ID, &p.Type, &p.City, &p.Street, &p.HouseNumber, &p.ApartmentNumber,
		&p.Latitude, &p.Longitude,
		&aFloor, &aRooms, &aArea,
		&hFloors, &hRooms, &hArea,
		&lArea,
	)
	if err != nil {
		return nil, err
	}

	switch p.Type {
	case domain.PropertyTypeApartment:
		p.Apartment = &domain.ApartmentDetails{Floor: aFloor, Rooms: aRooms, Area: aArea}
	case domain.PropertyTypeHouse:
		p.House = &domain.HouseDetails{Floors: hFloors, Rooms: hRooms, Area: hArea}
	case domain.PropertyTypeLand:
		p.Land = &domain.LandDetails{Area: lArea}
	}
	return &p, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	property, err := scanProperty(r.pool.QueryRow(ctx, propertySelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return property, nil
}

func (r *PropertyRepository) List(ctx context.Context, filter port.PropertyFilter) ([]domain.Property, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("p.type = $%d", argID))
		args = append(args, *filter.Type)
		argID++
	}
	if filter.City != nil {
		conditions = append(conditions, fmt.Sprintf("p.city = $%d", argID))
		args = append(args, *filter.City)
		argID++
	}
	if filter.Street != nil {
		conditions = append(conditions, fmt.Sprintf("p.street = $%d", argID))
		args = append(args, *filter.Street)
		argID++
	}
	if filter.NearLat != nil && filter.NearLon != nil {
		conditions = append(conditions, fmt.Sprintf("p.geohash = $%d", argID))
		args = append(args, geohash.EncodeWithPrecision(*filter.NearLat, *filter.NearLon, geohashPrecision))
		argID++
	}

	query := propertySelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.city, p.street, p.house_number"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *property)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) HasOffers(ctx context.Context, id uuid.UUID) (bool, error) {
	var linked bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM offers WHERE property_id = $1)`, id,
	).Scan(&linked)
	if err != nil {
		return false, fmt.Errorf("failed to check property offers: %w", err)
	}
	return linked, nil
}
