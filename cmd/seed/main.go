package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mmcloughlin/geohash"
	"github.com/urfave/cli/v2"

	"agency-service/pkg/postgres"
)

// Служебная утилита: накатывает схему и наполняет базу
// демонстрационными данными для ручной проверки подбора.
func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "seed",
		Usage: "apply database schema and load demo data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "PostgreSQL connection string",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:  "migrations-dir",
				Usage: "directory with .sql migration files",
				Value: "migrations",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply all .sql files from the migrations directory in order",
				Action: runMigrate,
			},
			{
				Name:   "demo",
				Usage:  "insert a small demo dataset (realtors, clients, properties, offers, demands)",
				Action: runDemo,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func connect(c *cli.Context) (*pgxpool.Pool, error) {
	url := c.String("database-url")
	if url == "" {
		return nil, fmt.Errorf("database-url is required (flag or DATABASE_URL)")
	}
	return postgres.NewClient(c.Context, postgres.Config{DatabaseURL: url})
}

func runMigrate(c *cli.Context) error {
	pool, err := connect(c)
	if err != nil {
		return err
	}
	defer pool.Close()

	dir := c.String("migrations-dir")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		sql, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := pool.Exec(c.Context, string(sql)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
		log.Printf("applied %s", name)
	}
	return nil
}

func runDemo(c *cli.Context) error {
	pool, err := connect(c)
	if err != nil {
		return err
	}
	defer pool.Close()
	ctx := c.Context

	share := 50.0
	realtorWithShare := uuid.New()
	realtorDefault := uuid.New()
	if err := execAll(ctx, pool,
		stmt{`INSERT INTO realtors (id, surname, name, patronymic, commission_share) VALUES ($1, $2, $3, $4, $5)`,
			[]interface{}{realtorWithShare, "Иванов", "Иван", "Иванович", share}},
		stmt{`INSERT INTO realtors (id, surname, name, patronymic, commission_share) VALUES ($1, $2, $3, $4, NULL)`,
			[]interface{}{realtorDefault, "Петрова", "Анна", "Сергеевна"}},
	); err != nil {
		return err
	}

	owner := uuid.New()
	tenant := uuid.New()
	if err := execAll(ctx, pool,
		stmt{`INSERT INTO clients (id, surname, name, patronymic, phone, email) VALUES ($1, $2, $3, $4, $5, NULL)`,
			[]interface{}{owner, "Сидоров", "Павел", "Андреевич", "+375291112233"}},
		stmt{`INSERT INTO clients (id, surname, name, patronymic, phone, email) VALUES ($1, $2, $3, $4, NULL, $5)`,
			[]interface{}{tenant, "Кузнецова", "Мария", "Олеговна", "maria@example.com"}},
	); err != nil {
		return err
	}

	apartment := uuid.New()
	if err := execAll(ctx, pool,
		stmt{`INSERT INTO properties (id, type, city, street, house_number, apartment_number, latitude, longitude, geohash)
		      VALUES ($1, 'apartment', $2, $3, $4, $5, $6, $7, $8)`,
			[]interface{}{apartment, "Минск", "Независимости", "12", "34", 53.9, 27.5667, geohash.EncodeWithPrecision(53.9, 27.5667, 5)}},
		stmt{`INSERT INTO apartments (property_id, floor, rooms, area) VALUES ($1, 3, 2, 54.5)`,
			[]interface{}{apartment}},
	); err != nil {
		return err
	}

	offer := uuid.New()
	if err := execAll(ctx, pool,
		stmt{`INSERT INTO offers (id, client_id, realtor_id, property_id, price, rental_period)
		      VALUES ($1, $2, $3, $4, 1000, 12)`,
			[]interface{}{offer, owner, realtorWithShare, apartment}},
	); err != nil {
		return err
	}

	demand := uuid.New()
	if err := execAll(ctx, pool,
		stmt{`INSERT INTO demands (id, client_id, realtor_id, property_type, city, min_price, max_price, min_rental_period, max_rental_period)
		      VALUES ($1, $2, $3, 'apartment', $4, 800, 1200, 6, 24)`,
			[]interface{}{demand, tenant, realtorDefault, "Минск"}},
		stmt{`INSERT INTO apartment_demands (demand_id, min_rooms, max_rooms) VALUES ($1, 1, 3)`,
			[]interface{}{demand}},
	); err != nil {
		return err
	}

	log.Printf("demo data loaded: demand %s should match offer %s", demand, offer)
	return nil
}

type stmt struct {
	sql  string
	args []interface{}
}

func execAll(ctx context.Context, pool *pgxpool.Pool, statements ...stmt) error {
	for _, s := range statements {
		if _, err := pool.Exec(ctx, s.sql, s.args...); err != nil {
			return fmt.Errorf("seed statement failed: %w", err)
		}
	}
	return nil
}
