// seed puebla la taxonomía base (estados, tipos, categorías y subcategorías)
// usando los repositorios de PostgreSQL. Es idempotente: los títulos ya
// existentes se omiten.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/flujo-api/internal/domain"
	"github.com/jhoicas/flujo-api/internal/domain/entity"
	"github.com/jhoicas/flujo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/flujo-api/pkg/config"
)

var statuses = []string{"Business", "Personal", "Tax"}

// taxonomía: tipo -> categoría -> subcategorías
var taxonomy = map[string]map[string][]string{
	"Income": {
		"Sales":    {"Products", "Services"},
		"Interest": {"Deposits"},
	},
	"Expense": {
		"Infrastructure": {"VPS", "Proxy"},
		"Marketing":      {"Farpost", "Avito", "Ads"},
		"Payroll":        {"Salaries", "Bonuses"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	statusRepo := postgres.NewStatusRepository(pool)
	typeRepo := postgres.NewTypeRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)

	now := time.Now().UTC()

	for _, title := range statuses {
		err := statusRepo.Create(&entity.Status{
			ID:        uuid.NewString(),
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil && !errors.Is(err, domain.ErrDuplicate) {
			fmt.Fprintf(os.Stderr, "Crear estado %q: %v\n", title, err)
			os.Exit(1)
		}
	}

	for typeTitle, categories := range taxonomy {
		typeID, err := ensureType(typeRepo, typeTitle, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear tipo %q: %v\n", typeTitle, err)
			os.Exit(1)
		}

		for categoryTitle, subcategories := range categories {
			categoryID, err := ensureCategory(categoryRepo, categoryTitle, typeID, now)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Crear categoría %q: %v\n", categoryTitle, err)
				os.Exit(1)
			}

			for _, subTitle := range subcategories {
				err := subcategoryRepo.Create(&entity.Subcategory{
					ID:         uuid.NewString(),
					Title:      subTitle,
					CategoryID: categoryID,
					CreatedAt:  now,
					UpdatedAt:  now,
				})
				if err != nil && !errors.Is(err, domain.ErrDuplicate) {
					fmt.Fprintf(os.Stderr, "Crear subcategoría %q: %v\n", subTitle, err)
					os.Exit(1)
				}
			}
		}
	}

	fmt.Println("Taxonomía base lista")
}

// ensureType crea el tipo si no existe y devuelve su id.
func ensureType(repo *postgres.TypeRepo, title string, now time.Time) (string, error) {
	if existing, err := repo.GetByTitle(title); err == nil {
		return existing.ID, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	t := &entity.Type{ID: uuid.NewString(), Title: title, CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// ensureCategory crea la categoría si no existe y devuelve su id.
func ensureCategory(repo *postgres.CategoryRepo, title, typeID string, now time.Time) (string, error) {
	if existing, err := repo.GetByTitle(title); err == nil {
		return existing.ID, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	c := &entity.Category{ID: uuid.NewString(), Title: title, TypeID: typeID, CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(c); err != nil {
		return "", err
	}
	return c.ID, nil
}
