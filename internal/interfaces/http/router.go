package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/flujo-api/internal/application/auth"
	"github.com/jhoicas/flujo-api/internal/application/report"
	"github.com/jhoicas/flujo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordUC      *usecase.RecordUseCase
	StatusUC      *usecase.StatusUseCase
	TypeUC        *usecase.TypeUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ReportUC      *report.ReportUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Records (público, como el resto del CRUD)
	records := app.Group("/records")
	recordHandler := NewRecordHandler(deps.RecordUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	records.Get("/", recordHandler.List)
	records.Post("/", recordHandler.Create)
	records.Get("/report.pdf", reportHandler.RecordsPDF)
	records.Get("/:id", recordHandler.GetByID)
	records.Put("/:id", recordHandler.Update)
	records.Patch("/:id", recordHandler.Update)
	records.Delete("/:id", recordHandler.Delete)

	// Taxonomía: CRUD genérico por entidad
	registerTitleRoutes(app.Group("/status"), NewTitleHandler(deps.StatusUC))
	registerTitleRoutes(app.Group("/type"), NewTitleHandler(deps.TypeUC))

	categories := app.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	subcategories := app.Group("/subcategory")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Post("/", subcategoryHandler.Create)
	subcategories.Get("/:id", subcategoryHandler.GetByID)
	subcategories.Put("/:id", subcategoryHandler.Update)
	subcategories.Delete("/:id", subcategoryHandler.Delete)

	// Helpers de dropdowns dependientes (protegido: requiere Bearer Token)
	admin := app.Group("/admin", AuthMiddleware(deps.JWTSecret))
	adminHandler := NewAdminHandler(deps.CategoryUC, deps.SubcategoryUC)
	admin.Get("/categories", adminHandler.CategoriesByType)
	admin.Get("/subcategories", adminHandler.SubcategoriesByCategory)
}

func registerTitleRoutes(g fiber.Router, h *TitleHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
