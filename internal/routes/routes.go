package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/store-reservations/internal/audit"
	"github.com/BruksfildServices01/store-reservations/internal/catalog"
	"github.com/BruksfildServices01/store-reservations/internal/config"
	"github.com/BruksfildServices01/store-reservations/internal/handlers"
	"github.com/BruksfildServices01/store-reservations/internal/media"
	"github.com/BruksfildServices01/store-reservations/internal/middleware"
	"github.com/BruksfildServices01/store-reservations/internal/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/session"
	ucProduct "github.com/BruksfildServices01/store-reservations/internal/usecase/product"
	ucReservation "github.com/BruksfildServices01/store-reservations/internal/usecase/reservation"
)

// Deps are the long-lived singletons built in main.
type Deps struct {
	Config       *config.Config
	Logger       *zap.Logger
	Products     *catalog.Store
	Reservations *reservation.Store
	Auth         *session.Authenticator
	Images       ucProduct.ImageUploader
	AuditLogs    audit.Reader

	// MediaFiles is set when uploads are kept in memory.
	MediaFiles *media.MemoryStore
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// USE CASES
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(d.Products, d.Reservations)
	updateStatusUC := ucReservation.NewUpdateReservationStatus(d.Reservations)
	listReservationsUC := ucReservation.NewListReservations(d.Products, d.Reservations, d.Config.StoreTimezone)
	dashboardUC := ucReservation.NewDashboard(d.Products, d.Reservations, d.Config.StoreTimezone)

	createProductUC := ucProduct.NewCreateProduct(d.Products)
	updateProductUC := ucProduct.NewUpdateProduct(d.Products)
	deleteProductUC := ucProduct.NewDeleteProduct(d.Products)
	setImageUC := ucProduct.NewSetProductImage(d.Products, d.Images)

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(d.Products)
	reservationHandler := handlers.NewReservationHandler(createReservationUC)
	authHandler := handlers.NewAuthHandler(d.Auth)

	adminProductHandler := handlers.NewAdminProductHandler(
		d.Products,
		createProductUC,
		updateProductUC,
		deleteProductUC,
		setImageUC,
	)
	adminReservationHandler := handlers.NewAdminReservationHandler(
		listReservationsUC,
		updateStatusUC,
	)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.MediaFiles != nil {
		r.GET("/media/*key", handlers.NewMediaHandler(d.MediaFiles).Get)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// STOREFRONT
		// ------------------------------
		api.GET("/products", catalogHandler.List)
		api.GET("/products/:id", catalogHandler.Get)
		api.GET("/categories", catalogHandler.Categories)
		api.GET("/categories/:gender/:slug/products", catalogHandler.ByCategory)

		api.POST("/reservations", reservationHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminMiddleware(d.Auth))
		{
			admin.GET("/products", adminProductHandler.List)
			admin.POST("/products", adminProductHandler.Create)
			admin.PATCH("/products/:id", adminProductHandler.Update)
			admin.DELETE("/products/:id", adminProductHandler.Delete)
			admin.POST("/products/:id/image", adminProductHandler.UploadImage)

			admin.GET("/reservations", adminReservationHandler.List)
			admin.PATCH("/reservations/:id/status", adminReservationHandler.UpdateStatus)
			admin.PATCH("/reservations/:id/confirm", adminReservationHandler.Confirm)
			admin.PATCH("/reservations/:id/cancel", adminReservationHandler.Cancel)
			admin.PATCH("/reservations/:id/complete", adminReservationHandler.Complete)

			admin.GET("/dashboard", dashboardHandler.Get)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
