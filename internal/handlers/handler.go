package handlers

import (
	"lifeboard/internal/logger"
	"lifeboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		// logout needs the session to revoke, so it sits behind the gate
		auth.POST("/logout", h.sessionMiddleware, h.logout)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.sessionMiddleware)
	{
		h.registerNoteRoutes(api)
		h.registerTaskRoutes(api)
		h.registerPortfolioRoutes(api)
	}
}

func (h *Handler) registerNoteRoutes(api *gin.RouterGroup) {
	notes := api.Group("/notes")
	{
		notes.GET("", h.listNotes)
		notes.POST("", h.createNote)
		notes.DELETE("/:id", h.deleteNote)
	}
}

func (h *Handler) registerTaskRoutes(api *gin.RouterGroup) {
	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.POST("/:id/toggle", h.toggleTask)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

func (h *Handler) registerPortfolioRoutes(api *gin.RouterGroup) {
	portfolio := api.Group("/portfolio")
	{
		portfolio.GET("", h.listHoldings)
		portfolio.POST("", h.addHolding)
		portfolio.DELETE("/:id", h.deleteHolding)
		portfolio.GET("/search-stock", h.searchStock)
		// Live valuation stream (HTTP upgrade) — same port
		portfolio.GET("/ws", h.wsPortfolio)
	}
}
