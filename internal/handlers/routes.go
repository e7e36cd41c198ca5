package handlers

import (
	"net/http"

	"card-shuffler-go/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterDeckRoutes wires the read-only deck endpoints.
func RegisterDeckRoutes(rg *gin.RouterGroup) {
	rg.GET("/deck", DeckHandler(models.OrderInitial))
	rg.GET("/deck/sorted", DeckHandler(models.OrderSorted))
	rg.GET("/deck/shuffle", DeckHandler(models.OrderShuffled))
}

// RegisterCardRoutes wires single-card helpers.
func RegisterCardRoutes(rg *gin.RouterGroup) {
	rg.GET("/cards/compare", CompareCardsHandler())
	rg.GET("/cards/describe", DescribeCardHandler())
}

// NewRouter builds the API engine without process-level middleware
// (tracing, CORS), which cmd/server adds.
func NewRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware...)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.NoRoute(func(c *gin.Context) { writeAPIError(c, errNoRoute) })

	api := r.Group("/api")
	RegisterDeckRoutes(api)
	RegisterCardRoutes(api)
	return r
}
