package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/server/handlers"
)

// Handlers bundles the per-resource handler adapters the router wires up.
type Handlers struct {
	Clientes  *handlers.ClienteHandler
	Articulos *handlers.ArticuloHandler
	Pedidos   *handlers.PedidoHandler
	Reportes  *handlers.ReporteHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/clientes", h.Clientes.List)
	api.GET("/clientes/:id", h.Clientes.Get)
	api.POST("/clientes", h.Clientes.Create)
	api.PUT("/clientes/:id", h.Clientes.Update)
	api.DELETE("/clientes/:id", h.Clientes.Delete)
	api.PATCH("/clientes/:id/notas", h.Clientes.UpdateNotas)

	api.GET("/articulos", h.Articulos.List)
	api.GET("/articulos/categorias", h.Articulos.Categorias)
	api.GET("/articulos/:id", h.Articulos.Get)
	api.POST("/articulos", h.Articulos.Create)
	api.PUT("/articulos/:id", h.Articulos.Update)
	api.DELETE("/articulos/:id", h.Articulos.Delete)

	api.GET("/pedidos", h.Pedidos.List)
	api.GET("/pedidos/:id", h.Pedidos.Get)
	api.POST("/pedidos", h.Pedidos.Create)
	api.PUT("/pedidos/:id", h.Pedidos.Update)
	api.DELETE("/pedidos/:id", h.Pedidos.Delete)
	api.PATCH("/pedidos/:id/estado", h.Pedidos.UpdateEstado)

	api.GET("/reportes/prioridad", h.Reportes.Prioridad)
	api.POST("/reportes/prioridad", h.Reportes.ArchivarPrioridad)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
