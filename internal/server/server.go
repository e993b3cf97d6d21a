package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"officehub/internal/schema"
	"officehub/internal/storage"
)

// Server provides HTTP handlers for the office dashboard backend.
type Server struct {
	engine    *gin.Engine
	store     storage.Store
	logger    *slog.Logger
	staticDir string
	indexFile string
}

// New constructs the HTTP server with routes and middleware configured. The
// store is injected so tests can run against a fresh in-memory instance.
func New(store storage.Store, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter))

	srv := &Server{
		engine:    router,
		store:     store,
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		projects := api.Group("/projects")
		{
			projects.GET("", s.handleListProjects)
			projects.POST("", s.handleCreateProject)
			projects.GET(":id", s.handleGetProject)
			projects.PATCH(":id", s.handleUpdateProject)
			projects.DELETE(":id", s.handleDeleteProject)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", s.handleListTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.GET(":id", s.handleGetTask)
			tasks.PATCH(":id", s.handleUpdateTask)
			tasks.DELETE(":id", s.handleDeleteTask)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", s.handleListEmployees)
			employees.POST("", s.handleCreateEmployee)
			employees.GET(":id", s.handleGetEmployee)
			employees.PATCH(":id", s.handleUpdateEmployee)
			employees.DELETE(":id", s.handleDeleteEmployee)
		}

		finances := api.Group("/finances")
		{
			finances.GET("", s.handleListFinances)
			finances.POST("", s.handleCreateFinance)
			finances.GET(":id", s.handleGetFinance)
			finances.PATCH(":id", s.handleUpdateFinance)
			finances.DELETE(":id", s.handleDeleteFinance)
		}

		attendance := api.Group("/attendance")
		{
			attendance.GET("", s.handleListAttendance)
			attendance.POST("", s.handleCreateAttendance)
			attendance.GET(":id", s.handleGetAttendance)
			attendance.PATCH(":id", s.handleUpdateAttendance)
			attendance.DELETE(":id", s.handleDeleteAttendance)
		}
	}

	s.mountStatic()

	// Unknown API paths always get a JSON 404, even in API-only mode;
	// everything else falls back to the SPA entry point when one is mounted.
	s.engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Endpoint not found"})
			return
		}
		if s.indexFile != "" {
			c.File(s.indexFile)
			return
		}
		c.Status(http.StatusNotFound)
	})
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts the :id path parameter with error handling.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid identifier"})
		return 0, false
	}
	return id, true
}

// respondInternal logs the cause and returns a generic message; the original
// error never reaches the caller.
func (s *Server) respondInternal(c *gin.Context, msg string, err error) {
	s.logger.Error("request failed",
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}

// respondValidation returns per-field detail so the client can render
// field-level feedback.
func respondValidation(c *gin.Context, errs schema.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "errors": errs})
}

// respondNotFound reports a missing entity, distinct from validation and
// transport failures.
func respondNotFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
}

// respondBadBody reports a body that could not be decoded at all.
func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
}
