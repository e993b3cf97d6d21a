package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"officehub/internal/schema"
)

// handleListProjects returns all projects.
func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.store.ListProjects(c.Request.Context())
	if err != nil {
		s.respondInternal(c, "Failed to fetch projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// handleGetProject returns a single project by id.
func (s *Server) handleGetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := s.store.GetProject(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to fetch project", err)
		return
	}
	if project == nil {
		respondNotFound(c, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// handleCreateProject validates the insert payload and persists it.
func (s *Server) handleCreateProject(c *gin.Context) {
	var in schema.InsertProject
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	project, errs := in.Validate()
	if errs != nil {
		respondValidation(c, errs)
		return
	}
	created, err := s.store.CreateProject(c.Request.Context(), project)
	if err != nil {
		s.respondInternal(c, "Failed to create project", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateProject merges a partial payload onto an existing project.
func (s *Server) handleUpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch schema.UpdateProject
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadBody(c)
		return
	}
	project, err := s.store.UpdateProject(c.Request.Context(), id, patch)
	var fieldErrs schema.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondValidation(c, fieldErrs)
		return
	}
	if err != nil {
		s.respondInternal(c, "Failed to update project", err)
		return
	}
	if project == nil {
		respondNotFound(c, "Project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// handleDeleteProject removes a project. Tasks keep their projectId.
func (s *Server) handleDeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteProject(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to delete project", err)
		return
	}
	if !deleted {
		respondNotFound(c, "Project")
		return
	}
	c.Status(http.StatusNoContent)
}
