package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"officehub/internal/schema"
)

// handleListTasks returns all tasks, filtered by project when the projectId
// query parameter is present.
func (s *Server) handleListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	if raw := c.Query("projectId"); raw != "" {
		projectID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid projectId parameter"})
			return
		}
		tasks, err := s.store.ListTasksByProject(ctx, projectID)
		if err != nil {
			s.respondInternal(c, "Failed to fetch tasks", err)
			return
		}
		c.JSON(http.StatusOK, tasks)
		return
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		s.respondInternal(c, "Failed to fetch tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// handleGetTask returns a single task by id.
func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := s.store.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to fetch task", err)
		return
	}
	if task == nil {
		respondNotFound(c, "Task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleCreateTask validates the insert payload and persists it.
func (s *Server) handleCreateTask(c *gin.Context) {
	var in schema.InsertTask
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	task, errs := in.Validate()
	if errs != nil {
		respondValidation(c, errs)
		return
	}
	created, err := s.store.CreateTask(c.Request.Context(), task)
	if err != nil {
		s.respondInternal(c, "Failed to create task", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateTask merges a partial payload onto an existing task.
func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch schema.UpdateTask
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadBody(c)
		return
	}
	task, err := s.store.UpdateTask(c.Request.Context(), id, patch)
	var fieldErrs schema.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondValidation(c, fieldErrs)
		return
	}
	if err != nil {
		s.respondInternal(c, "Failed to update task", err)
		return
	}
	if task == nil {
		respondNotFound(c, "Task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleDeleteTask removes a task.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteTask(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to delete task", err)
		return
	}
	if !deleted {
		respondNotFound(c, "Task")
		return
	}
	c.Status(http.StatusNoContent)
}
