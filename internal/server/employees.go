package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"officehub/internal/schema"
)

// handleListEmployees returns all employees.
func (s *Server) handleListEmployees(c *gin.Context) {
	employees, err := s.store.ListEmployees(c.Request.Context())
	if err != nil {
		s.respondInternal(c, "Failed to fetch employees", err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// handleGetEmployee returns a single employee by id.
func (s *Server) handleGetEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	employee, err := s.store.GetEmployee(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to fetch employee", err)
		return
	}
	if employee == nil {
		respondNotFound(c, "Employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// handleCreateEmployee validates the insert payload and persists it. A
// duplicate email surfaces as a persistence failure, not a validation error.
func (s *Server) handleCreateEmployee(c *gin.Context) {
	var in schema.InsertEmployee
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	employee, errs := in.Validate()
	if errs != nil {
		respondValidation(c, errs)
		return
	}
	created, err := s.store.CreateEmployee(c.Request.Context(), employee)
	if err != nil {
		s.respondInternal(c, "Failed to create employee", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateEmployee merges a partial payload onto an existing employee.
func (s *Server) handleUpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch schema.UpdateEmployee
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadBody(c)
		return
	}
	employee, err := s.store.UpdateEmployee(c.Request.Context(), id, patch)
	var fieldErrs schema.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondValidation(c, fieldErrs)
		return
	}
	if err != nil {
		s.respondInternal(c, "Failed to update employee", err)
		return
	}
	if employee == nil {
		respondNotFound(c, "Employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// handleDeleteEmployee removes an employee. Attendance rows keep their
// employeeId.
func (s *Server) handleDeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteEmployee(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to delete employee", err)
		return
	}
	if !deleted {
		respondNotFound(c, "Employee")
		return
	}
	c.Status(http.StatusNoContent)
}
