package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"officehub/internal/schema"
)

// handleListFinances returns all ledger entries.
func (s *Server) handleListFinances(c *gin.Context) {
	finances, err := s.store.ListFinances(c.Request.Context())
	if err != nil {
		s.respondInternal(c, "Failed to fetch finances", err)
		return
	}
	c.JSON(http.StatusOK, finances)
}

// handleGetFinance returns a single ledger entry by id.
func (s *Server) handleGetFinance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	finance, err := s.store.GetFinance(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to fetch finance record", err)
		return
	}
	if finance == nil {
		respondNotFound(c, "Finance record")
		return
	}
	c.JSON(http.StatusOK, finance)
}

// handleCreateFinance validates the insert payload and persists it.
func (s *Server) handleCreateFinance(c *gin.Context) {
	var in schema.InsertFinance
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	finance, errs := in.Validate()
	if errs != nil {
		respondValidation(c, errs)
		return
	}
	created, err := s.store.CreateFinance(c.Request.Context(), finance)
	if err != nil {
		s.respondInternal(c, "Failed to create finance record", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateFinance merges a partial payload onto an existing entry.
func (s *Server) handleUpdateFinance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch schema.UpdateFinance
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadBody(c)
		return
	}
	finance, err := s.store.UpdateFinance(c.Request.Context(), id, patch)
	var fieldErrs schema.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondValidation(c, fieldErrs)
		return
	}
	if err != nil {
		s.respondInternal(c, "Failed to update finance record", err)
		return
	}
	if finance == nil {
		respondNotFound(c, "Finance record")
		return
	}
	c.JSON(http.StatusOK, finance)
}

// handleDeleteFinance removes a ledger entry.
func (s *Server) handleDeleteFinance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteFinance(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to delete finance record", err)
		return
	}
	if !deleted {
		respondNotFound(c, "Finance record")
		return
	}
	c.Status(http.StatusNoContent)
}
