package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"

	"officehub/internal/schema"
)

// handleListAttendance returns attendance records, filtered by the first
// matching query parameter: date, then employeeId, then startDate+endDate.
func (s *Server) handleListAttendance(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("date"); raw != "" {
		date, err := dateparse.ParseAny(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date parameter"})
			return
		}
		records, err := s.store.ListAttendanceByDate(ctx, date)
		if err != nil {
			s.respondInternal(c, "Failed to fetch attendance records", err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	if raw := c.Query("employeeId"); raw != "" {
		employeeID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employeeId parameter"})
			return
		}
		records, err := s.store.ListAttendanceByEmployee(ctx, employeeID)
		if err != nil {
			s.respondInternal(c, "Failed to fetch attendance records", err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	if rawStart, rawEnd := c.Query("startDate"), c.Query("endDate"); rawStart != "" && rawEnd != "" {
		start, err := dateparse.ParseAny(rawStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid startDate parameter"})
			return
		}
		end, err := dateparse.ParseAny(rawEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid endDate parameter"})
			return
		}
		records, err := s.store.ListAttendanceByDateRange(ctx, start.UTC(), end.UTC())
		if err != nil {
			s.respondInternal(c, "Failed to fetch attendance records", err)
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	records, err := s.store.ListAttendance(ctx)
	if err != nil {
		s.respondInternal(c, "Failed to fetch attendance records", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// handleGetAttendance returns a single record by id.
func (s *Server) handleGetAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	record, err := s.store.GetAttendance(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to fetch attendance record", err)
		return
	}
	if record == nil {
		respondNotFound(c, "Attendance record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// handleCreateAttendance validates the insert payload and persists it.
func (s *Server) handleCreateAttendance(c *gin.Context) {
	var in schema.InsertAttendance
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	record, errs := in.Validate()
	if errs != nil {
		respondValidation(c, errs)
		return
	}
	created, err := s.store.CreateAttendance(c.Request.Context(), record)
	if err != nil {
		s.respondInternal(c, "Failed to create attendance record", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateAttendance merges a partial payload onto an existing record.
func (s *Server) handleUpdateAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch schema.UpdateAttendance
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadBody(c)
		return
	}
	record, err := s.store.UpdateAttendance(c.Request.Context(), id, patch)
	var fieldErrs schema.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondValidation(c, fieldErrs)
		return
	}
	if err != nil {
		s.respondInternal(c, "Failed to update attendance record", err)
		return
	}
	if record == nil {
		respondNotFound(c, "Attendance record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// handleDeleteAttendance removes a record.
func (s *Server) handleDeleteAttendance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteAttendance(c.Request.Context(), id)
	if err != nil {
		s.respondInternal(c, "Failed to delete attendance record", err)
		return
	}
	if !deleted {
		respondNotFound(c, "Attendance record")
		return
	}
	c.Status(http.StatusNoContent)
}
