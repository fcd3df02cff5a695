package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/models"
)

// createComplaintRequest is the creation payload. Status, id and
// dateSubmitted are never client-settable: the service applies the
// creation defaults and the store assigns the id.
type createComplaintRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    models.Category `json:"category"`
	Priority    models.Priority `json:"priority"`
}

type updateStatusRequest struct {
	Status models.Status `json:"status"`
}

// CreateComplaint handles POST /complaints.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON payload."})
		return
	}

	candidate := models.Complaint{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	}

	created, err := h.Service.Create(c.Request.Context(), &candidate)
	if err != nil {
		var verr *complaint.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation Error", "errors": verr.Fields})
			return
		}
		log.Printf("POST /complaints error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create complaint", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Complaint submitted successfully", "complaint": created})
}

// ListComplaints handles GET /complaints. The store returns records
// newest first; an empty store yields an empty array.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Service.List(c.Request.Context())
	if err != nil {
		log.Printf("GET /complaints error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve complaints", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// UpdateComplaintStatus handles PATCH /complaints/:id. Only the status
// field may change.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status field is required for update."})
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		var verr *complaint.ValidationError
		switch {
		case errors.Is(err, complaint.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Complaint not found."})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation Error", "errors": verr.Fields})
		default:
			log.Printf("PATCH /complaints/%s error: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update complaint", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteComplaint handles DELETE /complaints/:id.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, complaint.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Complaint not found."})
			return
		}
		log.Printf("DELETE /complaints/%s error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete complaint", "error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
