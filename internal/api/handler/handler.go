// Package handler exposes the complaint service over HTTP with gin.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"complaintdesk/backend/internal/models"
)

// ComplaintService is what the handlers need from the service layer.
type ComplaintService interface {
	Create(ctx context.Context, complaint *models.Complaint) (*models.Complaint, error)
	List(ctx context.Context) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Complaint, error)
	Delete(ctx context.Context, id string) error
}

// Handler holds the complaint service used by all routes.
type Handler struct {
	Service ComplaintService
}

func NewHandler(svc ComplaintService) *Handler {
	return &Handler{Service: svc}
}

// RegisterRoutes wires the complaint endpoints onto the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/complaints", h.CreateComplaint)
	r.GET("/complaints", h.ListComplaints)
	r.PATCH("/complaints/:id", h.UpdateComplaintStatus)
	r.DELETE("/complaints/:id", h.DeleteComplaint)
}
