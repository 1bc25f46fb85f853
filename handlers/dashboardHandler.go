package handlers

import (
	"ClaimTrack/config"
	"ClaimTrack/middlewares"
	"ClaimTrack/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *services.DashboardService
	smtp    config.SMTPConfig
}

func NewDashboardHandler(service *services.DashboardService, smtp config.SMTPConfig) *DashboardHandler {
	return &DashboardHandler{service: service, smtp: smtp}
}

// GetDashboard returns claim totals, billed/paid sums, average
// underpayment, status counts, top payers and recent notes.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dash, err := h.service.Get(c)
	if err != nil {
		middlewares.HttpError(c, "failed to load dashboard", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// SendFlaggedDigest emails the flagged-claims report to the configured
// recipient.
func (h *DashboardHandler) SendFlaggedDigest(c *gin.Context) {
	count, err := h.service.SendFlaggedDigest(c, h.smtp)
	if err != nil {
		middlewares.HttpError(c, "failed to send digest", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Digest sent", "claims": count})
}
