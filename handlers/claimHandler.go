package handlers

import (
	"ClaimTrack/middlewares"
	"ClaimTrack/models"
	"ClaimTrack/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	service *services.ClaimService
}

func NewClaimHandler(service *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{service: service}
}

// parseID reads the numeric claim id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middlewares.HttpError(c, "invalid claim id", http.StatusBadRequest, err)
		return 0, false
	}
	return uint(id), true
}

func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var claim models.Claim
	if err := c.ShouldBindJSON(&claim); err != nil {
		middlewares.HttpError(c, "invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := h.service.Create(c, &claim); err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, claim)
}

func (h *ClaimHandler) GetClaimByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	claim, err := h.service.GetByID(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to get claim", http.StatusInternalServerError, err)
		return
	}
	if claim == nil {
		middlewares.HttpError(c, "Claim not found", http.StatusNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// ListClaims supports ?q= substring search and ?status= filtering; the
// result is ordered by last_updated descending.
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	claims, err := h.service.Search(c, c.Query("q"), c.Query("status"))
	if err != nil {
		middlewares.HttpError(c, "failed to list claims", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

// ListStatuses returns the distinct status values observed in the data.
func (h *ClaimHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.service.Statuses(c)
	if err != nil {
		middlewares.HttpError(c, "failed to list statuses", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (h *ClaimHandler) UpdateClaim(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var claim models.Claim
	if err := c.ShouldBindJSON(&claim); err != nil {
		middlewares.HttpError(c, "invalid request body", http.StatusBadRequest, err)
		return
	}
	claim.ID = id
	if err := h.service.Update(c, &claim); err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *ClaimHandler) ToggleFlag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	claim, err := h.service.ToggleFlag(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to toggle flag", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *ClaimHandler) DeleteClaim(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		middlewares.HttpError(c, "failed to delete claim", http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
