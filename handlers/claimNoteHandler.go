package handlers

import (
	"ClaimTrack/middlewares"
	"ClaimTrack/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClaimNoteHandler struct {
	service *services.ClaimNoteService
}

func NewClaimNoteHandler(service *services.ClaimNoteService) *ClaimNoteHandler {
	return &ClaimNoteHandler{service: service}
}

type noteRequest struct {
	Body string `json:"body"`
}

// AddNote appends a note to a claim, attributed to the authenticated
// actor when one is present in the context.
func (h *ClaimNoteHandler) AddNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "invalid request body", http.StatusBadRequest, err)
		return
	}

	var authorID *int64
	if userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context()); err == nil {
		authorID = &userID
	}

	note, err := h.service.Add(c, id, authorID, req.Body)
	if err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// ListNotes returns a claim's notes, newest first.
func (h *ClaimNoteHandler) ListNotes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	notes, err := h.service.ListByClaim(c, id)
	if err != nil {
		middlewares.HttpError(c, "failed to list notes", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}
