package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating a note. There is deliberately no owner field:
// the owner is always the authenticated session's user.
type createNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

// @Summary      List notes
// @Tags         notes
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, notes"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/notes [get]
// @Security     BearerAuth
func (h *Handler) listNotes(c *gin.Context) {
	notes, err := h.services.Notes.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeServiceError(c, "notes_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(notes),
		"notes": notes,
	})
}

// @Summary      Create note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body  createNoteRequest  true  "Note payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/notes [post]
// @Security     BearerAuth
func (h *Handler) createNote(c *gin.Context) {
	var req createNoteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	note, err := h.services.Notes.Create(c.Request.Context(), currentUserID(c), req.Content)
	if err != nil {
		h.writeServiceError(c, "note_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// @Summary      Delete note
// @Tags         notes
// @Produce      json
// @Param        id  path  int  true  "Note ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/notes/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteNote(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Notes.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.writeServiceError(c, "note_delete_failed", err, "noteId", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}
