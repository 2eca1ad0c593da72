package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating a task. No owner field by design.
type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
}

// @Summary      List tasks
// @Description  Returns the caller's tasks, newest first.
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, tasks"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeServiceError(c, "tasks_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(tasks),
		"tasks": tasks,
	})
}

// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body  createTaskRequest  true  "Task payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	task, err := h.services.Tasks.Create(c.Request.Context(), currentUserID(c), req.Title, req.Description)
	if err != nil {
		h.writeServiceError(c, "task_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// @Summary      Toggle task completion
// @Tags         tasks
// @Produce      json
// @Param        id  path  int  true  "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/tasks/{id}/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleTask(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	task, err := h.services.Tasks.Toggle(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.writeServiceError(c, "task_toggle_failed", err, "taskId", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// @Summary      Delete task
// @Tags         tasks
// @Produce      json
// @Param        id  path  int  true  "Task ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Tasks.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.writeServiceError(c, "task_delete_failed", err, "taskId", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}
