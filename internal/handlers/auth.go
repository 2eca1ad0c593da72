package handlers

import (
	"errors"
	"net/http"

	"lifeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      201  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) || errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "registration failed", "auth_register_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Log in
// @Description  Verifies credentials, starts a session and sets the session cookie. The token is also returned for non-browser clients.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	ctx := c.Request.Context()
	userID, err := h.services.Verify(ctx, input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.services.Sessions.Start(ctx, userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "login failed", "session_start_failed", err, "userId", userID)
		return
	}

	// Browser-session cookie; the server-side TTL bounds its real lifetime.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "username": input.Username})
}

// @Summary      Log out
// @Description  Revokes the session server-side and clears the cookie. Idempotent.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	if err := h.services.Sessions.End(c.Request.Context(), sessionToken(c)); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "logout failed", "session_end_failed", err)
		return
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
