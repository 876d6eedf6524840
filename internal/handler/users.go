package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /users/me
func (h *Handler) GetMe(c *gin.Context) {
	const op = "handler.GetMe"

	log := h.requestLog(c, op)

	identity, ok := identityFrom(c)
	if !ok {
		log.Error("failed to get identity from context")

		newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

		return
	}

	user, err := h.serviceLayer.GetUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, log, err)

		return
	}

	c.JSON(http.StatusOK, user)
}

// PATCH /users
//
// The user to edit is always the token subject; ids in the body are ignored.
func (h *Handler) EditUser(c *gin.Context) {
	const op = "handler.EditUser"

	log := h.requestLog(c, op)

	identity, ok := identityFrom(c)
	if !ok {
		log.Error("failed to get identity from context")

		newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

		return
	}

	var req editUserRequest
	if ok := bindJSON(c, log, &req, true); !ok {
		return
	}

	user, err := h.serviceLayer.EditUser(c.Request.Context(), identity.UserID, req.toUpdate())
	if err != nil {
		respondError(c, log, err)

		return
	}

	log.Info("user edited", slog.String("user_id", identity.UserID.String()))

	c.JSON(http.StatusOK, user)
}
