package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// GET /bookmarks
func (h *Handler) GetBookmarks(c *gin.Context) {
	const op = "handler.GetBookmarks"

	log := h.requestLog(c, op)

	identity, ok := identityFrom(c)
	if !ok {
		log.Error("failed to get identity from context")

		newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

		return
	}

	bookmarks, err := h.serviceLayer.GetBookmarks(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, log, err)

		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// POST /bookmarks
func (h *Handler) CreateBookmark(c *gin.Context) {
	const op = "handler.CreateBookmark"

	log := h.requestLog(c, op)

	identity, ok := identityFrom(c)
	if !ok {
		log.Error("failed to get identity from context")

		newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

		return
	}

	var req createBookmarkRequest
	if ok := bindJSON(c, log, &req, false); !ok {
		return
	}

	bookmark, err := h.serviceLayer.CreateBookmark(c.Request.Context(), identity.UserID, req.Title, req.Link, req.Description)
	if err != nil {
		respondError(c, log, err)

		return
	}

	log.Info("bookmark created", slog.String("bookmark_id", bookmark.ID.String()))

	c.JSON(http.StatusCreated, bookmark)
}

// GET /bookmarks/:id
func (h *Handler) GetBookmarkByID(c *gin.Context) {
	const op = "handler.GetBookmarkByID"

	log := h.requestLog(c, op)

	userID, bookmarkID, ok := h.bookmarkTarget(c, log)
	if !ok {
		return
	}

	bookmark, err := h.serviceLayer.GetBookmarkByID(c.Request.Context(), userID, bookmarkID)
	if err != nil {
		respondError(c, log, err)

		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// PATCH /bookmarks/:id
func (h *Handler) EditBookmarkByID(c *gin.Context) {
	const op = "handler.EditBookmarkByID"

	log := h.requestLog(c, op)

	userID, bookmarkID, ok := h.bookmarkTarget(c, log)
	if !ok {
		return
	}

	var req editBookmarkRequest
	if ok := bindJSON(c, log, &req, true); !ok {
		return
	}

	bookmark, err := h.serviceLayer.EditBookmarkByID(c.Request.Context(), userID, bookmarkID, req.toUpdate())
	if err != nil {
		respondError(c, log, err)

		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// DELETE /bookmarks/:id
func (h *Handler) DeleteBookmarkByID(c *gin.Context) {
	const op = "handler.DeleteBookmarkByID"

	log := h.requestLog(c, op)

	userID, bookmarkID, ok := h.bookmarkTarget(c, log)
	if !ok {
		return
	}

	if err := h.serviceLayer.DeleteBookmarkByID(c.Request.Context(), userID, bookmarkID); err != nil {
		respondError(c, log, err)

		return
	}

	log.Info("bookmark deleted", slog.String("bookmark_id", bookmarkID.String()))

	c.Status(http.StatusNoContent)
}

// bookmarkTarget resolves the caller id and the :id path parameter.
func (h *Handler) bookmarkTarget(c *gin.Context, log *slog.Logger) (uuid.UUID, uuid.UUID, bool) {
	identity, ok := identityFrom(c)
	if !ok {
		log.Error("failed to get identity from context")

		newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

		return uuid.Nil, uuid.Nil, false
	}

	bookmarkID, err := uuid.FromString(c.Param("id"))
	if err != nil {
		log.Debug("invalid bookmark id", slog.String("id", c.Param("id")))

		newErrorResponse(c, http.StatusBadRequest, "invalid bookmark id")

		return uuid.Nil, uuid.Nil, false
	}

	return identity.UserID, bookmarkID, true
}
