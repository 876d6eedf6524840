package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /auth/signup
func (h *Handler) Signup(c *gin.Context) {
	const op = "handler.Signup"

	log := h.requestLog(c, op)

	var req authRequest
	if ok := bindJSON(c, log, &req, false); !ok {
		return
	}

	user, token, err := h.serviceLayer.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, log, err)

		return
	}

	c.JSON(http.StatusCreated, signupResponse{AccessToken: token, User: user})
}

// POST /auth/signin
func (h *Handler) Signin(c *gin.Context) {
	const op = "handler.Signin"

	log := h.requestLog(c, op)

	var req authRequest
	if ok := bindJSON(c, log, &req, false); !ok {
		return
	}

	token, err := h.serviceLayer.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, log, err)

		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
