package handler

import (
	"bookmarks_api/internal/auth"
	"bookmarks_api/internal/service"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidCredentials = "Credentials are invalid"
	msgAccessDenied       = "Access to resource denied"
	msgUnauthorized       = "Unauthorized"
	msgInternal           = "internal error"
)

type TokenParser interface {
	Parse(token string) (auth.Identity, error)
}

type Handler struct {
	serviceLayer service.Service
	tokens       TokenParser
	log          *slog.Logger
}

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, errMessage string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: errMessage})
}

func NewHandler(srvc service.Service, tokens TokenParser, lgr *slog.Logger) *Handler {
	registerValidators()

	return &Handler{
		serviceLayer: srvc,
		tokens:       tokens,
		log:          lgr,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(h.log), Recovery(h.log))

	router.GET("/healthz", h.Health)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/signin", h.Signin)
	}

	users := router.Group("/users")
	users.Use(AuthMiddleware(h.tokens))
	{
		users.GET("/me", h.GetMe)
		users.PATCH("", h.EditUser)
	}

	bookmarks := router.Group("/bookmarks")
	bookmarks.Use(AuthMiddleware(h.tokens))
	{
		bookmarks.GET("", h.GetBookmarks)
		bookmarks.POST("", h.CreateBookmark)
		bookmarks.GET("/:id", h.GetBookmarkByID)
		bookmarks.PATCH("/:id", h.EditBookmarkByID)
		bookmarks.DELETE("/:id", h.DeleteBookmarkByID)
	}

	return router
}

// GET /healthz
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.serviceLayer.Ping(ctx); err != nil {
		h.log.Error("health check failed", slog.Any("error", err))

		newErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError converts a service error into its status code and body.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Warn("invalid credentials", slog.Any("error", err))

		newErrorResponse(c, http.StatusForbidden, msgInvalidCredentials)
	case errors.Is(err, service.ErrAccessDenied):
		log.Warn("access denied", slog.Any("error", err))

		newErrorResponse(c, http.StatusForbidden, msgAccessDenied)
	case errors.Is(err, service.ErrUnknownUser):
		log.Warn("token subject has no user", slog.Any("error", err))

		newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)
	default:
		log.Error("request failed", slog.Any("error", err))

		newErrorResponse(c, http.StatusInternalServerError, msgInternal)
	}
}

// bindJSON decodes and validates the body into dst. An empty body is accepted
// only when allowEmpty is set. On failure the 400 response is already written.
func bindJSON(c *gin.Context, log *slog.Logger, dst interface{}, allowEmpty bool) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	if allowEmpty && errors.Is(err, io.EOF) {
		return true
	}

	log.Debug("invalid request body", slog.Any("error", err))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp := errorResponse{Message: "validation failed"}
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, fieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, resp)

		return false
	}

	if errors.Is(err, io.EOF) {
		newErrorResponse(c, http.StatusBadRequest, "request body is required")

		return false
	}

	newErrorResponse(c, http.StatusBadRequest, "malformed request body")

	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " should not be empty"
	case "email":
		return fe.Field() + " must be an email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "password":
		return fe.Field() + " must be at most " + strconv.Itoa(auth.MaxPasswordBytes) + " bytes"
	}
	return fe.Field() + " failed on " + fe.Tag()
}

var registerOnce sync.Once

// registerValidators makes validation errors report json field names and
// adds the password length check bcrypt needs.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= auth.MaxPasswordBytes
		})
	})
}
