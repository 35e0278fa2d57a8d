package auth

import (
	"errors"
	"net/http"

	"localguide/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/login/provider", h.LoginWithProvider)
		authGroup.POST("/login/demo", h.DemoLogin)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.POST("/logout", h.Logout)
	}
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, response.CodeConflict, "This email is already registered")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Role must be tourist or guide")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  userResponse(result.User),
		"token": result.Token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Email or password is incorrect")
		case errors.Is(err, ErrAccountBanned):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Account is suspended")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  userResponse(result.User),
		"token": result.Token,
	})
}

func (h *Handler) LoginWithProvider(c *gin.Context) {
	var req ProviderLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	result, err := h.service.LoginWithProvider(c.Request.Context(), req.Provider)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownProvider):
			response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Provider must be google or facebook")
		case errors.Is(err, ErrAccountBanned):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Account is suspended")
		default:
			response.Error(c, http.StatusServiceUnavailable, response.CodeUnavailable, "Provider login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  userResponse(result.User),
		"token": result.Token,
	})
}

func (h *Handler) DemoLogin(c *gin.Context) {
	var req DemoLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	result, err := h.service.DemoLogin(c.Request.Context(), req.Role)
	if err != nil {
		if errors.Is(err, ErrInvalidRole) {
			response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Unknown role")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  userResponse(result.User),
		"token": result.Token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	_ = h.service.Logout(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userResponse(user)})
}
