package profile

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"localguide/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxAvatarBytes = 5 << 20

type Handler struct {
	service   *Service
	uploadDir string
}

func NewHandler(service *Service, uploadDir string) *Handler {
	return &Handler{service: service, uploadDir: uploadDir}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/profiles/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	profiles := protected.Group("/profiles")
	{
		profiles.GET("/me", h.GetMine)
		profiles.PUT("/me", h.Update)
		profiles.POST("/me/avatar", h.UploadAvatar)
	}
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) GetMine(c *gin.Context) {
	p, err := h.service.GetByUserID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Profile not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Could not update profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, "No avatar file uploaded")
		return
	}
	if file.Size > maxAvatarBytes {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeValidationFailed, "Avatar exceeds 5MB limit")
		return
	}

	dir := filepath.Join(h.uploadDir, "avatars")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create upload directory")
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to save file")
		return
	}

	url := "/static/avatars/" + filename
	p, err := h.service.SetAvatar(c.Request.Context(), c.GetString("user_id"), url)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to save avatar reference")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"avatar_url": url,
		"profile":    p,
	})
}
