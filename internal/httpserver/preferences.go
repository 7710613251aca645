package httpserver

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/validation"
)

const userIDHeader = "X-User-Id"

// maxProfileImageBody caps the profile image request including JSON overhead.
const maxProfileImageBody = 3 << 20

// PreferenceService is the subset of the preference service used by handlers.
type PreferenceService interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	SetTheme(ctx context.Context, userID string, p validation.ThemePayload) (*domain.Preferences, error)
	SetProfileImage(ctx context.Context, userID string, p validation.ProfileImagePayload) (*domain.Preferences, error)
}

type preferenceHandlers struct {
	svc    PreferenceService
	logger *log.Logger
}

// getTheme godoc
// @Summary  Get theme preference
// @Tags     users
// @Produce  json
// @Param    X-User-Id  header    string  true  "User id"
// @Success  200        {object}  dataResponse{data=validation.ThemePayload}
// @Failure  400        {object}  errorResponse
// @Router   /users/preferences/theme [get]
func (h *preferenceHandlers) getTheme(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.GetHeader(userIDHeader))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, validation.ThemePayload{Theme: p.Theme})
}

// setTheme godoc
// @Summary  Update theme preference
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    X-User-Id  header    string                   true  "User id"
// @Param    theme      body      validation.ThemePayload  true  "light or dark"
// @Success  200        {object}  dataResponse{data=validation.ThemePayload}
// @Failure  400        {object}  errorResponse
// @Router   /users/preferences/theme [put]
func (h *preferenceHandlers) setTheme(c *gin.Context) {
	var body validation.ThemePayload
	if err := bindJSON(c, &body); err != nil {
		writeError(c, h.logger, err)
		return
	}
	p, err := h.svc.SetTheme(c.Request.Context(), c.GetHeader(userIDHeader), body)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, validation.ThemePayload{Theme: p.Theme})
}

// getProfileImage godoc
// @Summary  Get profile image
// @Tags     users
// @Produce  json
// @Param    X-User-Id  header    string  true  "User id"
// @Success  200        {object}  dataResponse{data=validation.ProfileImagePayload}
// @Failure  400        {object}  errorResponse
// @Router   /users/profile-image [get]
func (h *preferenceHandlers) getProfileImage(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.GetHeader(userIDHeader))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, validation.ProfileImagePayload{ProfileImage: p.ProfileImage})
}

// setProfileImage godoc
// @Summary  Update profile image
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    X-User-Id     header    string                          true  "User id"
// @Param    profileImage  body      validation.ProfileImagePayload  true  "Data URL or link, at most 2 MiB"
// @Success  200           {object}  dataResponse{data=validation.ProfileImagePayload}
// @Failure  400           {object}  errorResponse
// @Router   /users/profile-image [put]
func (h *preferenceHandlers) setProfileImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxProfileImageBody)
	var body validation.ProfileImagePayload
	if err := bindJSON(c, &body); err != nil {
		writeError(c, h.logger, err)
		return
	}
	p, err := h.svc.SetProfileImage(c.Request.Context(), c.GetHeader(userIDHeader), body)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	respondData(c, http.StatusOK, validation.ProfileImagePayload{ProfileImage: p.ProfileImage})
}
