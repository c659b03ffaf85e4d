package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yandre13/ytextract/internal/models"
	"github.com/yandre13/ytextract/internal/services/video"
	"github.com/yandre13/ytextract/internal/utils"
)

type VideoHandler struct {
	service *video.Service
}

func NewVideoHandler(service *video.Service) *VideoHandler {
	return &VideoHandler{service: service}
}

// ExtractGet godoc
// @Summary Extract a playable video URL and metadata
// @Description Resolve a YouTube URL (given as the trailing path segment, URL-encoded) into a direct playable URL plus metadata
// @Tags extract
// @Produce json
// @Param url path string true "YouTube video URL (encoded)"
// @Success 200 {object} models.ExtractedResponse
// @Failure 400 {object} utils.APIError
// @Failure 403 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Failure 500 {object} utils.APIError
// @Router /extract/{url} [get]
func (h *VideoHandler) ExtractGet(c *gin.Context) {
	h.extract(c, rawURLFromPath(c))
}

// ExtractPost godoc
// @Summary Extract a playable video URL and metadata
// @Description Same pipeline as GET /extract/{url}, with the URL in a JSON body
// @Tags extract
// @Accept json
// @Produce json
// @Param request body models.ExtractRequest true "Video URL"
// @Success 200 {object} models.ExtractedResponse
// @Failure 400 {object} utils.APIError
// @Failure 403 {object} utils.APIError
// @Failure 404 {object} utils.APIError
// @Failure 500 {object} utils.APIError
// @Router /extract [post]
func (h *VideoHandler) ExtractPost(c *gin.Context) {
	var req models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		h.errorResponse(c, utils.NewMissingURLError())
		return
	}

	h.extract(c, req.URL)
}

// Formats godoc
// @Summary List the raw candidate formats for a video
// @Description Return every format the extraction backend reports, without applying the selection policy
// @Tags extract
// @Produce json
// @Param url path string true "YouTube video URL (encoded)"
// @Success 200 {object} models.FormatsResponse
// @Failure 400 {object} utils.APIError
// @Failure 500 {object} utils.APIError
// @Router /formats/{url} [get]
func (h *VideoHandler) Formats(c *gin.Context) {
	ctx := c.Request.Context()

	response, err := h.service.Formats(ctx, rawURLFromPath(c))
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *VideoHandler) extract(c *gin.Context, rawURL string) {
	ctx := c.Request.Context()

	response, err := h.service.Extract(ctx, rawURL)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *VideoHandler) errorResponse(c *gin.Context, err error) {
	if apiErr, ok := err.(*utils.APIError); ok {
		c.JSON(apiErr.StatusCode, apiErr)
		return
	}

	utils.LogError(c.Request.Context(), "Unhandled error", err)
	internal := utils.NewInternalError()
	c.JSON(internal.StatusCode, internal)
}

// rawURLFromPath recovers the full URL from the wildcard path parameter,
// reattaching any query string gin split off (e.g. the ?v= of an unencoded
// watch URL).
func rawURLFromPath(c *gin.Context) string {
	raw := strings.TrimPrefix(c.Param("url"), "/")
	if query := c.Request.URL.RawQuery; query != "" {
		raw += "?" + query
	}
	return raw
}
