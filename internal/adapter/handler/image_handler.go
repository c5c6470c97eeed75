package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blacha370/Image-Service/internal/adapter/handler/dto/response"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
	"github.com/blacha370/Image-Service/internal/pkg/httputil"
)

type ImageHandler struct {
	imageSvc ImageService
}

func NewImageHandler(imageSvc ImageService) *ImageHandler {
	return &ImageHandler{imageSvc: imageSvc}
}

// List godoc
//
//	@Summary		List images
//	@Description	List the caller's images with links to their details
//	@Tags			images
//	@Produce		json
//	@Success		200	{array}	response.ImageResponse
//	@Security		BearerAuth
//	@Router			/images [get]
func (h *ImageHandler) List(c *gin.Context) {
	accountID := httputil.GetAccountID(c)

	images, err := h.imageSvc.List(c.Request.Context(), accountID)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	detailsBase := "/api/v1/images/details/"
	httputil.OK(c, response.ImagesFromEntities(images, detailsBase))
}

// ListDetails godoc
//
//	@Summary		List images with thumbnails
//	@Description	List the caller's images together with every generated thumbnail
//	@Tags			images
//	@Produce		json
//	@Success		200	{array}	response.ImageResponse
//	@Security		BearerAuth
//	@Router			/images/details [get]
func (h *ImageHandler) ListDetails(c *gin.Context) {
	accountID := httputil.GetAccountID(c)

	details, err := h.imageSvc.ListWithThumbnails(c.Request.Context(), accountID)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.DetailsFromUsecase(details))
}

// GetDetails godoc
//
//	@Summary		Get one image with thumbnails
//	@Description	Fetch a single image owned by the caller, by asset name
//	@Tags			images
//	@Produce		json
//	@Param			name	path		string	true	"Image asset name"
//	@Success		200		{object}	response.ImageResponse
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Security		BearerAuth
//	@Router			/images/details/{name} [get]
func (h *ImageHandler) GetDetails(c *gin.Context) {
	name := c.Param("name")
	if !strings.HasSuffix(name, entity.ExtJPG) && !strings.HasSuffix(name, entity.ExtPNG) {
		httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "image not found")
		return
	}

	accountID := httputil.GetAccountID(c)

	detail, err := h.imageSvc.GetByName(c.Request.Context(), accountID, name)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "image not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.DetailFromUsecase(detail))
}
