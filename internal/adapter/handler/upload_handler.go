package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blacha370/Image-Service/internal/adapter/handler/dto/response"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/pkg/httputil"
	"github.com/blacha370/Image-Service/internal/usecase/upload"
)

const maxUploadSize = 10 << 20 // 10MB

type UploadHandler struct {
	uploadSvc UploadService
}

func NewUploadHandler(uploadSvc UploadService) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Store an image and generate the thumbnails the caller's tier grants
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"JPEG or PNG image"
//	@Success		201		{object}	response.ImageResponse
//	@Failure		403		{object}	httputil.ErrorResponse	"No subscription"
//	@Failure		415		{object}	httputil.ErrorResponse	"Unsupported media type"
//	@Failure		422		{object}	httputil.ErrorResponse
//	@Security		BearerAuth
//	@Router			/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusUnprocessableEntity, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		httputil.ErrorWithCode(c, http.StatusUnsupportedMediaType, "INVALID_TYPE", "only jpeg and png images are allowed")
		return
	}

	accountID := httputil.GetAccountID(c)

	result, err := h.uploadSvc.Upload(c.Request.Context(), upload.UploadInput{
		AccountID: accountID,
		File:      file,
		Filename:  header.Filename,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotSubscribed):
			httputil.ErrorWithCode(c, http.StatusForbidden, "NOT_SUBSCRIBED", "account has no subscription")
		case errors.Is(err, domain.ErrUnsupportedExtension):
			httputil.ErrorWithCode(c, http.StatusUnsupportedMediaType, "INVALID_TYPE", "only jpeg and png images are allowed")
		case errors.Is(err, domain.ErrImageDecode):
			httputil.ErrorWithCode(c, http.StatusUnprocessableEntity, "INVALID_IMAGE", "file is not a decodable image")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.Created(c, response.UploadResultToResponse(result))
}

func isAllowedImageType(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png" || contentType == "image/jpg"
}
