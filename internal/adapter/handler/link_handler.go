package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blacha370/Image-Service/internal/adapter/handler/dto/request"
	"github.com/blacha370/Image-Service/internal/adapter/handler/dto/response"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/pkg/httputil"
	"github.com/blacha370/Image-Service/internal/usecase/link"
)

type LinkHandler struct {
	linkSvc LinkService
}

func NewLinkHandler(linkSvc LinkService) *LinkHandler {
	return &LinkHandler{linkSvc: linkSvc}
}

// Generate godoc
//
//	@Summary		Generate an expiring link
//	@Description	Mint a public time-bounded link to one of the caller's original images
//	@Tags			links
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.GenerateLinkRequest	true	"Link parameters"
//	@Success		201		{object}	response.LinkResponse
//	@Failure		403		{object}	httputil.ErrorResponse	"Tier does not allow expiring links"
//	@Failure		404		{object}	httputil.ErrorResponse	"Image not found"
//	@Failure		409		{object}	httputil.ErrorResponse	"Image has no stored original"
//	@Failure		422		{object}	httputil.ErrorResponse	"Expiry out of range"
//	@Security		BearerAuth
//	@Router			/link [post]
func (h *LinkHandler) Generate(c *gin.Context) {
	var req request.GenerateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	accountID := httputil.GetAccountID(c)

	lnk, err := h.linkSvc.Generate(c.Request.Context(), link.GenerateInput{
		AccountID: accountID,
		ImageName: req.ImageName,
		Seconds:   req.Seconds,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotSubscribed), errors.Is(err, domain.ErrLinkNotAllowed):
			httputil.ErrorWithCode(c, http.StatusForbidden, "LINK_NOT_ALLOWED", "tier does not allow expiring links")
		case errors.Is(err, domain.ErrImageNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "image not found")
		case errors.Is(err, domain.ErrImageNotLinkable):
			httputil.ErrorWithCode(c, http.StatusConflict, "NOT_LINKABLE", "image has no stored original")
		case errors.Is(err, domain.ErrExpiryOutOfRange):
			httputil.ErrorWithCode(c, http.StatusUnprocessableEntity, "EXPIRY_OUT_OF_RANGE", "seconds must be between 300 and 30000")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.Created(c, response.LinkFromEntity(lnk, "/link/"+lnk.Name))
}

// Resolve godoc
//
//	@Summary		Resolve an expiring link
//	@Description	Serve the original image behind a link that has not expired yet
//	@Tags			links
//	@Produce		image/jpeg
//	@Produce		image/png
//	@Param			name	path	string	true	"Link name"
//	@Success		200		{file}	binary
//	@Failure		404		{object}	httputil.ErrorResponse	"Link unknown or expired"
//	@Router			/link/{name} [get]
func (h *LinkHandler) Resolve(c *gin.Context) {
	resolved, err := h.linkSvc.Resolve(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "link not found")
			return
		}
		httputil.InternalError(c)
		return
	}
	defer resolved.Body.Close()

	c.DataFromReader(http.StatusOK, -1, resolved.ContentType, resolved.Body, nil)
}
