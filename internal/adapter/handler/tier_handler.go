package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/blacha370/Image-Service/internal/adapter/handler/dto/request"
	"github.com/blacha370/Image-Service/internal/adapter/handler/dto/response"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/pkg/httputil"
	"github.com/blacha370/Image-Service/internal/usecase/tier"
)

type TierHandler struct {
	tierSvc TierService
}

func NewTierHandler(tierSvc TierService) *TierHandler {
	return &TierHandler{tierSvc: tierSvc}
}

// CreateSize godoc
//
//	@Summary		Register a thumbnail size
//	@Description	Create a thumbnail height, or return the existing one
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateSizeRequest	true	"Size data"
//	@Success		201		{object}	response.SizeResponse
//	@Failure		422		{object}	httputil.ErrorResponse	"Non-positive height"
//	@Security		BearerAuth
//	@Router			/admin/sizes [post]
func (h *TierHandler) CreateSize(c *gin.Context) {
	var req request.CreateSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	size, err := h.tierSvc.GetOrCreateSize(c.Request.Context(), req.Height)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidHeight) {
			httputil.ErrorWithCode(c, http.StatusUnprocessableEntity, "INVALID_HEIGHT", "height must be positive")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.SizeFromEntity(*size))
}

// CreateTier godoc
//
//	@Summary		Create a tier
//	@Description	Create an access tier from a set of thumbnail heights and permission flags
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateTierRequest	true	"Tier data"
//	@Success		201		{object}	response.TierResponse
//	@Failure		409		{object}	httputil.ErrorResponse	"Name or bundle already exists"
//	@Failure		422		{object}	httputil.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/tiers [post]
func (h *TierHandler) CreateTier(c *gin.Context) {
	var req request.CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	created, err := h.tierSvc.CreateTier(c.Request.Context(), tier.CreateTierInput{
		Name:              req.Name,
		Heights:           req.Heights,
		AllowOriginal:     req.AllowOriginal,
		AllowExpiringLink: req.AllowExpiringLink,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTierName), errors.Is(err, domain.ErrEmptySizeSet),
			errors.Is(err, domain.ErrInvalidHeight):
			httputil.ErrorWithCode(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error())
		case errors.Is(err, domain.ErrTierNameTaken):
			httputil.ErrorWithCode(c, http.StatusConflict, "TIER_NAME_TAKEN", "tier name already in use")
		case errors.Is(err, domain.ErrTierBundleExists):
			httputil.ErrorWithCode(c, http.StatusConflict, "TIER_BUNDLE_EXISTS", "a tier with the same sizes and flags already exists")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.Created(c, response.TierFromEntity(created))
}

// DeleteTier godoc
//
//	@Summary		Delete a tier
//	@Tags			admin
//	@Param			id	path	string	true	"Tier ID"
//	@Success		204
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/tiers/{id} [delete]
func (h *TierHandler) DeleteTier(c *gin.Context) {
	tierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid tier id")
		return
	}

	if err := h.tierSvc.DeleteTier(c.Request.Context(), tierID); err != nil {
		if errors.Is(err, domain.ErrTierNotFound) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "tier not found")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

// Subscribe godoc
//
//	@Summary		Subscribe an account to a tier
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.SubscribeRequest	true	"Subscription data"
//	@Success		201		{object}	response.SubscriptionResponse
//	@Failure		404		{object}	httputil.ErrorResponse	"Tier not found"
//	@Failure		409		{object}	httputil.ErrorResponse	"Already subscribed"
//	@Security		BearerAuth
//	@Router			/admin/subscriptions [post]
func (h *TierHandler) Subscribe(c *gin.Context) {
	var req request.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	sub, err := h.tierSvc.Subscribe(c.Request.Context(), req.AccountID, req.TierID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTierNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "tier not found")
		case errors.Is(err, domain.ErrAlreadySubscribed):
			httputil.ErrorWithCode(c, http.StatusConflict, "ALREADY_SUBSCRIBED", "account already has a subscription")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.Created(c, response.SubscriptionFromEntity(sub))
}

// ChangeTier godoc
//
//	@Summary		Move an account to another tier
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			account_id	path		string						true	"Account ID"
//	@Param			request		body		request.ChangeTierRequest	true	"Target tier"
//	@Success		200			{object}	response.SubscriptionResponse
//	@Failure		404			{object}	httputil.ErrorResponse
//	@Failure		409			{object}	httputil.ErrorResponse	"Already on that tier"
//	@Security		BearerAuth
//	@Router			/admin/subscriptions/{account_id} [put]
func (h *TierHandler) ChangeTier(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("account_id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid account id")
		return
	}

	var req request.ChangeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	sub, err := h.tierSvc.ChangeTier(c.Request.Context(), accountID, req.TierID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotSubscribed):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "account has no subscription")
		case errors.Is(err, domain.ErrTierNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "tier not found")
		case errors.Is(err, domain.ErrSameTier):
			httputil.ErrorWithCode(c, http.StatusConflict, "SAME_TIER", "account already subscribed to this tier")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.SubscriptionFromEntity(sub))
}

// Unsubscribe godoc
//
//	@Summary		Remove an account's subscription
//	@Tags			admin
//	@Param			account_id	path	string	true	"Account ID"
//	@Success		204
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/subscriptions/{account_id} [delete]
func (h *TierHandler) Unsubscribe(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("account_id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid account id")
		return
	}

	if err := h.tierSvc.Unsubscribe(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, domain.ErrNotSubscribed) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "account has no subscription")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.NoContent(c)
}

// GetSubscription godoc
//
//	@Summary		Get an account's subscription
//	@Tags			admin
//	@Produce		json
//	@Param			account_id	path		string	true	"Account ID"
//	@Success		200			{object}	response.SubscriptionResponse
//	@Failure		404			{object}	httputil.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/subscriptions/{account_id} [get]
func (h *TierHandler) GetSubscription(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("account_id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid account id")
		return
	}

	sub, err := h.tierSvc.GetSubscription(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotSubscribed) {
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "account has no subscription")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.SubscriptionFromEntity(sub))
}
