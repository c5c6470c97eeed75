package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blacha370/Image-Service/internal/adapter/handler"
	"github.com/blacha370/Image-Service/internal/domain"
	"github.com/blacha370/Image-Service/internal/domain/entity"
	"github.com/blacha370/Image-Service/internal/mocks"
)

func handlerTier(t *testing.T, name string) *entity.Tier {
	t.Helper()
	size, err := entity.NewThumbnailSize(200)
	require.NoError(t, err)
	tier, err := entity.NewTier(name, []entity.ThumbnailSize{*size}, true, true)
	require.NoError(t, err)
	return tier
}

func TestTierHandler_CreateTier(t *testing.T) {
	t.Run("creates tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.POST("/admin/tiers", h.CreateTier)

		created := handlerTier(t, "Premium")
		tierSvc.EXPECT().CreateTier(gomock.Any(), gomock.Any()).Return(created, nil)

		req := jsonRequest(t, http.MethodPost, "/admin/tiers", map[string]any{
			"name":                "Premium",
			"heights":             []int{200},
			"allow_original":      true,
			"allow_expiring_link": true,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Premium", resp["name"])
	})

	t.Run("conflict for duplicate bundle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.POST("/admin/tiers", h.CreateTier)

		tierSvc.EXPECT().CreateTier(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTierBundleExists)

		req := jsonRequest(t, http.MethodPost, "/admin/tiers", map[string]any{
			"name":    "Clone",
			"heights": []int{200},
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "TIER_BUNDLE_EXISTS", resp["code"])
	})

	t.Run("unprocessable for invalid height", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.POST("/admin/tiers", h.CreateTier)

		tierSvc.EXPECT().CreateTier(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidHeight)

		req := jsonRequest(t, http.MethodPost, "/admin/tiers", map[string]any{
			"name":    "Broken",
			"heights": []int{-1},
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestTierHandler_Subscribe(t *testing.T) {
	t.Run("subscribes account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.POST("/admin/subscriptions", h.Subscribe)

		accountID := uuid.New()
		tier := handlerTier(t, "Basic")
		sub, err := entity.NewSubscription(accountID, tier)
		require.NoError(t, err)

		tierSvc.EXPECT().Subscribe(gomock.Any(), accountID, tier.ID).Return(sub, nil)

		req := jsonRequest(t, http.MethodPost, "/admin/subscriptions", map[string]any{
			"account_id": accountID,
			"tier_id":    tier.ID,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("conflict for second subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.POST("/admin/subscriptions", h.Subscribe)

		tierSvc.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadySubscribed)

		req := jsonRequest(t, http.MethodPost, "/admin/subscriptions", map[string]any{
			"account_id": uuid.New(),
			"tier_id":    uuid.New(),
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTierHandler_ChangeTier(t *testing.T) {
	t.Run("conflict when moving to the same tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.PUT("/admin/subscriptions/:account_id", h.ChangeTier)

		accountID := uuid.New()
		tierSvc.EXPECT().ChangeTier(gomock.Any(), accountID, gomock.Any()).Return(nil, domain.ErrSameTier)

		req := jsonRequest(t, http.MethodPut, "/admin/subscriptions/"+accountID.String(), map[string]any{
			"tier_id": uuid.New(),
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("bad request for malformed account id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewTierHandler(mocks.NewMockTierService(ctrl))

		router := setupRouter()
		router.PUT("/admin/subscriptions/:account_id", h.ChangeTier)

		req := jsonRequest(t, http.MethodPut, "/admin/subscriptions/not-a-uuid", map[string]any{
			"tier_id": uuid.New(),
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTierHandler_Unsubscribe(t *testing.T) {
	t.Run("removes subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.DELETE("/admin/subscriptions/:account_id", h.Unsubscribe)

		accountID := uuid.New()
		tierSvc.EXPECT().Unsubscribe(gomock.Any(), accountID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/admin/subscriptions/"+accountID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found without subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tierSvc := mocks.NewMockTierService(ctrl)
		h := handler.NewTierHandler(tierSvc)

		router := setupRouter()
		router.DELETE("/admin/subscriptions/:account_id", h.Unsubscribe)

		accountID := uuid.New()
		tierSvc.EXPECT().Unsubscribe(gomock.Any(), accountID).Return(domain.ErrNotSubscribed)

		req := httptest.NewRequest(http.MethodDelete, "/admin/subscriptions/"+accountID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
