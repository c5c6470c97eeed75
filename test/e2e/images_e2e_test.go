package e2e_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Upload_FullFlow(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	accountID, token := registerAndLogin(t, app, "uploader@example.com")
	subscribeToTier(t, app, token, accountID, "Premium", []int{200, 400}, true, true)

	t.Run("upload stores original and derives a thumbnail per size", func(t *testing.T) {
		resp, err := app.uploadImage(t, token, "vacation.png", "image/png", pngBytes(t, 800, 600))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var uploadResp map[string]any
		parseResponse(t, resp, &uploadResp)

		name := uploadResp["name"].(string)
		assert.True(t, strings.HasSuffix(name, ".png"))
		assert.NotEmpty(t, uploadResp["url"])

		thumbs := uploadResp["thumbnails"].([]any)
		require.Len(t, thumbs, 2)

		labels := make([]string, 0, len(thumbs))
		for _, raw := range thumbs {
			thumb := raw.(map[string]any)
			labels = append(labels, thumb["size"].(string))
			assert.NotEmpty(t, thumb["url"])
		}
		assert.ElementsMatch(t, []string{"200px", "400px"}, labels)
	})

	t.Run("uploaded image appears in the listing with a details url", func(t *testing.T) {
		resp, err := app.get("/images", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp []map[string]any
		parseResponse(t, resp, &listResp)
		require.Len(t, listResp, 1)

		name := listResp[0]["name"].(string)
		details := listResp[0]["details"].(string)
		assert.Equal(t, "/api/v1/images/details/"+name, details)

		resp, err = app.get("/images/details/"+name, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var detailResp map[string]any
		parseResponse(t, resp, &detailResp)
		assert.Equal(t, name, detailResp["name"])
		assert.Len(t, detailResp["thumbnails"].([]any), 2)
	})

	t.Run("details for a foreign or unknown image are not found", func(t *testing.T) {
		resp, err := app.get("/images/details/nosuch.png", authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Upload_ThumbnailOnlyTier(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	accountID, token := registerAndLogin(t, app, "basic@example.com")
	subscribeToTier(t, app, token, accountID, "Basic", []int{200}, false, false)

	resp, err := app.uploadImage(t, token, "photo.jpg", "image/jpeg", pngBytes(t, 400, 300))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploadResp map[string]any
	parseResponse(t, resp, &uploadResp)

	// No original url for a tier without original storage.
	assert.NotContains(t, uploadResp, "url")
	require.Len(t, uploadResp["thumbnails"].([]any), 1)
}

func TestE2E_Upload_RequiresSubscription(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	_, token := registerAndLogin(t, app, "nosub@example.com")

	resp, err := app.uploadImage(t, token, "photo.png", "image/png", pngBytes(t, 100, 100))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var errResp map[string]any
	parseResponse(t, resp, &errResp)
	assert.Equal(t, "NOT_SUBSCRIBED", errResp["code"])
}

func TestE2E_Upload_RejectsNonImageContent(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	accountID, token := registerAndLogin(t, app, "strict@example.com")
	subscribeToTier(t, app, token, accountID, "Basic", []int{200}, true, false)

	resp, err := app.uploadImage(t, token, "notes.txt", "text/plain", []byte("not an image"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_Admin_SubscriptionLifecycle(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	accountID, token := registerAndLogin(t, app, "lifecycle@example.com")
	subscribeToTier(t, app, token, accountID, "Starter", []int{200}, false, false)

	t.Run("second subscription for the same account conflicts", func(t *testing.T) {
		tierReq := map[string]any{
			"name":    "Second",
			"heights": []int{400},
		}
		resp, err := app.post("/admin/tiers", tierReq, authHeader(token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var tierResp map[string]any
		parseResponse(t, resp, &tierResp)

		subReq := map[string]any{
			"account_id": accountID,
			"tier_id":    tierResp["id"],
		}
		resp, err = app.post("/admin/subscriptions", subReq, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()

		t.Run("but a tier change moves the account over", func(t *testing.T) {
			changeReq := map[string]any{"tier_id": tierResp["id"]}
			resp, err := app.put("/admin/subscriptions/"+accountID, changeReq, authHeader(token))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var subResp map[string]any
			parseResponse(t, resp, &subResp)
			tier := subResp["tier"].(map[string]any)
			assert.Equal(t, "Second", tier["name"])
		})
	})

	t.Run("unsubscribe closes the upload path", func(t *testing.T) {
		resp, err := app.delete("/admin/subscriptions/"+accountID, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.uploadImage(t, token, "late.png", "image/png", pngBytes(t, 100, 100))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Admin_DuplicateTierBundle(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	_, token := registerAndLogin(t, app, "admin@example.com")

	tierReq := map[string]any{
		"name":           "Original",
		"heights":        []int{200, 400},
		"allow_original": true,
	}
	resp, err := app.post("/admin/tiers", tierReq, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Same permissions under a different name, heights reversed.
	cloneReq := map[string]any{
		"name":           "Clone",
		"heights":        []int{400, 200},
		"allow_original": true,
	}
	resp, err = app.post("/admin/tiers", cloneReq, authHeader(token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp map[string]any
	parseResponse(t, resp, &errResp)
	assert.Equal(t, "TIER_BUNDLE_EXISTS", errResp["code"])
}
