package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_Auth_RegisterAndLogin(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("complete auth flow", func(t *testing.T) {
		// 1. Register a new account
		registerReq := map[string]string{
			"email":    "test@example.com",
			"password": "securePassword123",
			"name":     "Test User",
		}

		resp, err := app.post("/auth/register", registerReq, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var registerResp map[string]any
		parseResponse(t, resp, &registerResp)
		assert.Equal(t, "test@example.com", registerResp["email"])
		assert.Equal(t, "Test User", registerResp["name"])
		assert.NotEmpty(t, registerResp["id"])

		// 2. Login with the registered account
		loginReq := map[string]string{
			"email":    "test@example.com",
			"password": "securePassword123",
		}

		resp, err = app.post("/auth/login", loginReq, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var loginResp map[string]any
		parseResponse(t, resp, &loginResp)
		assert.NotEmpty(t, loginResp["access_token"])
		assert.NotEmpty(t, loginResp["expires_at"])

		accessToken := loginResp["access_token"].(string)

		// 3. Access a protected endpoint with the token
		resp, err = app.get("/images", authHeader(accessToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Auth_Register_DuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	registerReq := map[string]string{
		"email":    "duplicate@example.com",
		"password": "password123",
		"name":     "User One",
	}

	resp, err := app.post("/auth/register", registerReq, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	registerReq["name"] = "User Two"
	resp, err = app.post("/auth/register", registerReq, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp map[string]any
	parseResponse(t, resp, &errResp)
	assert.Equal(t, "USER_EXISTS", errResp["code"])
}

func TestE2E_Auth_Login_InvalidCredentials(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	registerReq := map[string]string{
		"email":    "valid@example.com",
		"password": "correctPassword",
		"name":     "Valid User",
	}
	resp, err := app.post("/auth/register", registerReq, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	loginReq := map[string]string{
		"email":    "valid@example.com",
		"password": "wrongPassword",
	}

	resp, err = app.post("/auth/login", loginReq, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var errResp map[string]any
	parseResponse(t, resp, &errResp)
	assert.Equal(t, "INVALID_CREDENTIALS", errResp["code"])
}

func TestE2E_Auth_Login_NonExistentUser(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	loginReq := map[string]string{
		"email":    "nonexistent@example.com",
		"password": "anyPassword",
	}

	resp, err := app.post("/auth/login", loginReq, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_Auth_ProtectedEndpoint_NoToken(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	resp, err := app.get("/images", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_Auth_ProtectedEndpoint_InvalidToken(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	resp, err := app.get("/images", authHeader("invalid-token"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_Auth_Register_ValidationErrors(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	tests := []struct {
		name    string
		request map[string]string
	}{
		{
			name: "missing email",
			request: map[string]string{
				"password": "password123",
				"name":     "Test User",
			},
		},
		{
			name: "invalid email",
			request: map[string]string{
				"email":    "not-an-email",
				"password": "password123",
				"name":     "Test User",
			},
		},
		{
			name: "short password",
			request: map[string]string{
				"email":    "test@example.com",
				"password": "short",
				"name":     "Test User",
			},
		},
		{
			name: "missing name",
			request: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.post("/auth/register", tc.request, nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		})
	}
}
