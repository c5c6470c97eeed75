package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/blacha370/Image-Service/internal/adapter/handler"
	pgRepo "github.com/blacha370/Image-Service/internal/adapter/repository/postgres"
	"github.com/blacha370/Image-Service/internal/infrastructure/auth"
	"github.com/blacha370/Image-Service/internal/infrastructure/database"
	"github.com/blacha370/Image-Service/internal/infrastructure/middleware"
	"github.com/blacha370/Image-Service/internal/infrastructure/server"
	infraStorage "github.com/blacha370/Image-Service/internal/infrastructure/storage"
	authUC "github.com/blacha370/Image-Service/internal/usecase/auth"
	imageUC "github.com/blacha370/Image-Service/internal/usecase/image"
	"github.com/blacha370/Image-Service/internal/usecase/link"
	"github.com/blacha370/Image-Service/internal/usecase/tier"
	"github.com/blacha370/Image-Service/internal/usecase/upload"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Blobs      *memoryBlobStorage
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	migrationsPath := getMigrationsPath()
	err = database.RunMigrations(ctx, pool, migrationsPath)
	require.NoError(t, err)

	userRepo := pgRepo.NewUserRepo(pool)
	sizeRepo := pgRepo.NewSizeRepo(pool)
	tierRepo := pgRepo.NewTierRepo(pool)
	subRepo := pgRepo.NewSubscriptionRepo(pool)
	imageRepo := pgRepo.NewImageRepo(pool)
	thumbRepo := pgRepo.NewThumbnailRepo(pool)
	linkRepo := pgRepo.NewLinkRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests

	// In-memory blob storage keeps uploads resolvable without S3.
	blobs := newMemoryBlobStorage()
	thumbnailer := infraStorage.NewThumbnailer()

	authSvc := authUC.NewService(userRepo, jwtSvc, passwordHasher)
	tierSvc := tier.NewService(sizeRepo, tierRepo, subRepo)
	uploadSvc := upload.NewService(imageRepo, thumbRepo, subRepo, blobs, thumbnailer)
	imageSvc := imageUC.NewService(imageRepo, thumbRepo)
	linkSvc := link.NewService(linkRepo, imageRepo, subRepo, blobs)

	authHandler := handler.NewAuthHandler(authSvc)
	tierHandler := handler.NewTierHandler(tierSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	imageHandler := handler.NewImageHandler(imageSvc)
	linkHandler := handler.NewLinkHandler(linkSvc)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	logger, _ := zap.NewDevelopment()
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		TierHandler:    tierHandler,
		UploadHandler:  uploadHandler,
		ImageHandler:   imageHandler,
		LinkHandler:    linkHandler,
		AuthMiddleware: authMiddleware,
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Blobs:     blobs,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullPath := apiBasePath + path
	req, err := http.NewRequest(method, app.BaseURL+fullPath, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// uploadImage posts a multipart file to the upload endpoint.
func (app *TestApp) uploadImage(t *testing.T, token, filename, contentType string, data []byte) (*http.Response, error) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	partHeader.Set("Content-Type", contentType)

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	return app.httpClient.Do(req)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// registerAndLogin creates an account and returns its id and access token.
func registerAndLogin(t *testing.T, app *TestApp, email string) (string, string) {
	t.Helper()

	registerReq := map[string]string{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	}
	resp, err := app.post("/auth/register", registerReq, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registerResp map[string]any
	parseResponse(t, resp, &registerResp)
	accountID := registerResp["id"].(string)

	loginReq := map[string]string{
		"email":    email,
		"password": "password123",
	}
	resp, err = app.post("/auth/login", loginReq, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	parseResponse(t, resp, &loginResp)
	return accountID, loginResp["access_token"].(string)
}

// subscribeToTier creates a tier with the given permissions and binds the
// account to it through the admin endpoints.
func subscribeToTier(t *testing.T, app *TestApp, token, accountID, tierName string, heights []int, allowOriginal, allowLink bool) string {
	t.Helper()

	tierReq := map[string]any{
		"name":                tierName,
		"heights":             heights,
		"allow_original":      allowOriginal,
		"allow_expiring_link": allowLink,
	}
	resp, err := app.post("/admin/tiers", tierReq, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tierResp map[string]any
	parseResponse(t, resp, &tierResp)
	tierID := tierResp["id"].(string)

	subReq := map[string]any{
		"account_id": accountID,
		"tier_id":    tierID,
	}
	resp, err = app.post("/admin/subscriptions", subReq, authHeader(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	return tierID
}

// pngBytes renders a solid test image so the resize pipeline has real pixels
// to work with.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 40, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// memoryBlobStorage is an in-process stand-in for the S3 client.
type memoryBlobStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemoryBlobStorage() *memoryBlobStorage {
	return &memoryBlobStorage{blobs: make(map[string][]byte)}
}

func (m *memoryBlobStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *memoryBlobStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memoryBlobStorage) GetURL(key string) string {
	return "https://blob.test/" + key
}

func (m *memoryBlobStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
