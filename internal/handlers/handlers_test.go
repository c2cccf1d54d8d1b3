package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/color-analyzer/internal/usecase"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.MaxMultipartMemory = MaxUploadSize

	uc := usecase.NewAnalysisUseCase(zap.NewNop())
	RegisterRoutes(router, uc)
	return router
}

func encodeUniformPNG(t *testing.T, r, g, b uint8) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func buildMultipartBody(t *testing.T, contentType string, payload []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="upload"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("failed to write field %s: %v", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func postAnalyze(t *testing.T, router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRootServiceInfo(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["message"] != "Color Analyzer API" {
		t.Fatalf("unexpected message: %q", payload["message"])
	}
}

func TestCrossOriginRequestsAllowed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://frontend.example")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestAnalyzePreflightHandled(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "http://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
}

func TestAnalyzeRejectsLargeUpload(t *testing.T) {
	router := newTestRouter()

	body, contentType := buildMultipartBody(t, "image/png", bytes.Repeat([]byte("a"), MaxUploadSize+1), nil)
	resp := postAnalyze(t, router, body, contentType)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status %d, got %d", http.StatusRequestEntityTooLarge, resp.Code)
	}
}

func TestAnalyzeRejectsUnsupportedContentType(t *testing.T) {
	router := newTestRouter()

	body, contentType := buildMultipartBody(t, "text/plain", []byte("hello"), nil)
	resp := postAnalyze(t, router, body, contentType)

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected status %d, got %d", http.StatusUnsupportedMediaType, resp.Code)
	}
}

func TestAnalyzeRejectsInvalidStyle(t *testing.T) {
	router := newTestRouter()

	body, contentType := buildMultipartBody(t, "image/png", encodeUniformPNG(t, 200, 100, 50), map[string]string{"style": "flashy"})
	resp := postAnalyze(t, router, body, contentType)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}
}

func TestAnalyzeRejectsUndecodableImage(t *testing.T) {
	router := newTestRouter()

	body, contentType := buildMultipartBody(t, "image/png", []byte("not an image"), nil)
	resp := postAnalyze(t, router, body, contentType)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["error"] != "cannot load image" {
		t.Fatalf("unexpected error message: %q", payload["error"])
	}
}

func TestAnalyzeRequiresImageFile(t *testing.T) {
	router := newTestRouter()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("style", "subtle"); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	resp := postAnalyze(t, router, body, writer.FormDataContentType())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}
}

func TestAnalyzeWarmImageHappyPath(t *testing.T) {
	router := newTestRouter()

	body, contentType := buildMultipartBody(t, "image/png", encodeUniformPNG(t, 200, 100, 50), map[string]string{
		"style":     "subtle",
		"formality": "casual",
	})
	resp := postAnalyze(t, router, body, contentType)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
	}

	var payload struct {
		RequestID string `json:"request_id"`
		Undertone string `json:"undertone"`
		Colors    []struct {
			Name string `json:"name"`
			Hex  string `json:"hex"`
		} `json:"colors"`
		Outfits []string `json:"outfits"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.RequestID == "" {
		t.Fatal("expected a request id")
	}
	if payload.Undertone != "warm" {
		t.Fatalf("expected warm undertone, got %s", payload.Undertone)
	}
	if len(payload.Colors) != 6 {
		t.Fatalf("expected 6 colors, got %d", len(payload.Colors))
	}
	if payload.Colors[0].Name != "Warm Beige" || payload.Colors[0].Hex != "#D4A574" {
		t.Fatalf("unexpected first color: %+v", payload.Colors[0])
	}
	if len(payload.Outfits) != 3 {
		t.Fatalf("expected 3 outfits, got %d", len(payload.Outfits))
	}
}

func TestAnalyzeDefaultsSelectors(t *testing.T) {
	router := newTestRouter()

	body, contentType := buildMultipartBody(t, "image/png", encodeUniformPNG(t, 100, 150, 180), nil)
	resp := postAnalyze(t, router, body, contentType)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, resp.Code, resp.Body.String())
	}

	var payload struct {
		Undertone string `json:"undertone"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Undertone != "cool" {
		t.Fatalf("expected cool undertone, got %s", payload.Undertone)
	}
}

func TestPalettesEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/palettes/warm?style=subtle", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var payload struct {
		Undertone string `json:"undertone"`
		Colors    []struct {
			Name string `json:"name"`
		} `json:"colors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Undertone != "warm" {
		t.Fatalf("unexpected undertone: %s", payload.Undertone)
	}
	if len(payload.Colors) != 6 || payload.Colors[0].Name != "Warm Beige" {
		t.Fatalf("unexpected colors: %+v", payload.Colors)
	}
}

func TestPalettesEndpointUnknownUndertoneFallsBack(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/palettes/olive", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var payload struct {
		Colors []struct {
			Name string `json:"name"`
		} `json:"colors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Colors) != 6 || payload.Colors[0].Name != "Soft Taupe" {
		t.Fatalf("expected neutral subtle fallback, got %+v", payload.Colors)
	}
}

func TestMiddlewareGuardsAnalyzeOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.MaxMultipartMemory = MaxUploadSize
	deny := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "denied"})
	}
	RegisterRoutes(router, usecase.NewAnalysisUseCase(zap.NewNop()), deny)

	body, contentType := buildMultipartBody(t, "image/png", encodeUniformPNG(t, 200, 100, 50), nil)
	resp := postAnalyze(t, router, body, contentType)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	health := httptest.NewRecorder()
	router.ServeHTTP(health, req)
	if health.Code != http.StatusOK {
		t.Fatalf("expected health to stay open, got %d", health.Code)
	}
}
