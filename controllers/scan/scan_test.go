package scanController_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scanController "github.com/sarthak743/FlashDine/controllers/scan"
	"github.com/sarthak743/FlashDine/scanner"
)

func newScanRouter(det scanner.Detector) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/scan/frame", scanController.HandleFrameUpload(det, ""))
	return r
}

// pngFrame encodes a uniform-color test frame.
func pngFrame(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uploadFrame(t *testing.T, r *gin.Engine, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("frame", "frame.png")
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/scan/frame", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFrameUploadDetectsTable(t *testing.T) {
	r := newScanRouter(scanner.BrightnessDetector{TableID: "42"})

	w := uploadFrame(t, r, pngFrame(t, color.Black))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"table_id":"42"`)
	assert.Contains(t, w.Body.String(), `"scanning":false`)
}

func TestFrameUploadKeepsScanningOnBrightFrame(t *testing.T) {
	r := newScanRouter(scanner.BrightnessDetector{TableID: "42"})

	w := uploadFrame(t, r, pngFrame(t, color.White))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scanning":true`)
}

func TestFrameUploadRejectsGarbage(t *testing.T) {
	r := newScanRouter(scanner.BrightnessDetector{})

	w := uploadFrame(t, r, []byte("not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFrameUploadRequiresFile(t *testing.T) {
	r := newScanRouter(scanner.BrightnessDetector{})

	req := httptest.NewRequest(http.MethodPost, "/scan/frame", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
