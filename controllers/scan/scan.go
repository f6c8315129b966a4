package scanController

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/scanner"
)

var unsafeNameRe = regexp.MustCompile(`[^\w\d\-_\.]`)

// HandleFrameUpload accepts a camera frame and runs it through the QR
// detector. A hit responds with the detected table id; a miss responds
// with scanning=true so the client keeps sampling. When uploadDir is
// non-empty, frames that produced a hit are retained for debugging.
func HandleFrameUpload(det scanner.Detector, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("frame")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No frame uploaded"})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read frame"})
			return
		}
		defer f.Close()

		frame, _, err := image.Decode(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Frame is not a decodable image"})
			return
		}

		tableID, ok := det.Detect(frame)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"scanning": true})
			return
		}

		if uploadDir != "" {
			saveFrame(c, fileHeader, uploadDir)
		}

		log.Printf("📷 QR scan hit: table %s", tableID)
		c.JSON(http.StatusOK, gin.H{"scanning": false, "table_id": tableID})
	}
}

// saveFrame retains the uploaded frame with a sanitized, timestamped
// filename. Failures are logged, never surfaced: retention is best
// effort.
func saveFrame(c *gin.Context, fileHeader *multipart.FileHeader, uploadDir string) {
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		log.Printf("frame retention: create dir failed: %v", err)
		return
	}

	cleanName := unsafeNameRe.ReplaceAllString(fileHeader.Filename, "_")
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

	savePath := filepath.Join(uploadDir, filename)
	if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
		log.Printf("frame retention: save failed: %v", err)
	}
}
