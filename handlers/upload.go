package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pharmacy-api/config"
	"pharmacy-api/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxImageSize = 5 << 20

// UploadMedicineImage stores the multipart "image" file under the upload directory
// and returns the path it is served from
func UploadMedicineImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize+1<<20)
	header, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "No image uploaded")
		return
	}
	if header.Size > maxImageSize {
		fail(c, http.StatusBadRequest, "Image must be 5MB or smaller")
		return
	}

	file, err := header.Open()
	if err != nil {
		serverError(c, "Failed to read upload", errors.Wrap(err, "open upload"))
		return
	}
	mtype, err := mimetype.DetectReader(file)
	file.Close()
	if err != nil {
		serverError(c, "Failed to read upload", errors.Wrap(err, "detect upload type"))
		return
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		fail(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	dir := filepath.Join(config.App.UploadDir, "medicines")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		serverError(c, "Failed to store upload", errors.Wrapf(err, "create %s", dir))
		return
	}
	name := uuid.NewString() + mtype.Extension()
	if err := c.SaveUploadedFile(header, filepath.Join(dir, name)); err != nil {
		serverError(c, "Failed to store upload", errors.Wrap(err, "save upload"))
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Success:  true,
		FilePath: "/uploads/medicines/" + name,
	})
}
