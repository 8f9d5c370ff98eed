package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/service"
)

const (
	attachmentsField = "attachments"
	qrImageField     = "kpay_qr_image"
)

// formFiles returns nil when the field is absent and an empty slice when it is present
// without files.
func formFiles(c *gin.Context, field string) []service.FileUpload {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	headers, ok := form.File[field]
	if !ok {
		return nil
	}
	files := make([]service.FileUpload, 0, len(headers))
	for _, fh := range headers {
		files = append(files, fileUpload(fh))
	}
	return files
}

func formFile(c *gin.Context, field string) *service.FileUpload {
	files := formFiles(c, field)
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}

func fileUpload(fh *multipart.FileHeader) service.FileUpload {
	return service.FileUpload{
		FileName: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
