package utils

import (
	"edusphere/config"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize is the hard cap for any uploaded file.
const MaxUploadSize = 5 * 1024 * 1024

// Upload destinations are purpose-keyed so files from different flows
// never collide by name.
var uploadSubdirs = map[string]string{
	"id_document":     "ids",
	"transfer_letter": "transfers",
	"resume":          "resumes",
	"course_image":    "courses",
	"content_image":   "content",
}

// Declared-MIME allow-lists per field. Sniffing beyond the declared
// Content-Type header is out of scope.
var allowedMimeTypes = map[string][]string{
	"id_document":     {"image/", "application/pdf"},
	"transfer_letter": {"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	"resume":          {"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	"course_image":    {"image/"},
	"content_image":   {"image/"},
}

// ValidateUpload checks size and declared MIME type for the given purpose.
func ValidateUpload(file *multipart.FileHeader, purpose string) error {
	if file.Size > MaxUploadSize {
		return fmt.Errorf("file exceeds the 5MB size limit")
	}

	allowed, ok := allowedMimeTypes[purpose]
	if !ok {
		return fmt.Errorf("unknown upload purpose: %s", purpose)
	}

	contentType := file.Header.Get("Content-Type")
	for _, prefix := range allowed {
		if strings.HasSuffix(prefix, "/") {
			if strings.HasPrefix(contentType, prefix) {
				return nil
			}
		} else if contentType == prefix {
			return nil
		}
	}
	return fmt.Errorf("file type %s is not allowed for %s", contentType, purpose)
}

// SaveUpload validates and persists an uploaded file under the purpose
// directory, returning its public URL. Filenames are namespaced with a
// timestamp and a random suffix to avoid collisions.
func SaveUpload(file *multipart.FileHeader, purpose string) (string, error) {
	if err := ValidateUpload(file, purpose); err != nil {
		return "", err
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, uploadSubdirs[purpose])
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%d-%s%s", purpose, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + uploadSubdirs[purpose] + "/" + newFilename, nil
}
