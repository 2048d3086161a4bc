package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"elearn/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// SaveUploadedFile writes a multipart upload to destDir under a unique name
// and returns the local path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8] + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// UploadResult is what the media provider hands back for a stored asset
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadToCloud pushes a local file to Cloudinary's unsigned upload endpoint
// and returns its hosted URL and public id. The local file is removed after
// a successful upload.
func UploadToCloud(localPath string) (*UploadResult, error) {
	if localPath == "" {
		return nil, fmt.Errorf("no file to upload")
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", config.AppConfig.CloudName)

	var result cloudinaryResponse
	client := resty.New().SetTimeout(60 * time.Second)
	resp, err := client.R().
		SetFile("file", localPath).
		SetFormData(map[string]string{
			"upload_preset": config.AppConfig.CloudUploadPreset,
			"folder":        config.AppConfig.CloudFolder,
		}).
		SetResult(&result).
		SetError(&result).
		Post(endpoint)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode(), result.Error.Message)
	}

	os.Remove(localPath)

	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}
