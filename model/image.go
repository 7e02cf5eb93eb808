package model

import "time"

type ImageInfo struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type UploadImageRequest struct {
	OriginalName string
	Data         []byte
}

type UploadImageResponse struct {
	ImageID  string `json:"image_id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
