package service

import (
	"context"
	"io"
)

// UploadFile is a file received from a client.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileStorage stores files and returns their public URL.
type FileStorage interface {
	// Upload writes the file under folder and returns a URL that serves it.
	Upload(ctx context.Context, folder string, file *UploadFile) (string, error)
}
