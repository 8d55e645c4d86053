package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryUploader keeps uploaded objects in process memory. It backs resume
// uploads when no bucket is configured.
type MemoryUploader struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string][]byte
}

func NewMemoryUploader(baseURL string) *MemoryUploader {
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &MemoryUploader{baseURL: baseURL, objects: map[string][]byte{}}
}

func (u *MemoryUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	u.mu.Lock()
	u.objects[objectName] = buf.Bytes()
	u.mu.Unlock()

	return u.baseURL + "/" + objectName, nil
}

func (u *MemoryUploader) Object(objectName string) ([]byte, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	b, ok := u.objects[objectName]
	return b, ok
}
