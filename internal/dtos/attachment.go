package dtos

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Attachment is a file picked for upload. Data is held in memory; portal
// uploads are images, short videos and drawings.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// NewAttachment sniffs the content type when one is not given.
func NewAttachment(filename, contentType string, data []byte) *Attachment {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return &Attachment{Filename: filepath.Base(filename), ContentType: contentType, Data: data}
}

// LoadAttachment reads a file from disk.
func LoadAttachment(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment %s: %w", path, err)
	}
	return NewAttachment(path, "", data), nil
}

func (a *Attachment) IsImage() bool {
	return a != nil && strings.HasPrefix(a.ContentType, "image/")
}

func (a *Attachment) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}
