package preview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/homeveda/portal-client/internal/dtos"
)

const (
	MaxThumbnailEdge = 320
	MaxSourceSize    = 10 * 1024 * 1024 // 10MB
	thumbnailQuality = 80
)

// Preview is a generated thumbnail for a staged upload.
type Preview struct {
	ID          string
	Width       int
	Height      int
	ContentType string
	Data        []byte
}

// Store owns the previews of files staged in a form. Removing a staged file
// must Release its preview.
type Store struct {
	mu       sync.Mutex
	previews map[string]*Preview
}

func NewStore() *Store {
	return &Store{previews: make(map[string]*Preview)}
}

// Generate decodes an image attachment and keeps a webp thumbnail of it.
// Non-image attachments yield (nil, nil): they are staged without preview.
func (s *Store) Generate(a *dtos.Attachment) (*Preview, error) {
	if !a.IsImage() {
		return nil, nil
	}
	if a.Size() > MaxSourceSize {
		return nil, fmt.Errorf("image %s exceeds %d bytes", a.Filename, MaxSourceSize)
	}

	src, _, err := image.Decode(bytes.NewReader(a.Data))
	if err != nil {
		return nil, fmt.Errorf("could not decode image %s: %w", a.Filename, err)
	}

	thumb := scaleToFit(src, MaxThumbnailEdge)
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, thumb, &webp.Options{Lossless: false, Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("could not encode preview for %s: %w", a.Filename, err)
	}

	p := &Preview{
		ID:          uuid.NewString(),
		Width:       thumb.Bounds().Dx(),
		Height:      thumb.Bounds().Dy(),
		ContentType: "image/webp",
		Data:        buf.Bytes(),
	}
	s.mu.Lock()
	s.previews[p.ID] = p
	s.mu.Unlock()
	return p, nil
}

// Get returns a live preview.
func (s *Store) Get(id string) (*Preview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.previews[id]
	return p, ok
}

// Release drops a preview. Unknown ids are ignored.
func (s *Store) Release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.previews, id)
}

// ReleaseAll drops every preview, used when a form is reset or discarded.
func (s *Store) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previews = make(map[string]*Preview)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.previews)
}

func scaleToFit(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}
	if w >= h {
		h = max(1, h*maxEdge/w)
		w = maxEdge
	} else {
		w = max(1, w*maxEdge/h)
		h = maxEdge
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
