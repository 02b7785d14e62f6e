package preview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/testhelpers"
	"github.com/homeveda/portal-client/internal/utils/preview"
)

func TestGenerateAndRelease(t *testing.T) {
	h := testhelpers.NewTestHelper(t)
	store := preview.NewStore()

	big := dtos.NewAttachment("plan.png", "image/png", h.PNG(640, 320))
	p, err := store.Generate(big)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, "image/webp", p.ContentType)
	require.Equal(t, preview.MaxThumbnailEdge, p.Width)
	require.Equal(t, 160, p.Height)
	require.NotEmpty(t, p.Data)

	small, err := store.Generate(dtos.NewAttachment("tiny.png", "image/png", h.PNG(10, 20)))
	require.NoError(t, err)
	require.Equal(t, 10, small.Width)
	require.Equal(t, 2, store.Len())

	store.Release(p.ID)
	_, ok := store.Get(p.ID)
	require.False(t, ok)
	require.Equal(t, 1, store.Len())

	store.ReleaseAll()
	require.Zero(t, store.Len())
}

func TestGenerateSkipsNonImages(t *testing.T) {
	store := preview.NewStore()
	p, err := store.Generate(dtos.NewAttachment("layout.pdf", "application/pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	require.Nil(t, p)
	require.Zero(t, store.Len())
}

func TestGenerateRejectsCorruptImages(t *testing.T) {
	store := preview.NewStore()
	_, err := store.Generate(dtos.NewAttachment("broken.png", "image/png", []byte("not a png")))
	require.Error(t, err)
}
