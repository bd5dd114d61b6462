package telegram

import (
	"testing"

	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgbackup/internal/domain"
)

func photoMedia(sizes ...tg.PhotoSizeClass) *tg.MessageMediaPhoto {
	m := &tg.MessageMediaPhoto{
		Photo: &tg.Photo{ID: 42, AccessHash: 7, FileReference: []byte{1}, Sizes: sizes},
	}
	m.SetFlags()
	return m
}

func documentMedia(doc *tg.Document) *tg.MessageMediaDocument {
	m := &tg.MessageMediaDocument{Document: doc}
	m.SetFlags()
	return m
}

func TestDescribePhoto(t *testing.T) {
	media := photoMedia(
		&tg.PhotoSize{Type: "m", Size: 1000},
		&tg.PhotoSize{Type: "y", Size: 50000},
		&tg.PhotoSizeProgressive{Type: "w", Sizes: []int{1000, 30000}},
	)

	att := describeMedia(media)
	require.NotNil(t, att)
	assert.Equal(t, domain.MediaImage, att.Kind)
	assert.Equal(t, "jpg", att.Ext)
	assert.Equal(t, int64(50000), att.Size)

	loc, ok := att.Ref.(*tg.InputPhotoFileLocation)
	require.True(t, ok)
	assert.Equal(t, int64(42), loc.ID)
	assert.Equal(t, "y", loc.ThumbSize)
}

func TestDescribePhotoProgressiveLargest(t *testing.T) {
	att := describeMedia(photoMedia(
		&tg.PhotoSize{Type: "m", Size: 1000},
		&tg.PhotoSizeProgressive{Type: "w", Sizes: []int{500, 90000}},
	))
	assert.Equal(t, int64(90000), att.Size)
	assert.Equal(t, "w", att.Ref.(*tg.InputPhotoFileLocation).ThumbSize)
}

func TestDescribeDocumentKinds(t *testing.T) {
	tests := []struct {
		name string
		doc  *tg.Document
		kind domain.MediaKind
	}{
		{
			name: "mime image",
			doc:  &tg.Document{MimeType: "image/png"},
			kind: domain.MediaImage,
		},
		{
			name: "mime audio",
			doc:  &tg.Document{MimeType: "audio/mpeg"},
			kind: domain.MediaAudio,
		},
		{
			name: "mime video uppercase",
			doc:  &tg.Document{MimeType: "VIDEO/mp4"},
			kind: domain.MediaVideo,
		},
		{
			name: "voice note by attribute",
			doc: &tg.Document{
				MimeType:   "application/octet-stream",
				Attributes: []tg.DocumentAttributeClass{&tg.DocumentAttributeAudio{Voice: true}},
			},
			kind: domain.MediaAudio,
		},
		{
			name: "video by attribute",
			doc: &tg.Document{
				MimeType:   "application/octet-stream",
				Attributes: []tg.DocumentAttributeClass{&tg.DocumentAttributeVideo{}},
			},
			kind: domain.MediaVideo,
		},
		{
			name: "plain file",
			doc:  &tg.Document{MimeType: "application/pdf"},
			kind: domain.MediaOther,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, documentKind(tt.doc))
		})
	}
}

func TestDescribeDocumentExt(t *testing.T) {
	tests := []struct {
		name string
		doc  *tg.Document
		want string
	}{
		{
			name: "from filename attribute",
			doc: &tg.Document{
				MimeType:   "application/octet-stream",
				Attributes: []tg.DocumentAttributeClass{&tg.DocumentAttributeFilename{FileName: "Report.PDF"}},
			},
			want: "pdf",
		},
		{
			name: "from mime type",
			doc:  &tg.Document{MimeType: "audio/ogg"},
			want: "ogg",
		},
		{
			name: "unknown",
			doc:  &tg.Document{MimeType: "application/x-custom"},
			want: "bin",
		},
		{
			name: "filename without extension falls back to mime",
			doc: &tg.Document{
				MimeType:   "video/mp4",
				Attributes: []tg.DocumentAttributeClass{&tg.DocumentAttributeFilename{FileName: "clip"}},
			},
			want: "mp4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, documentExt(tt.doc))
		})
	}
}

func TestDescribeDocumentRef(t *testing.T) {
	doc := &tg.Document{ID: 9, AccessHash: 3, FileReference: []byte{2}, MimeType: "video/mp4", Size: 1234}
	att := describeMedia(documentMedia(doc))

	assert.Equal(t, domain.MediaVideo, att.Kind)
	assert.Equal(t, int64(1234), att.Size)
	loc, ok := att.Ref.(*tg.InputDocumentFileLocation)
	require.True(t, ok)
	assert.Equal(t, int64(9), loc.ID)
}

func TestDescribeUnsupportedMedia(t *testing.T) {
	att := describeMedia(&tg.MessageMediaGeo{})
	assert.Equal(t, domain.MediaOther, att.Kind)
	assert.Equal(t, "bin", att.Ext)
	assert.Nil(t, att.Ref)
}
