package telegram

import (
	"path/filepath"
	"strings"

	"github.com/gotd/td/tg"

	"tgbackup/internal/domain"
)

// describeMedia builds an attachment descriptor for a message's media. Media
// without a fetchable file body (link previews, polls, locations, ...) gets
// kind "other" and a nil reference.
func describeMedia(media tg.MessageMediaClass) *domain.Attachment {
	switch m := media.(type) {
	case *tg.MessageMediaPhoto:
		pc, ok := m.GetPhoto()
		if !ok {
			return &domain.Attachment{Kind: domain.MediaImage, Ext: "jpg"}
		}
		photo, ok := pc.(*tg.Photo)
		if !ok {
			return &domain.Attachment{Kind: domain.MediaImage, Ext: "jpg"}
		}
		thumb, size := largestPhotoSize(photo.Sizes)
		return &domain.Attachment{
			Kind: domain.MediaImage,
			Size: size,
			Ext:  "jpg",
			Ref: &tg.InputPhotoFileLocation{
				ID:            photo.ID,
				AccessHash:    photo.AccessHash,
				FileReference: photo.FileReference,
				ThumbSize:     thumb,
			},
		}
	case *tg.MessageMediaDocument:
		dc, ok := m.GetDocument()
		if !ok {
			return &domain.Attachment{Kind: domain.MediaOther, Ext: "bin"}
		}
		doc, ok := dc.(*tg.Document)
		if !ok {
			return &domain.Attachment{Kind: domain.MediaOther, Ext: "bin"}
		}
		return &domain.Attachment{
			Kind: documentKind(doc),
			Size: doc.Size,
			Ext:  documentExt(doc),
			Ref: &tg.InputDocumentFileLocation{
				ID:            doc.ID,
				AccessHash:    doc.AccessHash,
				FileReference: doc.FileReference,
			},
		}
	default:
		return &domain.Attachment{Kind: domain.MediaOther, Ext: "bin"}
	}
}

// largestPhotoSize picks the biggest declared variant, returning its thumb
// type and byte size. Progressive sizes declare one byte count per scan.
func largestPhotoSize(sizes []tg.PhotoSizeClass) (thumb string, size int64) {
	for _, sc := range sizes {
		switch s := sc.(type) {
		case *tg.PhotoSize:
			if int64(s.Size) > size {
				thumb, size = s.Type, int64(s.Size)
			}
		case *tg.PhotoSizeProgressive:
			var max int
			for _, n := range s.Sizes {
				if n > max {
					max = n
				}
			}
			if int64(max) > size {
				thumb, size = s.Type, int64(max)
			}
		case *tg.PhotoCachedSize:
			if int64(len(s.Bytes)) > size {
				thumb, size = s.Type, int64(len(s.Bytes))
			}
		}
	}
	return thumb, size
}

func documentKind(doc *tg.Document) domain.MediaKind {
	mime := strings.ToLower(doc.MimeType)
	switch {
	case strings.HasPrefix(mime, "image/"):
		return domain.MediaImage
	case strings.HasPrefix(mime, "audio/"):
		return domain.MediaAudio
	case strings.HasPrefix(mime, "video/"):
		return domain.MediaVideo
	}
	for _, ac := range doc.Attributes {
		switch ac.(type) {
		case *tg.DocumentAttributeAudio:
			return domain.MediaAudio
		case *tg.DocumentAttributeVideo:
			return domain.MediaVideo
		case *tg.DocumentAttributeImageSize:
			return domain.MediaImage
		}
	}
	return domain.MediaOther
}

// documentExt derives a file extension from the document's declared filename,
// falling back to its MIME type, then to "bin".
func documentExt(doc *tg.Document) string {
	for _, ac := range doc.Attributes {
		if name, ok := ac.(*tg.DocumentAttributeFilename); ok {
			if ext := strings.TrimPrefix(filepath.Ext(name.FileName), "."); ext != "" {
				return strings.ToLower(ext)
			}
		}
	}
	if ext, ok := mimeExt[strings.ToLower(doc.MimeType)]; ok {
		return ext
	}
	return "bin"
}

var mimeExt = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
	"audio/mpeg":      "mp3",
	"audio/mp4":       "m4a",
	"audio/ogg":       "ogg",
	"video/mp4":       "mp4",
	"video/quicktime": "mov",
	"video/webm":      "webm",
	"application/pdf": "pdf",
	"application/zip": "zip",
}
