package domain

import "fmt"

// MediaKind classifies an attachment's payload.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
	MediaOther MediaKind = "other"
)

// MediaFilter selects which attachment kinds the fetcher downloads.
type MediaFilter string

const FilterAll MediaFilter = "all"

// ParseMediaFilter validates a user-supplied filter value.
func ParseMediaFilter(s string) (MediaFilter, error) {
	switch MediaFilter(s) {
	case FilterAll,
		MediaFilter(MediaImage),
		MediaFilter(MediaAudio),
		MediaFilter(MediaVideo),
		MediaFilter(MediaOther):
		return MediaFilter(s), nil
	}
	return "", fmt.Errorf("invalid media filter %q (want image, audio, video, other or all)", s)
}

// Allows reports whether an attachment of kind k passes the filter.
func (f MediaFilter) Allows(k MediaKind) bool {
	return f == FilterAll || MediaKind(f) == k
}
