package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaFilter(t *testing.T) {
	for _, valid := range []string{"image", "audio", "video", "other", "all"} {
		f, err := ParseMediaFilter(valid)
		require.NoError(t, err)
		assert.Equal(t, MediaFilter(valid), f)
	}

	_, err := ParseMediaFilter("gif")
	assert.Error(t, err)
	_, err = ParseMediaFilter("")
	assert.Error(t, err)
}

func TestMediaFilterAllows(t *testing.T) {
	assert.True(t, FilterAll.Allows(MediaImage))
	assert.True(t, FilterAll.Allows(MediaOther))

	image := MediaFilter(MediaImage)
	assert.True(t, image.Allows(MediaImage))
	assert.False(t, image.Allows(MediaVideo))
	assert.False(t, image.Allows(MediaAudio))
}

func TestMediaFileName(t *testing.T) {
	msg := &Message{ID: 12345, Media: &Attachment{Kind: MediaImage, Ext: "jpg"}}
	assert.Equal(t, "msg_12345.jpg", msg.MediaFileName())
}
