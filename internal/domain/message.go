package domain

import (
	"fmt"
	"time"
)

// Message is one chat message as fetched from the messaging API. It is
// consumed exactly once by the backup pipeline and then discarded.
type Message struct {
	ID     int
	Date   time.Time
	Sender string // display name; empty when the sender could not be resolved
	Text   string
	Media  *Attachment
}

// Attachment describes a non-text payload carried by a message.
type Attachment struct {
	Kind MediaKind
	Size int64 // bytes, 0 when unknown ahead of download
	Ext  string
	Ref  MediaRef // nil when the media carries no downloadable payload
}

// MediaRef is an opaque handle to remote attachment bytes. It is produced by
// the transport adapter and handed back to it unchanged by the fetcher.
type MediaRef any

// MediaFileName returns the deterministic on-disk name for the message's
// attachment, msg_<id>.<ext>. Message ids are unique within a chat, so the
// name needs no collision handling.
func (m *Message) MediaFileName() string {
	return fmt.Sprintf("msg_%d.%s", m.ID, m.Media.Ext)
}
