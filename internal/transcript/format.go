package transcript

import (
	"fmt"

	"tgbackup/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// UnknownSender is substituted when a message's sender could not be resolved.
const UnknownSender = "Unknown"

// FormatLine renders a message as one IRC-style transcript line, without a
// trailing newline:
//
//	[2025-01-01 12:34:56] <Alice> Hello!
//
// A message carrying an attachment gets a placeholder naming the file the
// fetcher would produce, whether or not it was actually downloaded. Message
// bodies are written as-is; embedded newlines pass through literally.
func FormatLine(msg *domain.Message) string {
	sender := msg.Sender
	if sender == "" {
		sender = UnknownSender
	}
	body := msg.Text
	if msg.Media != nil {
		body = fmt.Sprintf("[MEDIA: %s]", msg.MediaFileName())
	}
	return fmt.Sprintf("[%s] <%s> %s", msg.Date.UTC().Format(timeLayout), sender, body)
}
