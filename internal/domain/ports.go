package domain

import (
	"context"
	"io"
)

// HistoryIterator yields a chat's messages oldest to newest, fetching lazily.
// It is forward-only; a new run starts over from the beginning.
type HistoryIterator interface {
	// Next returns the next message, or ErrEndOfHistory once the chat is
	// exhausted.
	Next(ctx context.Context) (*Message, error)
}

// MediaFetcher streams the bytes behind a media reference to w.
type MediaFetcher interface {
	Fetch(ctx context.Context, ref MediaRef, w io.Writer) error
}

// PromptFunc reads one line of user input for an interactive prompt, such as
// the login verification code. Non-interactive environments supply their own.
type PromptFunc func(ctx context.Context, prompt string) (string, error)
