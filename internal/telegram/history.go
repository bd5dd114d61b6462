package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/tg"

	"tgbackup/internal/domain"
)

// HistoryIterator pages through a chat's history oldest to newest.
//
// messages.getHistory returns pages newest-first relative to an offset id.
// Requesting OffsetID = anchor+1 with AddOffset = -pageSize selects the
// pageSize messages directly newer than the anchor; each page is reversed
// into chronological order and the anchor advances to the page's highest id.
type HistoryIterator struct {
	api      *tg.Client
	peer     tg.InputPeerClass
	pageSize int

	anchor int // highest message id already consumed
	page   []*domain.Message
	pos    int
	done   bool
}

func NewHistoryIterator(api *tg.Client, peer tg.InputPeerClass, pageSize int) *HistoryIterator {
	return &HistoryIterator{api: api, peer: peer, pageSize: pageSize}
}

// Next returns the next message in chronological order, fetching a page from
// the API when the buffered one is exhausted. Returns domain.ErrEndOfHistory
// once the chat has no newer messages.
func (it *HistoryIterator) Next(ctx context.Context) (*domain.Message, error) {
	for it.pos >= len(it.page) {
		if it.done {
			return nil, domain.ErrEndOfHistory
		}
		if err := it.fetchPage(ctx); err != nil {
			return nil, err
		}
	}
	msg := it.page[it.pos]
	it.pos++
	return msg, nil
}

func (it *HistoryIterator) fetchPage(ctx context.Context) error {
	res, err := it.api.MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
		Peer:      it.peer,
		OffsetID:  it.anchor + 1,
		AddOffset: -it.pageSize,
		Limit:     it.pageSize,
	})
	if err != nil {
		return fmt.Errorf("get history: %w", err)
	}

	var (
		raw   []tg.MessageClass
		users []tg.UserClass
		chats []tg.ChatClass
	)
	switch msgs := res.(type) {
	case *tg.MessagesMessages:
		raw, users, chats = msgs.Messages, msgs.Users, msgs.Chats
	case *tg.MessagesMessagesSlice:
		raw, users, chats = msgs.Messages, msgs.Users, msgs.Chats
	case *tg.MessagesChannelMessages:
		raw, users, chats = msgs.Messages, msgs.Users, msgs.Chats
	default:
		return fmt.Errorf("get history: unexpected response %T", res)
	}

	names := senderNames(users, chats)
	it.page = it.page[:0]
	it.pos = 0
	maxID := it.anchor

	// Responses are newest-first; walk backwards to emit oldest-first.
	for i := len(raw) - 1; i >= 0; i-- {
		id := messageID(raw[i])
		if id <= it.anchor {
			continue
		}
		if id > maxID {
			maxID = id
		}
		msg, ok := raw[i].(*tg.Message)
		if !ok {
			// Service messages (joins, pins, ...) are not chat messages.
			continue
		}
		it.page = append(it.page, mapMessage(msg, names))
	}

	if maxID == it.anchor || len(raw) < it.pageSize {
		it.done = true
	}
	it.anchor = maxID
	return nil
}

func messageID(m tg.MessageClass) int {
	switch msg := m.(type) {
	case *tg.Message:
		return msg.ID
	case *tg.MessageService:
		return msg.ID
	case *tg.MessageEmpty:
		return msg.ID
	}
	return 0
}

func mapMessage(msg *tg.Message, names map[int64]string) *domain.Message {
	m := &domain.Message{
		ID:   msg.ID,
		Date: time.Unix(int64(msg.Date), 0).UTC(),
		Text: msg.Message,
	}
	if from, ok := msg.GetFromID(); ok {
		m.Sender = names[peerID(from)]
	} else {
		// Channel posts and anonymous admins carry no from id; fall back
		// to the peer itself.
		m.Sender = names[peerID(msg.PeerID)]
	}
	if media, ok := msg.GetMedia(); ok {
		m.Media = describeMedia(media)
	}
	return m
}

func peerID(p tg.PeerClass) int64 {
	switch peer := p.(type) {
	case *tg.PeerUser:
		return peer.UserID
	case *tg.PeerChat:
		return peer.ChatID
	case *tg.PeerChannel:
		return peer.ChannelID
	}
	return 0
}

// senderNames maps the page's user and chat ids to display names, preferring
// usernames over first names.
func senderNames(users []tg.UserClass, chats []tg.ChatClass) map[int64]string {
	names := make(map[int64]string, len(users)+len(chats))
	for _, uc := range users {
		u, ok := uc.(*tg.User)
		if !ok {
			continue
		}
		if username, ok := u.GetUsername(); ok && username != "" {
			names[u.ID] = username
		} else if first, ok := u.GetFirstName(); ok {
			names[u.ID] = first
		}
	}
	for _, cc := range chats {
		switch c := cc.(type) {
		case *tg.Chat:
			names[c.ID] = c.Title
		case *tg.Channel:
			names[c.ID] = c.Title
		}
	}
	return names
}
