package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gotd/td/telegram/peers"
	"github.com/gotd/td/tg"

	"tgbackup/internal/domain"
)

// ResolveChat maps a user-supplied chat identifier to an input peer.
// Usernames (with or without a leading @) and phone numbers (leading +) are
// resolved through the API. A bare numeric id is taken as a basic group chat
// id, which needs no access hash.
func ResolveChat(ctx context.Context, api *tg.Client, identifier string) (tg.InputPeerClass, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		return &tg.InputPeerChat{ChatID: id}, nil
	}

	mgr := peers.Options{}.Build(api)

	var (
		p   peers.Peer
		err error
	)
	if strings.HasPrefix(identifier, "+") {
		p, err = mgr.ResolvePhone(ctx, identifier)
	} else {
		p, err = mgr.ResolveDomain(ctx, strings.TrimPrefix(identifier, "@"))
	}
	if err != nil {
		return nil, fmt.Errorf("resolve chat %q: %w: %w", identifier, domain.ErrChatNotFound, err)
	}
	return p.InputPeer(), nil
}
