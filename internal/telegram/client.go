package telegram

import (
	"context"
	"fmt"

	"github.com/gotd/contrib/middleware/floodwait"
	"github.com/gotd/td/session"
	tgclient "github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
)

// Client wraps a gotd MTProto client configured for backup runs: session
// state persisted to a file and flood waits absorbed by client middleware.
type Client struct {
	inner *tgclient.Client
}

func NewClient(apiID int, apiHash, sessionPath string) *Client {
	return &Client{
		inner: tgclient.NewClient(apiID, apiHash, tgclient.Options{
			SessionStorage: &session.FileStorage{Path: sessionPath},
			Middlewares: []tgclient.Middleware{
				floodwait.NewSimpleWaiter(),
			},
		}),
	}
}

// Run connects, authenticates if the session requires it, and invokes fn with
// a raw API handle. The connection is torn down when fn returns.
func (c *Client) Run(ctx context.Context, a *Authenticator, fn func(ctx context.Context, api *tg.Client) error) error {
	return c.inner.Run(ctx, func(ctx context.Context) error {
		flow := auth.NewFlow(a, auth.SendCodeOptions{})
		if err := c.inner.Auth().IfNecessary(ctx, flow); err != nil {
			return fmt.Errorf("authenticate: %w", err)
		}
		return fn(ctx, c.inner.API())
	})
}
