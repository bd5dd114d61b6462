package telegram

import (
	"context"
	"fmt"
	"io"

	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/tg"

	"tgbackup/internal/domain"
)

// Fetcher streams attachment bytes through the Telegram file API.
type Fetcher struct {
	api *tg.Client
}

func NewFetcher(api *tg.Client) *Fetcher {
	return &Fetcher{api: api}
}

func (f *Fetcher) Fetch(ctx context.Context, ref domain.MediaRef, w io.Writer) error {
	loc, ok := ref.(tg.InputFileLocationClass)
	if !ok {
		return domain.ErrMediaUnsupported
	}
	if _, err := downloader.NewDownloader().Download(f.api, loc).Stream(ctx, w); err != nil {
		return fmt.Errorf("download media: %w", err)
	}
	return nil
}
