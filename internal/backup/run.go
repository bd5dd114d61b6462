// Package backup runs the export pipeline: iterate a chat's history once,
// write one transcript line per message, and optionally download attachments
// subject to the media policy.
package backup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"

	"tgbackup/internal/config"
	"tgbackup/internal/domain"
	"tgbackup/internal/transcript"
)

// Options configure one backup run.
type Options struct {
	// ChatName is the user-supplied chat identifier; it names the
	// transcript file.
	ChatName  string
	OutputDir string

	DownloadMedia bool
	MediaFilter   domain.MediaFilter
	MediaMaxSize  int64 // bytes, 0 means unlimited

	// Retry tuning; zero values fall back to the configured defaults.
	RetryAttempts int
	RetryDelay    time.Duration
}

// Stats counts what a run did. A message with media counts once in exactly
// one of Downloaded, Filtered, Failed or Skipped.
type Stats struct {
	Messages   int
	Downloaded int
	Filtered   int
	Failed     int
	Skipped    int // media present but download disabled
}

// Runner drives a single sequential backup run. One message is fully
// processed before the next is fetched; the transcript file and media
// directory are held exclusively for the run's duration.
type Runner struct {
	history domain.HistoryIterator
	fetcher domain.MediaFetcher
	opts    Options
}

func NewRunner(history domain.HistoryIterator, fetcher domain.MediaFetcher, opts Options) *Runner {
	if opts.OutputDir == "" {
		opts.OutputDir = config.DefaultOutputDir
	}
	if opts.MediaFilter == "" {
		opts.MediaFilter = domain.FilterAll
	}
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = config.DownloadRetryAttempts
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = config.DownloadRetryDelay
	}
	return &Runner{history: history, fetcher: fetcher, opts: opts}
}

// Run iterates the whole chat and returns run statistics. Per-item media
// failures never abort the run; only iterator and filesystem errors do.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	mediaDir := filepath.Join(r.opts.OutputDir, config.MediaSubdir)
	if r.opts.DownloadMedia {
		if err := os.MkdirAll(mediaDir, 0o755); err != nil {
			return nil, fmt.Errorf("create media dir: %w", err)
		}
		slog.Info("media download enabled",
			"filter", r.opts.MediaFilter,
			"max_size", r.opts.MediaMaxSize,
		)
	}

	w, err := transcript.NewWriter(filepath.Join(r.opts.OutputDir, r.opts.ChatName+"_history.txt"))
	if err != nil {
		return nil, err
	}
	defer w.Close()

	stats := &Stats{}
	for {
		msg, err := r.history.Next(ctx)
		if errors.Is(err, domain.ErrEndOfHistory) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("iterate history: %w", err)
		}
		stats.Messages++

		if msg.Media != nil {
			r.handleMedia(ctx, msg, mediaDir, stats)
		}

		// Exactly one line per message, whatever happened to its media.
		if err := w.WriteMessage(msg); err != nil {
			return stats, err
		}

		if stats.Messages%config.ProgressLogEvery == 0 {
			slog.Info("progress",
				"messages", stats.Messages,
				"downloaded", stats.Downloaded,
				"filtered", stats.Filtered,
				"failed", stats.Failed,
			)
		}
	}
	return stats, nil
}

func (r *Runner) handleMedia(ctx context.Context, msg *domain.Message, mediaDir string, stats *Stats) {
	if !r.opts.DownloadMedia {
		stats.Skipped++
		return
	}
	if !r.opts.MediaFilter.Allows(msg.Media.Kind) {
		stats.Filtered++
		return
	}
	if r.opts.MediaMaxSize > 0 && msg.Media.Size > r.opts.MediaMaxSize {
		stats.Filtered++
		return
	}
	if msg.Media.Ref == nil {
		slog.Warn("media not downloadable", "msg_id", msg.ID, "kind", msg.Media.Kind)
		stats.Failed++
		return
	}

	name := msg.MediaFileName()
	path := filepath.Join(mediaDir, name)
	if err := r.download(ctx, msg, path); err != nil {
		slog.Warn("media download failed", "file", name, "error", err)
		stats.Failed++
		return
	}
	slog.Info("media downloaded", "file", name, "bytes", msg.Media.Size)
	stats.Downloaded++
}

// download fetches one attachment with bounded retry: timeout-class failures
// are retried up to the attempt limit with a fixed delay, anything else fails
// immediately.
func (r *Runner) download(ctx context.Context, msg *domain.Message, path string) error {
	op := func() error {
		f, err := os.Create(path)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create media file: %w", err))
		}
		pw := newProgressWriter(f, config.ProgressChunk, func(written int64) {
			slog.Debug("download progress", "file", filepath.Base(path), "bytes", written)
		})
		ferr := r.fetcher.Fetch(ctx, msg.Media.Ref, pw)
		if cerr := f.Close(); ferr == nil {
			ferr = cerr
		}
		if ferr != nil {
			os.Remove(path)
			if domain.IsTimeout(ferr) {
				return ferr
			}
			return backoff.Permanent(ferr)
		}
		return nil
	}

	bo := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(r.opts.RetryDelay),
		uint64(r.opts.RetryAttempts-1),
	)
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
