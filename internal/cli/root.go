// Package cli defines the tgbackup command line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/gotd/td/tg"
	"github.com/spf13/cobra"

	"tgbackup/internal/backup"
	"tgbackup/internal/config"
	"tgbackup/internal/domain"
	"tgbackup/internal/telegram"
)

var (
	downloadMedia bool
	mediaFilter   string
	mediaMaxSize  int64
	outputDir     string
	sessionFile   string
	batchSize     int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tgbackup <api_id> <api_hash> <chat>",
	Short: "Back up a Telegram chat's history and media",
	Long: `tgbackup connects to the Telegram API as your own account, walks one
chat's full message history oldest to newest, and writes an IRC-style text
transcript. With --download-media it also saves attachments, subject to
type and size filters.

On first run you are prompted for your phone number and a verification
code; the resulting session is persisted so later runs skip the prompt.`,
	Args:          cobra.ExactArgs(3),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&downloadMedia, "download-media", false, "download media attachments")
	rootCmd.Flags().StringVar(&mediaFilter, "media-filter", "all", `media type to download: "image", "audio", "video", "other" or "all"`)
	rootCmd.Flags().Int64Var(&mediaMaxSize, "media-max-size", 0, "maximum media file size in bytes (0 = unlimited)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", config.DefaultOutputDir, "output directory")
	rootCmd.Flags().StringVar(&sessionFile, "session", "", "session file path (default from TGBACKUP_SESSION, else session.json)")
	rootCmd.Flags().IntVar(&batchSize, "batch-size", 0, "history page size per request, 1-100 (default from TGBACKUP_BATCH_SIZE, else 100)")
}

// Execute runs the CLI with the loaded environment config. It exits non-zero
// on any fatal error: bad arguments, failed authentication, unresolvable
// chat, or unwritable output paths.
func Execute(ctx context.Context, c *config.Config) {
	cfg = c
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("backup failed", "error", err)
		os.Exit(1)
	}
}

// runArgs is the validated CLI input for one run.
type runArgs struct {
	apiID     int
	apiHash   string
	chat      string
	batchSize int // 0 means use the config default
	opts      backup.Options
}

// parseRunArgs validates positional arguments and flags.
func parseRunArgs(args []string) (*runArgs, error) {
	apiID, err := strconv.Atoi(args[0])
	if err != nil || apiID <= 0 {
		return nil, fmt.Errorf("invalid api_id %q: must be a positive number", args[0])
	}
	apiHash := args[1]
	if apiHash == "" {
		return nil, fmt.Errorf("api_hash must not be empty")
	}

	filter, err := domain.ParseMediaFilter(mediaFilter)
	if err != nil {
		return nil, err
	}
	if mediaMaxSize < 0 {
		return nil, fmt.Errorf("media max size must not be negative")
	}
	if batchSize < 0 || batchSize > config.MaxHistoryPageSize {
		return nil, fmt.Errorf("batch size %d out of range (1-%d)", batchSize, config.MaxHistoryPageSize)
	}

	return &runArgs{
		apiID:     apiID,
		apiHash:   apiHash,
		chat:      args[2],
		batchSize: batchSize,
		opts: backup.Options{
			ChatName:      args[2],
			OutputDir:     outputDir,
			DownloadMedia: downloadMedia,
			MediaFilter:   filter,
			MediaMaxSize:  mediaMaxSize,
		},
	}, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	ra, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	session := sessionFile
	if session == "" {
		session = cfg.SessionFile
	}
	pageSize := ra.batchSize
	if pageSize == 0 {
		pageSize = cfg.BatchSize
	}

	client := telegram.NewClient(ra.apiID, ra.apiHash, session)
	authenticator := telegram.NewAuthenticator(cfg.Phone, telegram.TerminalPrompt)

	return client.Run(cmd.Context(), authenticator, func(ctx context.Context, api *tg.Client) error {
		peer, err := telegram.ResolveChat(ctx, api, ra.chat)
		if err != nil {
			return err
		}
		slog.Info("chat resolved", "chat", ra.chat)

		runner := backup.NewRunner(
			telegram.NewHistoryIterator(api, peer, pageSize),
			telegram.NewFetcher(api),
			ra.opts,
		)
		stats, err := runner.Run(ctx)
		if err != nil {
			return err
		}

		slog.Info("backup complete",
			"chat", ra.chat,
			"messages", stats.Messages,
			"media_downloaded", stats.Downloaded,
			"media_filtered", stats.Filtered,
			"media_failed", stats.Failed,
			"media_skipped", stats.Skipped,
			"output_dir", ra.opts.OutputDir,
		)
		return nil
	})
}
