package config

import "time"

const (
	// History pagination: default page size and the API's hard cap
	HistoryPageSize    = 100
	MaxHistoryPageSize = 100

	// Media download retry policy
	DownloadRetryAttempts = 3
	DownloadRetryDelay    = 3 * time.Second

	// Download progress tick granularity
	ProgressChunk = 100 * 1024

	// Messages between progress log lines
	ProgressLogEvery = 50

	// Default output directory
	DefaultOutputDir = "backup"

	// Subdirectory of the output directory holding downloaded attachments
	MediaSubdir = "media"
)
