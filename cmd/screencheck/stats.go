package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var statsCommand = &cli.Command{
	Name:   "stats",
	Usage:  "Print upload statistics from the record store feed",
	Action: showStats,
}

func showStats(cCtx *cli.Context) error {
	logger := newLogger()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	historySvc := buildHistoryService(config, logger)

	stats, err := historySvc.Stats(cCtx.Context)
	if err != nil {
		return err
	}

	fmt.Printf("uploads:            %d (main %d, secondary %d)\n",
		stats.TotalUploads, stats.MainUploads, stats.SecondaryUploads)
	fmt.Printf("text extraction:    %d ok, %d failed, %d pending (%.2f%%)\n",
		stats.SuccessfulExtractions, stats.FailedExtractions, stats.PendingExtractions, stats.ExtractionRate)
	fmt.Printf("total size:         %.2f MB\n", stats.TotalFileSizeMB)
	return nil
}
