package main

import (
	"fmt"

	"screencheck/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var sessionsCommand = &cli.Command{
	Name:  "sessions",
	Usage: "Fetch the feeds and print the reconstructed session timeline",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum number of sessions to print",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Dump full session structures",
		},
	},
	Action: listSessions,
}

func listSessions(cCtx *cli.Context) error {
	logger := newLogger()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	historySvc := buildHistoryService(config, logger)

	sessions, err := historySvc.Load(cCtx.Context)
	if err != nil {
		return err
	}

	if limit := cCtx.Int("limit"); limit > 0 && limit < len(sessions) {
		sessions = sessions[:limit]
	}

	if cCtx.Bool("verbose") {
		pp.Println(sessions)
		return nil
	}

	for _, sess := range sessions {
		fmt.Println(formatSession(sess))
	}
	return nil
}

func formatSession(sess types.Session) string {
	date := sess.Date.Format("2006-01-02 15:04:05")
	if sess.Kind == types.SessionStandalone {
		return fmt.Sprintf("%s  standalone  %s  %s", date, sess.ID, sess.Upload.OriginalFilename)
	}
	return fmt.Sprintf("%s  comparison  %s  accuracy=%.1f%%  main=%d secondary=%d",
		date, sess.ID, *sess.Accuracy, len(sess.MainUploads), len(sess.SecondaryUploads))
}
