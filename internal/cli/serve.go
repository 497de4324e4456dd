package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/slotword/internal/archive"
	"github.com/robalobadob/slotword/internal/httpserver"
	"github.com/robalobadob/slotword/internal/store"
	"github.com/robalobadob/slotword/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the word list, schedule and archive over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var st store.Store = store.NewMemoryStore()
		if cfg.DBPath != "" {
			db, err := archive.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()
			st = db
		}

		svc, err := newService(st)
		if err != nil {
			return err
		}
		a, g := svc.List().Stats()
		log.Info().Int("answers", a).Int("allowed", g).Str("version", svc.List().Version()).
			Str("tz", cfg.Schedule.Location.String()).Msg("word list loaded")

		reload := func() error {
			list, err := words.Load(cfg.WordsFile, cfg.WordLength)
			if err != nil {
				return err
			}
			return svc.Reload(list)
		}

		if cfg.WordsFile != "" && cfg.WordsWatch {
			w, err := words.NewWatcher(cfg.WordsFile, cfg.WordLength)
			if err != nil {
				return err
			}
			defer w.Stop()
			err = w.Watch(ctx, func(list *words.List) {
				if err := svc.Reload(list); err != nil {
					log.Warn().Err(err).Msg("reload rejected")
				}
			})
			if err != nil {
				return err
			}
		}

		srv := httpserver.New(svc, httpserver.Options{
			ClientOrigin:      cfg.ClientOrigin,
			JWTSecret:         cfg.JWTSecret,
			JWTExpiry:         cfg.JWTExpiry,
			AdminPasswordHash: cfg.AdminPasswordHash,
			CookieName:        cfg.CookieName,
			Production:        cfg.Production,
			Reload:            reload,
		})
		log.Info().Str("port", cfg.Port).Msg("starting slotword server")
		return srv.Start(ctx, ":"+cfg.Port)
	},
}
