package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/dada-poem/internal/server"
)

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web service",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			log := newLogger(cfg, cmd.ErrOrStderr())

			engine := newEngine(cfg)
			info := engine.Info()
			entry := log.WithField("languages", info.Languages)
			if info.Available {
				entry.WithField("tesseract", info.Version).Info("OCR ready")
			} else {
				entry.WithField("error", info.Error).Warn("OCR unavailable")
			}

			gen := newGenerator(cfg, engine, log)
			srv := server.New(cfg, gen, log, server.WithOCRInfo(engine.Info))
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
