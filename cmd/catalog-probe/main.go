package main

import (
	"log"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ubuntucrafts/catalog/pkg/probe"
	"github.com/ubuntucrafts/catalog/pkg/version"
)

var (
	flagEndpoint string
	flagConfig   string
	flagSchedule string
)

func newProbe(logger *zap.SugaredLogger) (*probe.Probe, *probe.Config, error) {
	cfg, err := probe.LoadConfig(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagEndpoint != "" {
		cfg.Endpoint = flagEndpoint
	}
	if flagSchedule != "" {
		cfg.Schedule = flagSchedule
	}

	notifier := &probe.WriterNotifier{Out: os.Stdout}

	return probe.New(cfg.Endpoint, notifier, logger), cfg, nil
}

func main() {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Unable to initialize Zap logger: %s", err)
	}
	defer func() { _ = l.Sync() }()

	logger := l.Sugar()

	root := &cobra.Command{
		Use:           "catalog-probe",
		Short:         "Fetch the catalog products endpoint and display the result",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := newProbe(logger)
			if err != nil {
				logger.Errorf("Unable to configure probe: %s", err)
				return err
			}

			logger.Info("Catalog probe loaded")
			return p.Run(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&flagEndpoint, "endpoint", "", "products endpoint URL (overrides config file and PROBE_ENDPOINT)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file")

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Run the probe on a cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := newProbe(logger)
			if err != nil {
				logger.Errorf("Unable to configure probe: %s", err)
				return err
			}

			logger.Info("Catalog probe loaded")
			logger.Infof("Watching %s (schedule: %s)", p.Endpoint, cfg.Schedule)

			c := cron.New()
			if _, err := c.AddFunc(cfg.Schedule, func() {
				_ = p.Run(cmd.Context())
			}); err != nil {
				return err
			}
			c.Run()

			return nil
		},
	}
	watch.Flags().StringVar(&flagSchedule, "schedule", "", "cron schedule expression")
	root.AddCommand(watch)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
