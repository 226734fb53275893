package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"autoria-scraper/config"
	"autoria-scraper/models"
	"autoria-scraper/scraper/autoria"
	"autoria-scraper/services"
	"autoria-scraper/storage"
	"autoria-scraper/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// exitInvalidInput is the status for a malformed command line
const exitInvalidInput = -1

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(cfg, autoria.NewChromeLauncher(cfg), os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, config.ErrInvalidCriteria) {
			fmt.Fprintln(os.Stderr, config.Usage)
			stop()
			os.Exit(exitInvalidInput)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, launch autoria.Launcher, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoria-scraper <transport type>, <brand>, <model>, <region>, <year from>, <year to>, <price from>, <price to>, <quantity>",
		Short: "Searches auto.ria.com and saves the listings it finds to a CSV file",
		Example: "  autoria-scraper Легкові, Audi, Q5, Київ, 2018, 2018, 0, 40000, 2\n" +
			"  autoria-scraper --headless -o out/audi.csv Легкові, Audi, Q5, Київ, 2018, 2018, 0, 40000, 25",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd.Context(), cfg, launch, args, out)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrInvalidCriteria, err)
	})

	flags := cmd.Flags()
	// Search fields such as "-5," must not be read as flags
	flags.SetInterspersed(false)
	flags.StringVarP(&cfg.CSVFilePath, "output", "o", cfg.CSVFilePath, "CSV file to write")
	flags.StringVar(&cfg.LogFilePath, "log-file", cfg.LogFilePath, "log file to append to")
	flags.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "PostgreSQL URL; also store records there when set")
	flags.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run Chrome without a window")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "mirror log lines to stdout")

	return cmd
}

func runScrape(ctx context.Context, cfg *config.Config, launch autoria.Launcher, args []string, out io.Writer) error {
	// ================== Bootstrap ====================
	logger, err := utils.NewFileLogger(cfg.LogFilePath, cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Close()

	criteria, err := config.ParseCriteria(args)
	if err != nil {
		logger.Error("%v", err)
		logger.Error("%s", config.Usage)
		return err
	}

	run := models.NewRun(criteria)
	logger.Info("Run %s: %d records of %s %s requested", run.ID, criteria.Quantity, criteria.Brand, criteria.Model)

	// =============== Scraping ===================================
	scraper := autoria.NewScraper(cfg, launch, logger)
	records, err := scraper.Scrape(ctx, criteria)
	if err != nil {
		logger.Error("Scraping aborted, nothing exported: %v", err)
		return nil
	}

	// ========= Export ===========================
	sinks := []storage.RecordSink{storage.NewCSVWriter(cfg.CSVFilePath, logger)}
	if cfg.DatabaseURL != "" {
		pgWriter, err := storage.NewPostgresWriter(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("Cannot connect to PostgreSQL: %v", err)
		} else {
			defer pgWriter.Close()
			if err := pgWriter.CreateTable(); err != nil {
				logger.Error("Failed to create DB table: %v", err)
			} else {
				sinks = append(sinks, pgWriter)
			}
		}
	}

	for _, sink := range sinks {
		if err := sink.Save(run, records); err != nil {
			logger.Error("Failed to save records: %v", err)
		}
	}

	// Exports keep the scraped text as is; only the terminal table is tidied
	services.PrintRunSummary(out, run, services.NewDataCleaner(logger).Clean(records))
	return nil
}
