package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/trip-itinerary/internal/config"
	"github.com/username/trip-itinerary/internal/export"
	"github.com/username/trip-itinerary/internal/itinerary"
	"github.com/username/trip-itinerary/internal/render"
	"github.com/username/trip-itinerary/internal/trip"
	"github.com/username/trip-itinerary/pkg/dateutil"
	"github.com/username/trip-itinerary/pkg/grouping"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trip-itinerary",
		Short: "Trip itinerary viewer",
		Long:  "Aggregate flights, stays, transports and activities of a trip into per-day views",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Display.LogFile != "" {
				logger, err = initFileLogger(cfg.Display.LogFile, cfg.Display.LogLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(stripCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func stripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip",
		Short: "Show the whole trip as a day strip",
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := loadItinerary()
			if err != nil {
				return err
			}

			t := it.Trip()
			fmt.Printf("🧳 %s (%s - %s)\n\n",
				t.Name,
				dateutil.FormatShortDate(t.StartDate.Time),
				dateutil.FormatShortDate(it.TripDays()[len(it.TripDays())-1]))

			selected := it.SelectedDate()
			render.New(nil).Strip(it.DayStrip(), func(c itinerary.DayCell) bool {
				return dateutil.IsSameDay(c.Date, selected)
			})
			return nil
		},
	}
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the event list of one day (defaults to the trip start)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := loadItinerary()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				date, perr := dateutil.ParseDate(args[0])
				if perr != nil {
					return fmt.Errorf("invalid date %q: %w", args[0], perr)
				}
				it.SelectDate(date)
			}

			render.New(nil).DayDetail(it.SelectedDate(), it.DayDetail())
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var groups int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show spent expenses grouped by day, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			it, err := loadItinerary()
			if err != nil {
				return err
			}

			dayGroups := grouping.GroupByDate(it.Expenses(),
				func(ex trip.Expense) time.Time { return ex.Date.Time }, nil)

			// Newest day first.
			for i, j := 0, len(dayGroups)-1; i < j; i, j = i+1, j-1 {
				dayGroups[i], dayGroups[j] = dayGroups[j], dayGroups[i]
			}

			perPage := cfg.History.GetPageSize()
			if groups > 0 {
				perPage = groups
			}
			pager := grouping.NewPager(dayGroups, perPage)

			render.New(nil).ExpenseHistory(pager.Visible(), it.Trip().DailyBudget, pager.Remaining())
			return nil
		},
	}

	cmd.Flags().IntVar(&groups, "groups", 0, "Number of day groups to show (0 = config default)")

	return cmd
}

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the trip as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := loadItinerary()
			if err != nil {
				return err
			}

			payload := export.NewExporter(logger).Calendar(it.Trip(), it.Entities())

			if dir := filepath.Dir(outPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create export path: %w", err)
				}
			}
			if err := os.WriteFile(outPath, []byte(payload), 0o644); err != nil {
				return fmt.Errorf("failed to write calendar: %w", err)
			}

			fmt.Printf("✅ Calendar written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "trip.ics", "Output .ics file path")

	return cmd
}

func loadItinerary() (*itinerary.Itinerary, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()

	source, err := initializeSource(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := source.FetchTrip(cfg.Trip.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip %s: %w", cfg.Trip.ID, err)
	}
	logger.Debug("Trip snapshot ready", zap.Duration("took", time.Since(start)))

	return itinerary.New(data, logger)
}

func initializeSource(cfg *config.Config) (trip.Source, error) {
	switch cfg.Source.GetSourceType() {
	case "api":
		logger.Info("Using API trip source", zap.String("url", cfg.Source.APIURL))
		return trip.NewAPISource(cfg.Source.APIURL, cfg.Source.APIToken, logger), nil

	case "file":
		logger.Info("Using file trip source", zap.String("file", cfg.Source.FilePath))
		return trip.NewFileSource(cfg.Source.FilePath, logger), nil

	case "composite":
		logger.Info("Using API trip source with file fallback",
			zap.String("url", cfg.Source.APIURL),
			zap.String("file", cfg.Source.FilePath))
		primary := trip.NewAPISource(cfg.Source.APIURL, cfg.Source.APIToken, logger)
		fallback := trip.NewFileSource(cfg.Source.FilePath, logger)
		return trip.NewCompositeSource(primary, fallback, logger), nil

	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Source.Type)
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
