package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/storecheck/storecheck/internal/browser"
	internalcli "github.com/storecheck/storecheck/internal/cli"
	"github.com/storecheck/storecheck/internal/config"
	"github.com/storecheck/storecheck/internal/database"
	"github.com/storecheck/storecheck/internal/handlers"
	"github.com/storecheck/storecheck/internal/logging"
	"github.com/storecheck/storecheck/internal/repository"
	"github.com/storecheck/storecheck/internal/scenario"
	"github.com/storecheck/storecheck/internal/services"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var version = "0.1.0"

// loadSettings reads the settings file and applies the --base-url override
func loadSettings(c *cli.Context) (*config.Settings, error) {
	settings, err := config.LoadSettings(c.String("config"))
	if err != nil {
		return nil, err
	}
	if baseURL := c.String("base-url"); baseURL != "" {
		settings = settings.WithBaseURL(baseURL)
	}
	return settings, nil
}

// openRunService connects to PostgreSQL, migrates and returns the run history service
func openRunService(logger *zap.Logger) (services.RunService, *sql.DB, error) {
	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if err != nil {
		return nil, nil, fmt.Errorf("missing required PostgreSQL configuration: %w", err)
	}

	db, err := database.Connect(pgConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Connected to database", zap.String("host", pgConfig.Host), zap.String("database", pgConfig.Database))

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return services.NewRunService(repository.NewRunRepository(db)), db, nil
}

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "path to the JSON settings file",
	Value:   config.DefaultSettingsPath,
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the storefront scenarios",
		Flags: []cli.Flag{
			configFlag,
			&cli.StringSliceFlag{
				Name:    "scenario",
				Aliases: []string{"s"},
				Usage:   "scenario to run (repeatable); all scenarios when omitted",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "override BaseUrl from the settings file",
			},
			&cli.BoolFlag{
				Name:  "record",
				Usage: "record every scenario run in PostgreSQL",
			},
		},
		Action: func(c *cli.Context) error {
			settings, err := loadSettings(c)
			if err != nil {
				return err
			}

			logger, err := logging.NewStdout(settings.Logger())
			if err != nil {
				return err
			}
			defer logger.Sync()

			browserConfig, err := config.LoadBrowserConfig(os.Getenv)
			if err != nil {
				return err
			}

			launcher := browser.NewLauncher(browserConfig, logger)
			opts := []scenario.Option{scenario.WithLogger(logger)}

			if c.Bool("record") {
				runService, db, err := openRunService(logger)
				if err != nil {
					return err
				}
				defer db.Close()
				opts = append(opts, scenario.WithRecorder(runService))
			}

			runner, err := scenario.NewRunner(launcher, settings, opts...)
			if err != nil {
				return err
			}
			launcher.SetDefaultTimeout(runner.Timeout())

			if err := launcher.Start(); err != nil {
				return err
			}
			defer func() {
				if err := launcher.Stop(); err != nil {
					logger.Warn("Failed to stop playwright", zap.Error(err))
				}
			}()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = internalcli.RunScenarios(ctx, runner, c.StringSlice("scenario"), c.App.Writer)
			if errors.Is(err, internalcli.ErrScenariosFailed) {
				return cli.Exit(err.Error(), 1)
			}
			return err
		},
	}
}

// buildServerDependencies creates all dependencies needed for the fixture storefront
func buildServerDependencies(c *cli.Context, logger *zap.Logger) (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	deps.ServerConfig = config.LoadServerConfig(os.Getenv)
	deps.StaticDir = internalcli.DefaultStaticDir
	deps.Logger = logger

	carts := services.NewCartService()

	catalogHandler, err := handlers.NewCatalogHandler("templates/catalog.html", handlers.DefaultMenu, handlers.DefaultRegions, carts, logger)
	if err != nil {
		return deps, fmt.Errorf("failed to create catalog handler: %w", err)
	}
	deps.CatalogHandler = catalogHandler

	deps.CartHandler = handlers.NewCartHandler(carts, handlers.DefaultMenu, c.Duration("cart-delay"), logger)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the fixture storefront",
		Flags: []cli.Flag{
			configFlag,
			&cli.DurationFlag{
				Name:  "cart-delay",
				Usage: "delay every cart update to mimic a slow storefront",
			},
		},
		Action: func(c *cli.Context) error {
			settings, err := config.LoadSettings(c.String("config"))
			if err != nil {
				return err
			}

			logger, err := logging.NewStdout(settings.Logger())
			if err != nil {
				return err
			}
			defer logger.Sync()

			deps, err := buildServerDependencies(c, logger)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// HistoryCommand returns the history command
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recorded scenario runs",
		Flags: []cli.Flag{
			configFlag,
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "number of runs to show",
				Value:   internalcli.DefaultHistoryLimit,
			},
		},
		Action: func(c *cli.Context) error {
			settings, err := config.LoadSettings(c.String("config"))
			if err != nil {
				return err
			}

			logger, err := logging.NewStdout(settings.Logger())
			if err != nil {
				return err
			}
			defer logger.Sync()

			runService, db, err := openRunService(logger)
			if err != nil {
				return err
			}
			defer db.Close()

			return internalcli.ShowHistory(runService, c.Int("limit"), c.App.Writer)
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the Playwright driver and browser",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "browser",
				Usage:   "chromium, firefox or webkit",
				EnvVars: []string{"BROWSER"},
				Value:   config.BrowserChromium,
			},
		},
		Action: func(c *cli.Context) error {
			return browser.Install(c.String("browser"))
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "storecheck",
		Usage:   "Storefront acceptance checks",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
			ServeCommand(),
			HistoryCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
