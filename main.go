package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"makkanya_dashboard/config"
	"makkanya_dashboard/database"
	"makkanya_dashboard/handler"
	"makkanya_dashboard/helper"
	"makkanya_dashboard/model"
	"makkanya_dashboard/router"
	"makkanya_dashboard/utils"
	"makkanya_dashboard/validate"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "makkanya",
		Short: "Makkanya Express delivery analytics dashboard",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(kpiCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveSource(source string, sample bool, settings config.Settings) string {
	if sample {
		return database.SampleSource
	}
	if source != "" {
		return source
	}
	return settings.DataSource
}

func loadOnce(source string) (*model.Dataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ds, report, err := database.LoadDataset(ctx, source)
	if err != nil {
		return nil, err
	}
	for name, n := range report.Dropped {
		log.Printf("[DATASET] %s: dropped %d invalid record(s)", name, n)
	}
	return ds, nil
}

func serveCmd() *cobra.Command {
	var (
		port   string
		source string
		sample bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API",
		RunE: func(_ *cobra.Command, _ []string) error {
			settings := config.Load()
			if port != "" {
				settings.Port = port
			}
			settings.DataSource = resolveSource(source, sample, settings)
			return runServer(settings)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (default PORT or 8002)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "dataset file path or http(s) URL")
	cmd.Flags().BoolVar(&sample, "sample", false, "serve the built-in sample dataset")
	return cmd
}

func runServer(settings config.Settings) error {
	handler.Setup(settings)

	if err := database.InitRedis(settings.RedisAddr); err != nil {
		log.Printf("[CACHE] redis unavailable, continuing without cache: %v", err)
	}
	defer database.CloseRedis()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if _, err := database.Reload(ctx, settings.DataSource); err != nil {
		log.Printf("[DATASET] starting without data: %v", err)
	}
	cancel()

	if err := helper.StartDatasetReloadScheduler(settings.DataSource, time.Duration(settings.ReloadMinutes)*time.Minute); err != nil {
		return err
	}
	defer helper.StopDatasetReloadScheduler()
	if err := handler.StartCacheWarmer(settings.CacheWarmCron); err != nil {
		return err
	}
	defer handler.StopCacheWarmer()

	app := fiber.New(fiber.Config{
		AppName: "Makkanya Express Dashboard",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Disposition",
		MaxAge:           600,
	}))
	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	return app.Listen(":" + settings.Port)
}

func exportCmd() *cobra.Command {
	var (
		out    string
		source string
		sample bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset to an xlsx workbook",
		RunE: func(_ *cobra.Command, _ []string) error {
			ds, err := loadOnce(resolveSource(source, sample, config.Load()))
			if err != nil {
				return err
			}
			now := time.Now()
			path := out
			if path == "" {
				path = utils.ExportFileName(now)
			} else if info, err := os.Stat(path); err == nil && info.IsDir() {
				path = filepath.Join(path, utils.ExportFileName(now))
			}

			if err := writeExportFile(ds, path, now); err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory")
	cmd.Flags().StringVarP(&source, "source", "s", "", "dataset file path or http(s) URL")
	cmd.Flags().BoolVar(&sample, "sample", false, "export the built-in sample dataset")
	return cmd
}

// writeExportFile writes the workbook to path. The file is closed before
// returning so a failed flush is reported.
func writeExportFile(ds *model.Dataset, path string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := utils.WriteWorkbook(ds, f, now); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func kpiCmd() *cobra.Command {
	var (
		input  model.SelectionInput
		source string
		sample bool
	)

	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Print the KPI cards for a selection as JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			sel, err := validate.ParseSelection(input)
			if err != nil {
				return err
			}
			ds, err := loadOnce(resolveSource(source, sample, config.Load()))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(utils.ComputeKPIs(ds, sel))
		},
	}

	cmd.Flags().StringVarP(&input.Zone, "zone", "z", "all", "zone label or slug")
	cmd.Flags().StringVar(&input.Period, "period", "30days", "7days or 30days")
	cmd.Flags().StringVar(&input.Shift, "shift", "all", "all, Pagi, Siang or Sore")
	cmd.Flags().StringVarP(&source, "source", "s", "", "dataset file path or http(s) URL")
	cmd.Flags().BoolVar(&sample, "sample", false, "use the built-in sample dataset")
	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for the protected endpoints",
		RunE: func(_ *cobra.Command, _ []string) error {
			token, err := helper.GenerateAccessToken(model.TokenClaim{Subject: subject, Role: role}, config.Load().JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")
	cmd.Flags().StringVar(&role, "role", "admin", "token role")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
