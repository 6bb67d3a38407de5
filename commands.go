package main

import (
	"context"
	"fmt"
	"mindcare_backend/internal/app"
	"mindcare_backend/internal/config"
	"mindcare_backend/internal/repository"
	"mindcare_backend/internal/service"
	"mindcare_backend/pkg/configwatcher"
	"mindcare_backend/pkg/database"
	"mindcare_backend/pkg/logger"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "mindcare",
		Short:         "Mental-health self-assessment and habit-tracking API",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		// 不带子命令时直接启动服务
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configDir, false)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "configs", "Directory containing config.yaml")

	root.AddCommand(newServeCmd(&configDir))
	root.AddCommand(newMigrateCmd(&configDir))
	root.AddCommand(newCreateAdminCmd(&configDir))
	return root
}

func newServeCmd(configDir *string) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configDir, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Run migrations on start even in release mode")
	return cmd
}

func runServe(configDir string, migrate bool) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ForceMigrate = migrate

	application, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		configFile := filepath.Join(configDir, "config.yaml")
		if err := configwatcher.WatchConfig(ctx, configFile, application.ApplyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()

	return application.Run(ctx)
}

func newMigrateCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.InitLogger(cfg)
			defer logger.Log.Sync()

			db, err := database.InitDB(cfg)
			if err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}
			return database.Migrate(db)
		},
	}
}

func newCreateAdminCmd(configDir *string) *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.InitLogger(cfg)
			defer logger.Log.Sync()

			db, err := database.InitDB(cfg)
			if err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			auth := service.NewAuthService(repository.NewUserRepository(db), cfg)
			admin, err := auth.CreateAdmin(email, password, name)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin created: %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	cmd.Flags().StringVar(&name, "name", "Admin User", "Admin display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}
