package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/spf13/cobra"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/commands"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/database"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/handlers"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	configPath   string
	syncCommands bool
)

var rootCmd = &cobra.Command{
	Use:           "rolekeeper",
	Short:         "Discord bot that hands out cosmetic roles and tracks who owns them",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
	rootCmd.Flags().BoolVar(&syncCommands, "sync-commands", false, "Whether to sync commands to discord")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("Command failed", slog.String("type", "sys"), slog.Any("error", err))
		os.Exit(1)
	}
}

// loadConfig reads the config and installs the logger it asks for.
func loadConfig() (*rolekeeper.Config, error) {
	cfg, err := rolekeeper.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.SetDefault(logger.New(cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource))
	return cfg, nil
}

func openDB(ctx context.Context, cfg *rolekeeper.Config) (*database.DB, error) {
	start := time.Now()
	db, err := database.Open(ctx, database.DBConfig{
		Driver:       cfg.DB.Driver,
		Path:         cfg.DB.Path,
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Database:     cfg.DB.Database,
		PoolSize:     cfg.DB.PoolSize,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxLifetime:  cfg.DB.MaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed after %s: %w", time.Since(start), err)
	}

	slog.Info("Database connected successfully",
		slog.String("type", "sys"),
		slog.String("driver", cfg.DB.Driver),
		slog.Duration("took", time.Since(start)))

	if err := db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}
	return db, nil
}

func runBot(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.Info("Starting rolekeeper",
		slog.String("type", "sys"),
		slog.String("version", version),
		slog.String("commit", commit))

	initCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	db, err := openDB(initCtx, cfg)
	if err != nil {
		return err
	}

	b := rolekeeper.New(*cfg, version, commit)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Shutdown(ctx)
	}()

	h := handler.New()
	register(h, b)

	if err = b.SetupBot(h,
		bot.NewListenerFunc(b.OnReady),
		handlers.MemberJoinHandler(b),
		handlers.RoleUpdateHandler(b),
		handlers.RoleDeleteHandler(b),
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to setup bot: %w", err)
	}
	b.Wire(db)

	if syncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			logger.LogError("Failed to sync commands", err, slog.String("component", "command_sync"))
		}
	}

	b.StartBackground()

	gatewayCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.", slog.String("type", "sys"))
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...", slog.String("type", "sys"))
	return nil
}

// register routes every slash command through logging and reply cleanup.
func register(h *handler.Mux, b *rolekeeper.Bot) {
	routes := map[string]func(*rolekeeper.Bot) handler.CommandHandler{
		"add":            commands.AddHandler,
		"remove":         commands.RemoveHandler,
		"new_role":       commands.NewRoleHandler,
		"create":         commands.CreateHandler,
		"delete":         commands.DeleteHandler,
		"take_ownership": commands.TakeOwnershipHandler,
		"query":          commands.QueryHandler,
		"list":           commands.ListHandler,
		"orphaned":       commands.OrphanedHandler,
		"balance":        commands.BalanceHandler,
		"transfer":       commands.TransferHandler,
		"extend":         commands.ExtendHandler,
		"main_channel":   commands.MainChannelHandler,
		"resync":         commands.ResyncHandler,
	}

	ttl := b.Cfg.Ledger.ReplyTTL.Std()
	for name, build := range routes {
		h.Command("/"+name, handlers.WrapWithLogging(name, b.Metrics,
			handlers.WithAutoDelete(b.Processes, ttl, build(b))))
	}
}
