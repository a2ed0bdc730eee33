package rolekeeper

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/repositories"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/config"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/database"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/deadline"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/economy"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/logger"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/metrics"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/reinstate"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/services"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/utils"
)

const cooldownPruneInterval = time.Hour

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
		Metrics:   metrics.New(cfg.Metrics.Enabled),
		Processes: utils.NewBackgroundProcessManager(),
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB
	Metrics   metrics.Recorder
	Processes *utils.BackgroundProcessManager

	Cache      *guildstate.Cache
	Roles      *roles.Service
	Reinstator *reinstate.Reinstator
	Notifier   *services.ChannelNotifier
	Scheduler  *deadline.Scheduler
	Income     *economy.Income
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds, gateway.IntentGuildMembers)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

// Wire builds the ledgers and services on top of db and the REST client.
// SetupBot must have run first.
func (b *Bot) Wire(db *database.DB) {
	b.DB = db
	ledger := b.Cfg.Ledger

	roleRepo := repositories.NewRoleRepository(db.BunDB(), repositories.Horizons{
		Day:  b.Cfg.Deadlines.DayHorizon.Std(),
		Hour: b.Cfg.Deadlines.HourHorizon.Std(),
	})
	userRepo := repositories.NewUserRepository(db.BunDB(), ledger.MaxBalance)
	grantRepo := repositories.NewUserRoleRepository(db.BunDB())
	guildRepo := repositories.NewGuildRepository(db.BunDB())

	discordService := services.NewDiscordService(b.Client.Rest(), b.Client.Rest())
	b.Notifier = services.NewChannelNotifier(b.Client.Rest(), guildRepo)

	// The hook runs during hydration, which only happens once Roles is set.
	b.Cache = guildstate.NewCache(discordService, ledger.GrantCooldown.Std(),
		guildstate.WithHydrateHook(func(ctx context.Context, state *guildstate.GuildState, infos []guildstate.RoleInfo) {
			b.Roles.ImportOnHydrate(ctx, state, infos)
		}))

	b.Roles = roles.NewService(roles.Config{
		Quota:            ledger.MaxOwnedRoles,
		GrantCooldown:    ledger.GrantCooldown.Std(),
		NewRoleCooldown:  ledger.NewRoleCooldown.Std(),
		TransferCooldown: ledger.TransferCooldown.Std(),
		InitialLifetime:  ledger.InitialLifetime.Std(),
		MaxExtendSeconds: ledger.MaxExtendSeconds,
		MaxBalance:       userRepo.MaxBalance(),
	}, roles.Deps{
		Cache:     b.Cache,
		Owners:    roleRepo,
		Economy:   userRepo,
		Deadlines: roleRepo,
		Grants:    grantRepo,
		Guilds:    guildRepo,
		Actions:   discordService,
		Metrics:   b.Metrics,
	})

	b.Reinstator = reinstate.New(b.Cache, grantRepo, discordService)
	b.Scheduler = deadline.NewScheduler(roleRepo, b.Notifier,
		deadline.DefaultWindows(b.Cfg.Deadlines.DayHorizon.Std(), b.Cfg.Deadlines.HourHorizon.Std()),
		config.MessageBudget,
		deadline.WithRecorder(b.Metrics))
	b.Income = economy.NewIncome(userRepo, b.Cfg.Economy.IncomeAmount)
}

// StartBackground launches the deadline sweep, the income tick, cooldown
// pruning and, when enabled, the metrics endpoint.
func (b *Bot) StartBackground() {
	sweepInterval := b.Cfg.Deadlines.SweepInterval.Std()
	b.Processes.StartProcess("deadline-sweep", func(ctx context.Context) {
		b.Scheduler.Run(ctx, sweepInterval)
	})

	b.Processes.StartTicker("income", b.Cfg.Economy.IncomeInterval.Std(), func(ctx context.Context) {
		moved, err := b.Income.Tick(ctx)
		if err == nil {
			b.Metrics.IncomePaid(moved)
		}
	})

	b.Processes.StartTicker("cooldown-prune", cooldownPruneInterval, func(context.Context) {
		if n := b.Roles.PruneCooldowns(); n > 0 {
			slog.Debug("Pruned cooldown entries", slog.String("type", "sys"), slog.Int("count", n))
		}
	})

	if b.Cfg.Metrics.Enabled {
		addr := b.Cfg.Metrics.Addr
		b.Processes.StartProcess("metrics", func(ctx context.Context) {
			metrics.Serve(ctx, b.Metrics, addr)
		})
	}

	logger.LogSystem("Background processes started", slog.Int("processes", b.Processes.ProcessCount()))
}

func (b *Bot) Shutdown(ctx context.Context) {
	if err := b.Processes.Shutdown(10 * time.Second); err != nil {
		logger.LogError("Background processes did not stop in time", err)
	}
	if b.Client != nil {
		b.Client.Close(ctx)
	}
	if b.DB != nil {
		b.DB.Close()
	}
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Rolekeeper is now ready",
		slog.String("type", "sys"),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithWatchingActivity("role ownership"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
