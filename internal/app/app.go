package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/neuproject/sports-calendar/external/espn"
	"github.com/neuproject/sports-calendar/external/footballdata"
	"github.com/neuproject/sports-calendar/external/kbo"
	"github.com/neuproject/sports-calendar/external/pandascore"
	"github.com/neuproject/sports-calendar/internal/config"
	"github.com/neuproject/sports-calendar/internal/domain/follow"
	"github.com/neuproject/sports-calendar/internal/domain/league"
	"github.com/neuproject/sports-calendar/internal/domain/match"
	"github.com/neuproject/sports-calendar/internal/domain/team"
	"github.com/neuproject/sports-calendar/internal/infrastructure/events"
	"github.com/neuproject/sports-calendar/internal/infrastructure/repository/memory"
	"github.com/neuproject/sports-calendar/internal/infrastructure/repository/postgres"
	"github.com/neuproject/sports-calendar/internal/interfaces/httpapi"
	"github.com/neuproject/sports-calendar/internal/platform/cache"
	idgen "github.com/neuproject/sports-calendar/internal/platform/id"
	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/platform/resilience"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

// Application bundles the wired service with everything main has to close.
type Application struct {
	Server    *http.Server
	Scheduler *Scheduler
	Sync      *usecase.SyncService

	db        *sqlx.DB
	publisher *events.NATSPublisher
	logger    *logging.Logger
}

type repositories struct {
	leagues league.Repository
	teams   team.Repository
	matches match.Repository
	follows follow.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	app := &Application{logger: logger}

	repos, err := app.buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var publisher usecase.MatchEventPublisher = events.NewNoopPublisher()
	if cfg.NATSEnabled {
		natsCfg := events.DefaultNATSPublisherConfig()
		natsCfg.URL = cfg.NATSURL
		natsCfg.Name = cfg.ServiceName
		natsPublisher, err := events.NewNATSPublisher(natsCfg, logger)
		if err != nil {
			return nil, err
		}
		app.publisher = natsPublisher
		publisher = natsPublisher
	}

	providers := buildProviders(cfg, logger)
	resolver := usecase.NewTeamResolver(repos.teams, logger)

	syncSvc := usecase.NewSyncService(
		repos.leagues,
		repos.matches,
		providers,
		resolver,
		publisher,
		idgen.NewRandomGenerator(),
		logger,
	)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.follows, store, logger)
	teamSvc := usecase.NewTeamService(repos.teams, repos.leagues, repos.follows, store, logger)

	handler := httpapi.NewHandler(matchSvc, teamSvc, syncSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	app.Server = server
	app.Sync = syncSvc
	if cfg.SyncEnabled {
		if len(providers) == 0 {
			logger.Warn("periodic sync enabled but no providers are configured")
		}
		app.Scheduler = NewScheduler(syncSvc, cfg.SyncInterval, logger)
	}

	return app, nil
}

func (a *Application) buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.RepositoryBackend == config.RepositoryPostgres {
		db, err := OpenDB(ctx, cfg.DBURL)
		if err != nil {
			return repositories{}, err
		}
		a.db = db

		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, err
			}
		}

		logger.Info("repositories ready", "backend", config.RepositoryPostgres, "db", dbNameFromURL(cfg.DBURL))
		return repositories{
			leagues: postgres.NewLeagueRepository(db),
			teams:   postgres.NewTeamRepository(db),
			matches: postgres.NewMatchRepository(db),
			follows: postgres.NewFollowRepository(db),
		}, nil
	}

	logger.Info("repositories ready", "backend", config.RepositoryMemory)
	return repositories{
		leagues: memory.NewLeagueRepository(memory.SeedLeagues()),
		teams:   memory.NewTeamRepository(memory.SeedTeams()),
		matches: memory.NewMatchRepository(),
		follows: memory.NewFollowRepository(),
	}, nil
}

func buildProviders(cfg config.Config, logger *logging.Logger) []usecase.MatchProvider {
	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.ProviderCircuitEnabled,
		FailureThreshold: cfg.ProviderCircuitFailureCount,
		OpenTimeout:      cfg.ProviderCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.ProviderCircuitHalfOpenReq,
	}

	providers := make([]usecase.MatchProvider, 0, 4)
	if cfg.FootballDataEnabled {
		providers = append(providers, footballdata.NewClient(footballdata.ClientConfig{
			BaseURL:        cfg.FootballDataBaseURL,
			Token:          cfg.FootballDataToken,
			Timeout:        cfg.ProviderTimeout,
			MaxRetries:     cfg.ProviderMaxRetries,
			Logger:         logger,
			CircuitBreaker: breaker,
		}))
	}
	if cfg.PandaScoreEnabled {
		providers = append(providers, pandascore.NewClient(pandascore.ClientConfig{
			BaseURL:        cfg.PandaScoreBaseURL,
			Token:          cfg.PandaScoreToken,
			Timeout:        cfg.ProviderTimeout,
			MaxRetries:     cfg.ProviderMaxRetries,
			LeagueID:       int(cfg.PandaScoreLeagueID),
			PerPage:        cfg.PandaScorePerPage,
			Logger:         logger,
			CircuitBreaker: breaker,
		}))
	}
	if cfg.KBOEnabled {
		providers = append(providers, kbo.NewClient(kbo.ClientConfig{
			BaseURL:        cfg.KBOBaseURL,
			Timeout:        cfg.ProviderTimeout,
			MaxRetries:     cfg.ProviderMaxRetries,
			Logger:         logger,
			CircuitBreaker: breaker,
		}))
	}
	if cfg.ESPNEnabled {
		providers = append(providers, espn.NewClient(espn.ClientConfig{
			BaseURL:        cfg.ESPNBaseURL,
			Timeout:        cfg.ProviderTimeout,
			MaxRetries:     cfg.ProviderMaxRetries,
			Logger:         logger,
			CircuitBreaker: breaker,
		}))
	}
	return providers
}

// Close releases broker and database handles. Safe on a partially built app.
func (a *Application) Close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close db failed", "error", err)
		}
	}
}

// ShutdownTimeout bounds graceful HTTP shutdown in main.
const ShutdownTimeout = 10 * time.Second
