package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	goredis "github.com/redis/go-redis/v9"

	"github.com/portalmembros/portal-api/internal/application/auth"
	"github.com/portalmembros/portal-api/internal/application/usecase"
	"github.com/portalmembros/portal-api/internal/application/videos"
	"github.com/portalmembros/portal-api/internal/infrastructure/postgres"
	infraredis "github.com/portalmembros/portal-api/internal/infrastructure/redis"
	"github.com/portalmembros/portal-api/internal/infrastructure/youtube"
	httpRouter "github.com/portalmembros/portal-api/internal/interfaces/http"
	"github.com/portalmembros/portal-api/pkg/config"
	"github.com/portalmembros/portal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	savedSupplierRepo := postgres.NewSavedSupplierRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)

	deps := httpRouter.RouterDeps{
		JWTSecret: cfg.JWT.Secret,
		Users:     userRepo,
	}

	// Redis é opcional: sem REDIS_ADDR o logout depende só da expiração do token.
	var revoker auth.TokenRevoker
	if cfg.Redis.Addr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		tokenStore := infraredis.NewTokenStore(rdb, cfg.App.Name)
		revoker = tokenStore
		deps.Tokens = tokenStore
	} else {
		log.Warn().Msg("REDIS_ADDR não configurado; revogação de token desativada")
	}

	deps.AuthUC = auth.NewAuthUseCase(userRepo, revoker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	deps.SupplierUC = usecase.NewSupplierUseCase(supplierRepo)
	deps.SavedSupplierUC = usecase.NewSavedSupplierUseCase(savedSupplierRepo)
	deps.MaterialUC = usecase.NewMaterialUseCase(materialRepo)
	deps.TemplateUC = usecase.NewTemplateUseCase(templateRepo)
	deps.TicketUC = usecase.NewTicketUseCase(ticketRepo)
	deps.UserAdminUC = usecase.NewUserAdminUseCase(userRepo)

	// Cache de vídeos: refresh imediato na subida + triggers diários de 11h e 20h.
	youtubeSvc := youtube.NewService(cfg.YouTube.APIKey)
	videoCache := videos.NewCache(youtubeSvc, cfg.YouTube.ChannelHandle, log)
	videoCache.Start()
	defer videoCache.Stop()
	deps.VideoCache = videoCache

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal de Membros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
