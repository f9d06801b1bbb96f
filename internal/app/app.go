package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sponsortrack/docs"
	"sponsortrack/internal/config"
	"sponsortrack/internal/database"
	"sponsortrack/internal/handlers"
	"sponsortrack/internal/logger"
	"sponsortrack/internal/middleware"
	"sponsortrack/internal/pdf"
	"sponsortrack/internal/realtime"
	"sponsortrack/internal/repositories"
	"sponsortrack/internal/routes"
	"sponsortrack/internal/services"
)

// Run поднимает HTTP-сервер и работает до отмены ctx.
func Run(ctx context.Context) error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}
	log := logger.Configure(cfg.Log.Level)

	// === DB ===
	db, err := database.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.LogError(log, "app", "Run", "close db", nil, err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.MigrateUp(db, log); err != nil {
			return err
		}
	}

	router := NewRouter(cfg, db, log)

	// === Run ===
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Сервер запущен")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("Останавливаем сервер")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter собирает репозитории, сервисы и хендлеры вокруг одного пула БД.
func NewRouter(cfg *config.Config, db *sql.DB, log *logrus.Logger) *gin.Engine {
	// === Repos ===
	orgRepo := repositories.NewOrganizationRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	dealRepo := repositories.NewDealRepository(db)

	// === Services ===
	orgService := services.NewOrganizationService(orgRepo)
	accountService := services.NewAccountService(accountRepo)
	// доски онлайн получают события всегда, email/telegram по конфигу
	hub := realtime.NewDealHub(log)
	notifier := append(services.MultiNotifier{hub}, buildNotifiers(cfg, log)...)
	dealService := services.NewDealService(dealRepo, accountRepo, notifier, log)

	// пустой font_path: встроенный шрифт
	reports := pdf.NewReportGenerator(cfg.Files.RootDir, cfg.Files.FontPath)

	// === Handlers ===
	orgHandler := handlers.NewOrganizationHandler(orgService)
	accountHandler := handlers.NewAccountHandler(accountService)
	dealHandler := handlers.NewDealHandler(dealService, reports)
	healthHandler := handlers.NewHealthHandler(db)

	// === Gin ===
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg.Server.AllowOrigins)))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return routes.SetupRoutes(router, orgHandler, accountHandler, dealHandler, healthHandler, hub)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// buildNotifiers включает только настроенные внешние каналы.
func buildNotifiers(cfg *config.Config, log *logrus.Logger) services.MultiNotifier {
	var notifiers services.MultiNotifier

	if cfg.Email.Enabled {
		notifiers = append(notifiers, services.NewEmailNotifier(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.DryRun,
			log,
		))
	}

	if cfg.Telegram.Token != "" || cfg.Telegram.DryRun {
		tg, err := services.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, cfg.Telegram.DryRun, log)
		if err != nil {
			logger.LogError(log, "app", "buildNotifier", "telegram disabled", nil, err)
		} else {
			notifiers = append(notifiers, tg)
		}
	}

	return notifiers
}

// Migrate выполняет `migrate up|down [steps]|status`.
func Migrate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: server migrate [up|down|status] [steps]")
	}
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}
	log := logger.Configure(cfg.Log.Level)

	db, err := database.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[0] {
	case "up":
		return database.MigrateUp(db, log)
	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid steps %q: %w", args[1], err)
			}
		}
		return database.MigrateDown(db, steps, log)
	case "status":
		return database.MigrateStatus(db, log)
	default:
		return fmt.Errorf("unknown migration command: %s", args[0])
	}
}
