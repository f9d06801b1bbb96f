package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"sponsortrack/internal/config"
	"sponsortrack/internal/database"
	"sponsortrack/internal/dealview"
	"sponsortrack/internal/export"
	"sponsortrack/internal/logger"
	"sponsortrack/internal/pdf"
	"sponsortrack/internal/repositories"
	"sponsortrack/internal/seed"
	"sponsortrack/internal/services"
)

func main() {
	force := flag.Bool("force", false, "seed even if deals already exist")
	report := flag.Bool("report", false, "write deals.xlsx and a PDF summary into files.root_dir after seeding")
	seedValue := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.Configure(cfg.Log.Level)
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Database.DSN)
	if err != nil {
		log.WithError(err).Fatal("Ошибка подключения к БД")
	}
	defer db.Close()

	if err := database.MigrateUp(db, log); err != nil {
		log.WithError(err).Fatal("Ошибка миграций")
	}

	orgRepo := repositories.NewOrganizationRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	dealRepo := repositories.NewDealRepository(db)

	existing, err := dealRepo.CountDeals(ctx)
	if err != nil {
		log.WithError(err).Fatal("Не удалось посчитать сделки")
	}
	if existing > 0 && !*force {
		log.WithField("deals", existing).Info("База уже заполнена, используйте -force")
		return
	}

	// уведомления при сидировании не шлём
	dealService := services.NewDealService(dealRepo, accountRepo, services.NopNotifier{}, log)
	seeder := &seed.Seeder{
		Organizations: services.NewOrganizationService(orgRepo),
		Accounts:      services.NewAccountService(accountRepo),
		Deals:         dealService,
		Rand:          rand.New(rand.NewPCG(*seedValue, *seedValue>>1)),
		Now:           time.Now,
		Log:           log,
	}
	res, err := seeder.Run(ctx)
	if err != nil {
		log.WithError(err).Fatal("Ошибка заполнения базы")
	}
	log.WithFields(logrus.Fields{
		"organizations": res.Organizations,
		"accounts":      res.Accounts,
		"deals":         res.Deals,
	}).Info("Database seeded successfully")

	if *report {
		if err := writeReports(ctx, cfg, dealService, log); err != nil {
			log.WithError(err).Fatal("Ошибка формирования отчётов")
		}
	}
}

func writeReports(ctx context.Context, cfg *config.Config, deals *services.DealService, log *logrus.Logger) error {
	view, err := deals.View(ctx, services.DealScope{}, dealview.Filter{})
	if err != nil {
		return err
	}

	gen := pdf.NewReportGenerator(cfg.Files.RootDir, cfg.Files.FontPath)
	pdfPath, err := gen.SaveReport(pdf.ReportData{Title: "Seeded deals", Scope: "all deals", View: view, GeneratedAt: time.Now()}, "")
	if err != nil {
		return err
	}

	book, err := export.Workbook(view)
	if err != nil {
		return err
	}
	defer book.Close()
	if err := os.MkdirAll(cfg.Files.RootDir, 0o755); err != nil {
		return err
	}
	xlsxPath := filepath.Join(cfg.Files.RootDir, "deals.xlsx")
	if err := book.SaveAs(xlsxPath); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"pdf": pdfPath, "xlsx": xlsxPath}).Info("Reports written")
	return nil
}
