package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/company-track/internal/cli"
	"github.com/company-track/internal/config"
	"github.com/company-track/internal/repository"
	"github.com/company-track/internal/service"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	// Инициализация логгера: stderr, чтобы не мешать диалогу на stdout
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Переменные окружения из .env, если файл есть
	_ = godotenv.Load()

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := runMigrations(sqlDB, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Восстановление агрегата из хранилища
	repo := repository.NewCompanyRepository(db)
	company, err := repo.Load(context.Background())
	if err != nil {
		logger.Error("failed to load company", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация сервиса и меню
	svc := service.NewCompanyService(company, repo)
	menu := cli.NewMenu(svc, os.Stdin, os.Stdout, logger)

	if err := menu.Run(context.Background()); err != nil {
		logger.Error("run loop failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(cfg.Path), gormCfg)

	case "postgres":
		return gorm.Open(postgres.Open(cfg.DSN()), gormCfg)

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func runMigrations(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect := "sqlite3"
	if driver == "postgres" {
		dialect = "postgres"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
