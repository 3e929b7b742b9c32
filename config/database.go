package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DataBase *gorm.DB

func ConnectDatabase() error {
	var dialector gorm.Dialector

	if App != nil && App.DatabaseDriver == "sqlite" {
		path := os.Getenv("DATABASE_PATH")
		if len(path) == 0 {
			path = "coinfolio.db"
		}

		dialector = sqlite.Open(path)
	} else {
		var sslmode string
		if os.Getenv("DATABASE_SSLMODE") == "disable" {
			sslmode = "disable"
		} else {
			sslmode = "require"
		}

		dsn := "host=" + os.Getenv("DATABASE_HOST") +
			" port=" + os.Getenv("DATABASE_PORT") +
			" user=" + os.Getenv("DATABASE_USER") +
			" password=" + os.Getenv("DATABASE_PASS") +
			" dbname=" + os.Getenv("DATABASE_NAME") +
			" sslmode=" + sslmode

		dialector = postgres.Open(dsn)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newLogger,
	})

	if err != nil {
		return err
	}

	DataBase = db

	return nil
}
