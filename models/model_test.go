package models

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	config.NewLoggerService()
	config.DataBase = db

	return db
}

func mustCreateCrypto(t *testing.T, symbol string) *Cryptocurrency {
	t.Helper()

	crypto := &Cryptocurrency{Symbol: symbol, IsActive: true}
	require.NoError(t, CreateCryptocurrency(crypto))

	return crypto
}

func mustCreateUser(t *testing.T, email, username string) *User {
	t.Helper()

	user := &User{
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
	}
	require.NoError(t, CreateUser(user))

	return user
}

func mustCreateSnapshot(t *testing.T, cryptoID int64, price string, at time.Time) *MarketData {
	t.Helper()

	data := &MarketData{
		CryptoID:  cryptoID,
		Timestamp: at,
		Price:     decimal.RequireFromString(price),
	}
	require.NoError(t, CreateMarketData(data))

	return data
}
