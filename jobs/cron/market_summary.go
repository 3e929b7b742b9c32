package cron

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jasonlvhit/gocron"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/models"
	"github.com/coinfolio/coinfolio/types"
)

const SummaryKey = "coinfolio:dashboard:summary"

type MarketSummaryJob struct {
}

func (j *MarketSummaryJob) Process() {
	interval := uint64(5)
	if config.App != nil && config.App.SummaryInterval > 0 {
		interval = config.App.SummaryInterval
	}

	s := gocron.NewScheduler()
	s.Every(interval).Minutes().Do(refreshMarketSummary)
	<-s.Start()
}

func refreshMarketSummary() {
	summary, err := BuildMarketSummary()
	if err != nil {
		config.Logger.Errorf("Failed to build market summary: %v", err)
		return
	}

	if err := config.Redis.SetKey(SummaryKey, summary, redis.KeepTTL); err != nil {
		config.Logger.Errorf("Failed to cache market summary: %v", err)
		return
	}

	config.Logger.Infof("Market summary refreshed, %d tickers.", len(summary.Tickers))
}

// BuildMarketSummary aggregates the latest snapshot of every active
// cryptocurrency into the dashboard ticker list.
func BuildMarketSummary() (types.MarketSummary, error) {
	summary := types.MarketSummary{
		UpdatedAt: time.Now().Unix(),
		Tickers:   []types.MarketTicker{},
	}

	cryptos, err := models.ActiveCryptocurrencies()
	if err != nil {
		return summary, err
	}

	for _, crypto := range cryptos {
		data, err := models.LatestMarketData(crypto.ID)
		if err != nil {
			continue
		}

		summary.Tickers = append(summary.Tickers, types.MarketTicker{
			Symbol:    crypto.Symbol,
			Price:     data.Price.String(),
			Volume:    data.Volume.String(),
			MarketCap: data.MarketCap.String(),
			Change24h: data.Change24h,
			Change7d:  data.Change7d,
		})
	}

	return summary, nil
}
