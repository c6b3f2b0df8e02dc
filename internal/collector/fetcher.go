package collector

import (
	"context"

	"MarketAsk/internal/model"
)

// Fetcher is the market data gateway. Implementations return
// model.ErrDataUnavailable (usually inside a *model.DataError) when the provider
// has nothing for the ticker.
type Fetcher interface {
	FetchHistory(ctx context.Context, ticker string, period model.Period) (*model.HistorySeries, error)
	FetchProfile(ctx context.Context, ticker string) (*model.CompanyProfile, error)
	Name() string
}
