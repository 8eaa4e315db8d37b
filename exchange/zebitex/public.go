package zebitex

import (
	"context"
	"net/url"

	"github.com/lukehollenback/zebitex/exchange"
)

func (o *Client) Tickers(ctx context.Context) (exchange.Response, error) {
	return o.publicRequest(ctx, TickersPath, nil)
}

func (o *Client) Ticker(ctx context.Context, market string) (exchange.Response, error) {
	if market == "" {
		return nil, exchange.NewUsageError("ticker", "market")
	}

	return o.publicRequest(ctx, TickerSummaryPath+url.PathEscape(market), nil)
}

func (o *Client) Orderbook(ctx context.Context, market string) (exchange.Response, error) {
	if market == "" {
		return nil, exchange.NewUsageError("orderbook", "market")
	}

	return o.publicRequest(ctx, OrderbookPath, Params{}.Add("market", market))
}

func (o *Client) PublicTradeHistory(ctx context.Context, market string) (exchange.Response, error) {
	if market == "" {
		return nil, exchange.NewUsageError("public trade history", "market")
	}

	return o.publicRequest(ctx, PublicTradeHistoryPath, Params{}.Add("market", market))
}
