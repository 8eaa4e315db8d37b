package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/lukehollenback/zebitex/exchange"
	"github.com/lukehollenback/zebitex/exchange/zebitex"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	method string
	path   string
	query  string
	body   string
	auth   string
}

func newTestClient(t *testing.T, hits *int32, last *capture) exchange.Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)

		body, _ := io.ReadAll(r.Body)
		*last = capture{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(body),
			auth:   r.Header.Get("Authorization"),
		}

		_, _ = io.WriteString(w, `{"result":"ok"}`)
	}))
	t.Cleanup(srv.Close)

	return zebitex.NewClient("key", "secret", false, zebitex.WithBaseURL(srv.URL+"/"))
}

func TestEveryCommandIsDispatched(t *testing.T) {
	var hits int32
	var last capture

	client := newTestClient(t, &hits, &last)

	cases := []struct {
		name   string
		args   []string
		method string
		path   string
	}{
		{"tickers", nil, http.MethodGet, "/api/v1/orders/tickers"},
		{"ticker", []string{"btceur"}, http.MethodGet, "/api/v1/orders/ticker_summary/btceur"},
		{"orderbook", []string{"btceur"}, http.MethodGet, "/api/v1/orders/orderbook"},
		{"public-trades", []string{"btceur"}, http.MethodGet, "/api/v1/orders/trade_history"},
		{"funds", nil, http.MethodGet, "/api/v1/funds"},
		{"funding-history", []string{"BTC"}, http.MethodGet, "/api/v1/funds/history"},
		{"account-history", []string{"2019-01-01"}, http.MethodGet, "/api/v1/history/account"},
		{"order-history", []string{"buy"}, http.MethodGet, "/api/v1/history/orders"},
		{"trade-history", []string{"-", "-", "-", "2"}, http.MethodGet, "/api/v1/history/trades"},
		{"open-orders", []string{"1", "20"}, http.MethodGet, "/api/v1/orders/current"},
		{"cancel-all", nil, http.MethodDelete, "/api/v1/orders/cancel_all"},
		{"cancel", []string{"42"}, http.MethodDelete, "/api/v1/orders/42/cancel"},
		{
			"new-order",
			[]string{"BTC", "EUR", "sell", "9000.50", "0.1", "btceur", "limit"},
			http.MethodPost,
			"/api/v1/orders",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			require.NoError(t, execute(context.Background(), client, c.name, c.args, out))
			assert.Equal(t, c.method, last.method)
			assert.Equal(t, c.path, last.path)
			assert.JSONEq(t, `{"result":"ok"}`, out.String())
		})
	}

	assert.Equal(t, int32(len(cases)), atomic.LoadInt32(&hits))
}

func TestHistoryArguments(t *testing.T) {
	var hits int32
	var last capture

	client := newTestClient(t, &hits, &last)

	require.NoError(t, execute(context.Background(), client, "trade-history", []string{"-", "-", "-", "2"}, io.Discard))
	assert.Equal(t, "page=2", last.query)
	assert.Contains(t, last.auth, "signed_params=page")

	require.NoError(t, execute(context.Background(), client, "account-history", []string{"2019-01-01", "2019-02-01"}, io.Discard))
	assert.Equal(t, "end_date=2019-02-01&start_date=2019-01-01", last.query)
	assert.Contains(t, last.auth, "signed_params=start_date;end_date")
}

func TestUsageErrorsNeverReachTheExchange(t *testing.T) {
	var hits int32
	var last capture

	client := newTestClient(t, &hits, &last)

	cases := map[string][]string{
		"ticker":        nil,
		"orderbook":     nil,
		"public-trades": nil,
		"cancel":        {"abc"},
		"new-order":     {"BTC", "EUR", "sideways", "1", "1", "btceur", "limit"},
		"open-orders":   {"-1"},
		"order-history": {"up"},
		"bogus":         nil,
	}

	for name, args := range cases {
		err := execute(context.Background(), client, name, args, io.Discard)
		require.Error(t, err, name)
		assert.Equal(t, exitUsage, exitCode(err), name)
	}

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestParseOrder(t *testing.T) {
	order, err := parseOrder([]string{"BTC", "EUR", "buy", "9000.50", "0.25", "btceur", "market"})
	require.NoError(t, err)

	assert.Equal(t, "BTC", order.Bid)
	assert.Equal(t, "EUR", order.Ask)
	assert.Equal(t, exchange.Buy, order.Side)
	assert.True(t, order.Price.Equal(decimal.RequireFromString("9000.5")))
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("0.25")))
	assert.Equal(t, "btceur", order.Market)
	assert.Equal(t, exchange.Market, order.Type)

	_, err = parseOrder([]string{"BTC"})
	assert.Error(t, err)

	_, err = parseOrder([]string{"BTC", "EUR", "buy", "nine", "0.25", "btceur", "limit"})
	assert.Error(t, err)
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitUsage, exitCode(exchange.NewUsageError("ticker", "market")))
	assert.Equal(t, exitError, exitCode(exchange.NewHTTPError(http.StatusUnauthorized, []byte(`{}`))))
	assert.Equal(t, exitError, exitCode(errors.New("boom")))
}
