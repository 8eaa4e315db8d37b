package exchange

import (
	"context"
)

//
// Client generically provides an interface to an object that can be used to interact with a
// cryptocurrency exchange's regular REST API. Public endpoints (tickers, orderbooks, public trade
// history) need no credentials. Private endpoints (funds, orders, account history) are signed with
// the credentials the client was constructed with.
//
// Whenever an endpoint fails – whether due to a usage error, a system failure, or an HTTP error –
// the error component of the response will be non-nil and, if at all possible, the response payload
// that was received will be returned.
//
type Client interface {

	//
	// Tickers retrieves the ticker summary of every market.
	//
	Tickers(ctx context.Context) (Response, error)

	//
	// Ticker retrieves the ticker summary of a single market.
	//
	Ticker(ctx context.Context, market string) (Response, error)

	//
	// Orderbook retrieves the current orderbook of a single market.
	//
	Orderbook(ctx context.Context, market string) (Response, error)

	//
	// PublicTradeHistory retrieves the most recent public trades of a single market.
	//
	PublicTradeHistory(ctx context.Context, market string) (Response, error)

	//
	// Funds retrieves the balances of the authenticated account.
	//
	Funds(ctx context.Context) (Response, error)

	//
	// FundingHistory retrieves the deposits and withdrawals of the specified currency code. The kind
	// narrows the history down to a single type of funding operation and may be left empty.
	//
	FundingHistory(ctx context.Context, code string, kind string) (Response, error)

	//
	// AccountHistory retrieves a page of the account's history. The side of the query is ignored.
	//
	AccountHistory(ctx context.Context, query HistoryQuery) (Response, error)

	//
	// OrderHistory retrieves a page of the account's past orders.
	//
	OrderHistory(ctx context.Context, query HistoryQuery) (Response, error)

	//
	// TradeHistory retrieves a page of the account's past trades.
	//
	TradeHistory(ctx context.Context, query HistoryQuery) (Response, error)

	//
	// OpenOrders retrieves a page of the account's currently open orders. Zero values for page and
	// per leave the choice to the exchange.
	//
	OpenOrders(ctx context.Context, page int, per int) (Response, error)

	//
	// CancelAllOrders cancels every open order of the account.
	//
	CancelAllOrders(ctx context.Context) (Response, error)

	//
	// CancelOrder cancels the order with the specified identifier.
	//
	CancelOrder(ctx context.Context, id int64) (Response, error)

	//
	// NewOrder places a new order.
	//
	NewOrder(ctx context.Context, order Order) (Response, error)
}
