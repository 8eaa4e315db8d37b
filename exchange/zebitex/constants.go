package zebitex

const (
	Host = "zebitex.com"

	ProductionURL = "https://" + Host + "/"
	StagingURL    = "https://staging." + Host + "/"

	AuthorizationHeader = "Authorization"
	AuthScheme          = "ZEBITEX-HMAC-SHA256"

	TickersPath            = "api/v1/orders/tickers"
	TickerSummaryPath      = "api/v1/orders/ticker_summary/"
	OrderbookPath          = "api/v1/orders/orderbook"
	PublicTradeHistoryPath = "api/v1/orders/trade_history"
	FundsPath              = "api/v1/funds"
	FundingHistoryPath     = "api/v1/funds/history"
	AccountHistoryPath     = "api/v1/history/account"
	OrderHistoryPath       = "api/v1/history/orders"
	TradeHistoryPath       = "api/v1/history/trades"
	OpenOrdersPath         = "api/v1/orders/current"
	CancelAllOrdersPath    = "api/v1/orders/cancel_all"
	OrdersPath             = "api/v1/orders"
)
