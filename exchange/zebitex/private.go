package zebitex

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lukehollenback/zebitex/exchange"
)

func (o *Client) Funds(ctx context.Context) (exchange.Response, error) {
	return o.privateRequest(ctx, http.MethodGet, FundsPath, nil)
}

func (o *Client) FundingHistory(ctx context.Context, code string, kind string) (exchange.Response, error) {
	params := Params{}
	params = addString(params, "code", code)
	params = addString(params, "type", kind)

	return o.privateRequest(ctx, http.MethodGet, FundingHistoryPath, params)
}

func (o *Client) AccountHistory(ctx context.Context, query exchange.HistoryQuery) (exchange.Response, error) {
	query.Side = exchange.AnySide

	return o.privateRequest(ctx, http.MethodGet, AccountHistoryPath, historyParams(query))
}

func (o *Client) OrderHistory(ctx context.Context, query exchange.HistoryQuery) (exchange.Response, error) {
	return o.privateRequest(ctx, http.MethodGet, OrderHistoryPath, historyParams(query))
}

func (o *Client) TradeHistory(ctx context.Context, query exchange.HistoryQuery) (exchange.Response, error) {
	return o.privateRequest(ctx, http.MethodGet, TradeHistoryPath, historyParams(query))
}

func (o *Client) OpenOrders(ctx context.Context, page int, per int) (exchange.Response, error) {
	params := Params{}
	params = addInt(params, "page", page)
	params = addInt(params, "per", per)

	return o.privateRequest(ctx, http.MethodGet, OpenOrdersPath, params)
}

func (o *Client) CancelAllOrders(ctx context.Context) (exchange.Response, error) {
	return o.privateRequest(ctx, http.MethodDelete, CancelAllOrdersPath, nil)
}

func (o *Client) CancelOrder(ctx context.Context, id int64) (exchange.Response, error) {
	idStr := strconv.FormatInt(id, 10)

	return o.privateRequest(ctx, http.MethodDelete, OrdersPath+"/"+idStr+"/cancel", Params{}.Add("id", idStr))
}

func (o *Client) NewOrder(ctx context.Context, order exchange.Order) (exchange.Response, error) {
	if order.Market == "" {
		return nil, exchange.NewUsageError("new order", "market")
	}

	if order.Side == exchange.AnySide {
		return nil, exchange.NewUsageError("new order", "side")
	}

	params := Params{}.
		Add("bid", order.Bid).
		Add("ask", order.Ask).
		Add("side", order.Side.String()).
		Add("price", order.Price).
		Add("amount", order.Amount).
		Add("market", order.Market).
		Add("ord_type", order.Type.String())

	return o.privateRequest(ctx, http.MethodPost, OrdersPath, params)
}

//
// historyParams lays out the parameters shared by the history endpoints. Whatever the query leaves
// unset is not sent, and therefore not signed either.
//
func historyParams(query exchange.HistoryQuery) Params {
	params := Params{}
	params = addString(params, "side", query.Side.String())
	params = addString(params, "start_date", query.StartDate)
	params = addString(params, "end_date", query.EndDate)
	params = addInt(params, "page", query.Page)
	params = addInt(params, "per", query.Per)

	return params
}

func addString(params Params, key string, value string) Params {
	if value == "" {
		return params
	}

	return params.Add(key, value)
}

func addInt(params Params, key string, value int) Params {
	if value == 0 {
		return params
	}

	return params.Add(key, value)
}
