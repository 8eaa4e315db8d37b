package exchange

import (
	"github.com/shopspring/decimal"
)

//
// Side is an enum that represents the side of the book an order sits on. AnySide is only meaningful
// as a history filter, where it means "do not filter".
//
type Side int

const (
	AnySide Side = iota
	Buy
	Sell
)

func (o Side) String() string {
	return [...]string{"", "buy", "sell"}[o]
}

//
// ParseSide maps the wire representation of a side back to the enum. The empty string maps to
// AnySide.
//
func ParseSide(s string) (Side, bool) {
	switch s {
	case "":
		return AnySide, true
	case "buy":
		return Buy, true
	case "sell":
		return Sell, true
	}

	return AnySide, false
}

//
// OrderType is an enum that represents how an order is to be matched.
//
type OrderType int

const (
	Limit OrderType = iota
	Market
)

func (o OrderType) String() string {
	return [...]string{"limit", "market"}[o]
}

//
// ParseOrderType maps the wire representation of an order type back to the enum.
//
func ParseOrderType(s string) (OrderType, bool) {
	switch s {
	case "limit":
		return Limit, true
	case "market":
		return Market, true
	}

	return Limit, false
}

//
// Order describes a new order to be placed. Bid and Ask are the currency codes of the pair (e.g.
// "BTC" and "EUR") and Market is the exchange's name for that pair (e.g. "btceur").
//
type Order struct {
	Bid    string
	Ask    string
	Side   Side
	Price  decimal.Decimal
	Amount decimal.Decimal
	Market string
	Type   OrderType
}

//
// HistoryQuery narrows down a history endpoint. Zero values are left out of the request entirely.
//
type HistoryQuery struct {
	Side      Side
	StartDate string
	EndDate   string
	Page      int
	Per       int
}
