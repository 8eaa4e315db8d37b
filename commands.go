package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lukehollenback/zebitex/exchange"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//
// usageError marks a failure that is the caller's fault (unknown command, malformed arguments). It
// is always detected before anything is sent to the exchange.
//
type usageError struct {
	msg string
}

func (o *usageError) Error() string {
	return o.msg
}

func usagef(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

//
// command maps a command-line verb onto a single endpoint of the exchange client.
//
type command struct {
	name    string
	args    string
	private bool
	run     func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error)
}

var commands = []command{
	{
		name: "tickers",
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			return client.Tickers(ctx)
		},
	},
	{
		name: "ticker",
		args: "<market>",
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			return client.Ticker(ctx, argAt(args, 0))
		},
	},
	{
		name: "orderbook",
		args: "<market>",
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			return client.Orderbook(ctx, argAt(args, 0))
		},
	},
	{
		name: "public-trades",
		args: "<market>",
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			return client.PublicTradeHistory(ctx, argAt(args, 0))
		},
	},
	{
		name:    "funds",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			return client.Funds(ctx)
		},
	},
	{
		name:    "funding-history",
		args:    "<code> [type]",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			return client.FundingHistory(ctx, argAt(args, 0), argAt(args, 1))
		},
	},
	{
		name:    "account-history",
		args:    "[start-date end-date page per]",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			query, err := parseHistoryQuery(append([]string{""}, args...))
			if err != nil {
				return nil, err
			}

			return client.AccountHistory(ctx, query)
		},
	},
	{
		name:    "order-history",
		args:    "[side start-date end-date page per]",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			query, err := parseHistoryQuery(args)
			if err != nil {
				return nil, err
			}

			return client.OrderHistory(ctx, query)
		},
	},
	{
		name:    "trade-history",
		args:    "[side start-date end-date page per]",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			query, err := parseHistoryQuery(args)
			if err != nil {
				return nil, err
			}

			return client.TradeHistory(ctx, query)
		},
	},
	{
		name:    "open-orders",
		args:    "[page per]",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			page, err := optionalInt(args, 0, "page")
			if err != nil {
				return nil, err
			}

			per, err := optionalInt(args, 1, "per")
			if err != nil {
				return nil, err
			}

			return client.OpenOrders(ctx, page, per)
		},
	},
	{
		name:    "cancel-all",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			return client.CancelAllOrders(ctx)
		},
	},
	{
		name:    "cancel",
		args:    "<id>",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			if len(args) != 1 {
				return nil, usagef("cancel expects exactly one order id")
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return nil, usagef("invalid order id %q", args[0])
			}

			return client.CancelOrder(ctx, id)
		},
	},
	{
		name:    "new-order",
		args:    "<bid> <ask> <side> <price> <amount> <market> <type>",
		private: true,
		run: func(ctx context.Context, client exchange.Client, args []string) (exchange.Response, error) {
			order, err := parseOrder(args)
			if err != nil {
				return nil, err
			}

			return client.NewOrder(ctx, order)
		},
	},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

//
// execute runs the named command and writes the decoded payload of the response to out as indented
// JSON.
//
func execute(ctx context.Context, client exchange.Client, name string, args []string, out io.Writer) error {
	cmd, ok := findCommand(name)
	if !ok {
		return usagef("unknown command %q", name)
	}

	resp, err := cmd.run(ctx, client, args)
	if err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(resp.Data(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to format response")
	}

	_, err = fmt.Fprintln(out, string(pretty))

	return err
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}

func optionalInt(args []string, i int, name string) (int, error) {
	s := argAt(args, i)
	if s == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, usagef("invalid %s %q", name, s)
	}

	return v, nil
}

//
// parseHistoryQuery reads the positional arguments [side start-date end-date page per]. A "-" skips
// an argument.
//
func parseHistoryQuery(args []string) (exchange.HistoryQuery, error) {
	var query exchange.HistoryQuery

	args = append([]string(nil), args...)

	for i := range args {
		if args[i] == "-" {
			args[i] = ""
		}
	}

	side, ok := exchange.ParseSide(argAt(args, 0))
	if !ok {
		return query, usagef("invalid side %q (expected buy or sell)", argAt(args, 0))
	}

	page, err := optionalInt(args, 3, "page")
	if err != nil {
		return query, err
	}

	per, err := optionalInt(args, 4, "per")
	if err != nil {
		return query, err
	}

	query.Side = side
	query.StartDate = argAt(args, 1)
	query.EndDate = argAt(args, 2)
	query.Page = page
	query.Per = per

	return query, nil
}

func parseOrder(args []string) (exchange.Order, error) {
	var order exchange.Order

	if len(args) != 7 {
		return order, usagef("new-order expects 7 arguments, got %d", len(args))
	}

	side, ok := exchange.ParseSide(args[2])
	if !ok || side == exchange.AnySide {
		return order, usagef("invalid side %q (expected buy or sell)", args[2])
	}

	price, err := decimal.NewFromString(args[3])
	if err != nil {
		return order, usagef("invalid price %q", args[3])
	}

	amount, err := decimal.NewFromString(args[4])
	if err != nil {
		return order, usagef("invalid amount %q", args[4])
	}

	ordType, ok := exchange.ParseOrderType(args[6])
	if !ok {
		return order, usagef("invalid order type %q (expected limit or market)", args[6])
	}

	order = exchange.Order{
		Bid:    args[0],
		Ask:    args[1],
		Side:   side,
		Price:  price,
		Amount: amount,
		Market: args[5],
		Type:   ordType,
	}

	return order, nil
}
