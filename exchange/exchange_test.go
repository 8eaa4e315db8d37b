package exchange

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSideRoundTrip(t *testing.T) {
	for _, side := range []Side{AnySide, Buy, Sell} {
		parsed, ok := ParseSide(side.String())
		assert.True(t, ok)
		assert.Equal(t, side, parsed)
	}

	_, ok := ParseSide("bid")
	assert.False(t, ok)
}

func TestOrderTypeRoundTrip(t *testing.T) {
	for _, ordType := range []OrderType{Limit, Market} {
		parsed, ok := ParseOrderType(ordType.String())
		assert.True(t, ok)
		assert.Equal(t, ordType, parsed)
	}

	_, ok := ParseOrderType("stop")
	assert.False(t, ok)
}

func TestUsageError(t *testing.T) {
	err := errors.Wrap(NewUsageError("orderbook", "market"), "cli")

	assert.True(t, errors.Is(err, ErrMissingArgument))
	assert.Equal(t, "cli: orderbook: no market provided", err.Error())
}

func TestHTTPError(t *testing.T) {
	assert.Equal(t, "server responded with a 502 status code", NewHTTPError(502, nil).Error())
	assert.Equal(
		t,
		`server responded with a 401 status code (body: {"error":"bad signature"})`,
		NewHTTPError(401, []byte(`{"error":"bad signature"}`)).Error(),
	)
}
