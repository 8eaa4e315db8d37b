package zebitex

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsKeepInsertionOrder(t *testing.T) {
	params := Params{}.Add("zeta", "z").Add("alpha", "a").Add("mid", "m")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, params.Keys())

	canonical, err := params.Canonical()
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"z","alpha":"a","mid":"m"}`, canonical)
}

func TestParamsCanonicalOfEmptySet(t *testing.T) {
	var params Params

	canonical, err := params.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "{}", canonical)
	assert.Empty(t, params.Keys())
}

func TestParamsCanonicalValueTypes(t *testing.T) {
	params := Params{}.
		Add("page", 2).
		Add("price", decimal.RequireFromString("0.015")).
		Add("note", "a<b&c>d").
		Add("unicode", "é")

	canonical, err := params.Canonical()
	require.NoError(t, err)
	assert.Equal(t, `{"page":2,"price":"0.015","note":"a<b&c>d","unicode":"é"}`, canonical)
}

func TestParamsCanonicalLineSeparators(t *testing.T) {
	params := Params{}.
		Add("note", "a\u2028b\u2029c").
		Add("literal", `a\u2028b`)

	canonical, err := params.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "{\"note\":\"a\u2028b\u2029c\",\"literal\":\"a\\\\u2028b\"}", canonical)
}

func TestParamsMarshalAsNestedValue(t *testing.T) {
	b, err := json.Marshal(map[string]interface{}{"params": Params{}.Add("id", "42")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"params":{"id":"42"}}`, string(b))
}

func TestParamsSerializationFailure(t *testing.T) {
	_, err := Params{}.Add("bad", make(chan int)).Canonical()
	assert.Error(t, err)
}

func TestParamsValues(t *testing.T) {
	values := Params{}.
		Add("market", "btceur").
		Add("page", 3).
		Add("price", decimal.NewFromFloat(1.5)).
		Values()

	assert.Equal(t, "btceur", values.Get("market"))
	assert.Equal(t, "3", values.Get("page"))
	assert.Equal(t, "1.5", values.Get("price"))
}
