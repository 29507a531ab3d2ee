package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(129), "THB")
	require.NoError(t, err)
	assert.Equal(t, "129", m.Amount().String())
	assert.Equal(t, THB, m.Currency())

	_, err = NewMoney(decimal.NewFromInt(1), "")
	assert.Error(t, err)
}

func TestNewMoneyTHBFromFloat(t *testing.T) {
	m := NewMoneyTHBFromFloat(259.5)
	assert.Equal(t, "259.5", m.Amount().String())
	assert.Equal(t, DefaultCurrency, m.Currency())
}

func TestNewMoneyTHBFromString(t *testing.T) {
	m, err := NewMoneyTHBFromString("149.00")
	require.NoError(t, err)
	assert.True(t, m.Equals(NewMoneyTHBFromFloat(149)))

	_, err = NewMoneyTHBFromString("abc")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyTHBFromFloat(100)
	b := NewMoneyTHBFromFloat(29)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "129", sum.Amount().String())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "71", diff.Amount().String())

	double := a.MultiplyByInt(2)
	assert.Equal(t, "200", double.Amount().String())
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	thb := NewMoneyTHBFromFloat(10)
	usd, err := NewMoney(decimal.NewFromInt(10), "USD")
	require.NoError(t, err)

	_, err = thb.Add(usd)
	assert.Error(t, err)
}

func TestMoneyComparisons(t *testing.T) {
	small := NewMoneyTHBFromFloat(10)
	big := NewMoneyTHBFromFloat(20)

	less, err := small.LessThan(big)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := big.GreaterThan(small)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, ZeroTHB().IsZero())
	assert.True(t, big.IsPositive())
	assert.True(t, small.Negate().IsNegative())
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "129 THB", NewMoneyTHBFromFloat(129).String())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	original := NewMoneyTHBFromFloat(259.5)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equals(decoded))
	assert.Equal(t, THB, decoded.Currency())
}

func TestMoneyJSONEmptyCurrencyDefaults(t *testing.T) {
	var decoded Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"42"}`), &decoded))
	assert.Equal(t, DefaultCurrency, decoded.Currency())
	assert.Equal(t, "42", decoded.Amount().String())
}
