package amounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("two fraction digits", func(t *testing.T) {
		m, err := Parse("8.00", "EUR")
		require.NoError(t, err)
		assert.Equal(t, int64(800), m.Amount())
		assert.Equal(t, "EUR", m.Currency().Code)
	})

	t.Run("integral amount and lower case currency", func(t *testing.T) {
		m, err := Parse("50", "eur")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), m.Amount())
	})

	t.Run("zero fraction currency", func(t *testing.T) {
		m, err := Parse("1200", "JPY")
		require.NoError(t, err)
		assert.Equal(t, int64(1200), m.Amount())
	})

	t.Run("too many fraction digits", func(t *testing.T) {
		_, err := Parse("8.001", "EUR")
		assert.Error(t, err)
	})

	t.Run("not positive", func(t *testing.T) {
		_, err := Parse("0", "EUR")
		assert.Error(t, err)

		_, err = Parse("-3.50", "EUR")
		assert.Error(t, err)
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := Parse("8.00", "XXY")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Parse("eight", "EUR")
		assert.Error(t, err)
	})
}

func TestFormatMajor(t *testing.T) {
	m, err := FromMinor(800, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "8.00", FormatMajor(m))

	m, err = FromMinor(12345, "USD")
	require.NoError(t, err)
	assert.Equal(t, "123.45", FormatMajor(m))

	m, err = FromMinor(500, "JPY")
	require.NoError(t, err)
	assert.Equal(t, "500.00", FormatMajor(m))
}
