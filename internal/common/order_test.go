package common_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenrir/internal/common"
)

func TestOrderFillReducesRemaining(t *testing.T) {
	o := common.New(1, common.Buy, 100, 10, common.GoodTillCancel)

	require.NoError(t, o.Fill(4))
	assert.Equal(t, common.Quantity(6), o.RemainingQty)
	assert.Equal(t, common.Quantity(4), o.FilledQty())
	assert.False(t, o.IsFilled())

	require.NoError(t, o.Fill(6))
	assert.True(t, o.IsFilled())
}

func TestOrderFillOverflowIsReported(t *testing.T) {
	o := common.New(1, common.Sell, 100, 5, common.GoodTillCancel)

	err := o.Fill(6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFillOverflow))
	// Identity and remaining quantity are untouched by a rejected fill.
	assert.Equal(t, common.Quantity(5), o.RemainingQty)
}
