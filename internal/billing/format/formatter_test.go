package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillNumber_DefaultPrefix(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "INV-0001"},
		{42, "INV-0042"},
		{999, "INV-0999"},
		{10000, "INV-10000"},
	}

	for _, tc := range cases {
		got, err := BillNumber("", tc.seq)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestBillNumber_CustomPrefix(t *testing.T) {
	got, err := BillNumber("RCPT", 7)
	require.NoError(t, err)
	assert.Equal(t, "RCPT-0007", got)

	got, err = BillNumber("  INV  ", 12)
	require.NoError(t, err)
	assert.Equal(t, "INV-0012", got)
}

func TestBillNumber_InvalidSequence(t *testing.T) {
	_, err := BillNumber(DefaultPrefix, 0)
	assert.Error(t, err)

	_, err = BillNumber(DefaultPrefix, -5)
	assert.Error(t, err)
}
