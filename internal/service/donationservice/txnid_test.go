package donationservice

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txnPattern = regexp.MustCompile(`^TXN_\d+_[0-9A-Z]{6}$`)

func TestNewTransactionID(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	id, err := newTransactionID(now)
	require.NoError(t, err)
	assert.Regexp(t, txnPattern, id)
	assert.Contains(t, id, fmt.Sprintf("TXN_%d_", now.UnixMilli()))
}

func TestNewTransactionID_Distinct(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := newTransactionID(now)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 90)
}
