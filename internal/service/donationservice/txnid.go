package donationservice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	txnAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	txnSuffixSize = 6
)

// newTransactionID formats TXN_<epoch millis>_<6 upper-case base36 chars>.
func newTransactionID(now time.Time) (string, error) {
	var suffix strings.Builder
	suffix.Grow(txnSuffixSize)
	max := big.NewInt(int64(len(txnAlphabet)))
	for i := 0; i < txnSuffixSize; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("can't read random bytes: %w", err)
		}
		suffix.WriteByte(txnAlphabet[n.Int64()])
	}
	return fmt.Sprintf("TXN_%d_%s", now.UnixMilli(), suffix.String()), nil
}
