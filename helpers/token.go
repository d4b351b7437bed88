package helpers

import (
	"crypto/rand"
	"math/big"
)

const tokenChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(charset string, n int) string {
	max := big.NewInt(int64(len(charset)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b)
}

// GenerateToken returns a high-entropy bearer token. Used for session and
// spin claim tokens, which are secrets.
func GenerateToken(n int) string {
	return randomString(tokenChars, n)
}

// GenerateCode returns an upper-case redeem code fragment.
func GenerateCode(n int) string {
	return randomString(codeChars, n)
}
