package utils

import (
	"encoding/hex"
	"strings"

	"github.com/stretchr/testify/require"
)

// Hex decodes a hex string, ignoring spaces and newlines.
func Hex(s string) []byte {
	s = strings.NewReplacer(" ", "", "\n", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(s)
	require.NoError(testT, err)
	return b
}
