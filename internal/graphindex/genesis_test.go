package graphindex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGenesisWallets(t *testing.T) {
	t.Run("list is populated and free of duplicates", func(t *testing.T) {
		assert.NotEmpty(t, defaultGenesisWallets)

		seen := make(map[string]struct{}, len(defaultGenesisWallets))
		for _, address := range defaultGenesisWallets {
			_, duplicate := seen[address]
			assert.False(t, duplicate, "duplicate genesis wallet %s", address)
			seen[address] = struct{}{}
		}
	})

	t.Run("every address is a classic r-address", func(t *testing.T) {
		for _, address := range defaultGenesisWallets {
			assert.True(t, strings.HasPrefix(address, "r"), "unexpected address format: %s", address)
			assert.Greater(t, len(address), 24, "address too short: %s", address)
		}
	})

	t.Run("the genesis wallet itself is not in the list", func(t *testing.T) {
		assert.NotContains(t, defaultGenesisWallets, GenesisWalletAddress)
	})
}
