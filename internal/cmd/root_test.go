package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommands(t *testing.T) {
	for _, name := range []string{"serve", "migrate", "seed"} {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
		assert.NotNil(t, c.RunE, name)
	}

	f := serveCmd.Flags().Lookup("seed")
	require.NotNil(t, f)
	assert.Equal(t, "false", f.DefValue)
}
