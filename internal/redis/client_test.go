package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		client, err := NewClient("", nil)
		assert.ErrorIs(t, err, ErrEndpointRequired)
		assert.Nil(t, client)
	})

	t.Run("connects to server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewClient(mr.Addr(), &Options{PoolSize: 2, MaxRetries: 1})
		require.NoError(t, err)
		defer client.Close()

		require.NoError(t, client.Ping(context.Background()).Err())
	})
}
