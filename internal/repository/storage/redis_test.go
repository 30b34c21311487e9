package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-agent/testing/suite"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := New(ctx, st.Addr())

		require.NoError(t, err)
		require.NoError(t, client.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		_, err := New(context.Background(), "127.0.0.1:1")

		require.Error(t, err)
	})
}
