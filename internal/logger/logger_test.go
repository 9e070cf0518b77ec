package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	// Must not panic and must not write anywhere.
	log.Info().Str("k", "v").Msg("dropped")
}

func TestFromContext_NeverNil(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotNil(t, log)
	log.Debug().Msg("still fine")
}

func TestFromContext_RoundTrip(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	got.Info().Msg("scoped")
}
