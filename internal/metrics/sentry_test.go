package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_EmptyDSNDisables(t *testing.T) {
	m, err := Init("", "test")
	require.NoError(t, err)
	assert.False(t, m.Enabled())
}

func TestInit_BadDSN(t *testing.T) {
	m, err := Init("not a dsn", "test")
	assert.Error(t, err)
	assert.False(t, m.Enabled())
}

func TestRecord_NoPanic(t *testing.T) {
	ctx := context.Background()

	for _, m := range []*SentryMetrics{nil, NewSentryMetrics(false), NewSentryMetrics(true)} {
		assert.NotPanics(t, func() {
			m.RecordCompile(ctx, "song.rpp", 3, 6, time.Millisecond, true)
			m.RecordCompile(ctx, "song.rpp", 0, 0, time.Millisecond, false)
			m.RecordBatch(ctx, 2, 1, time.Second, nil)
			m.RecordBatch(ctx, 2, 1, time.Second, errors.New("boom"))
			m.Flush(10 * time.Millisecond)
		})
	}
}
