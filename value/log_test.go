package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	a := NewObject()
	b := NewObjectWithParent(a)
	require.ErrorIs(t, a.SetParent(b), ErrCyclicProto)

	_, err := FromYAML([]byte("n: 9007199254740993\n"))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "value", entries[0].LoggerName)
	assert.Equal(t, "rejected cyclic parent link", entries[0].Message)
	assert.Equal(t, "9007199254740993", entries[1].ContextMap()["value"])
}
