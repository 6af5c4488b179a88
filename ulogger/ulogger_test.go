package ulogger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToZerolog(t *testing.T) {
	logger := New("test")
	require.NotNil(t, logger)

	_, ok := logger.(*ZLoggerWrapper)
	assert.True(t, ok)
}

func TestNewGoCore(t *testing.T) {
	logger := New("test", WithLoggerType("gocore"))
	require.NotNil(t, logger)

	_, ok := logger.(*GoCoreLogger)
	assert.True(t, ok)
}

func TestZeroLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := NewZeroLogger("test", WithWriter(&buf), WithLevel("WARN"))

	assert.Equal(t, "warn", logger.GetLevel().String())

	logger.SetLogLevel("DEBUG")
	assert.Equal(t, "debug", logger.GetLevel().String())

	logger.SetLogLevel("bogus")
	assert.Equal(t, "info", logger.GetLevel().String())
}

func TestZeroLoggerNewInheritsLevel(t *testing.T) {
	var buf bytes.Buffer

	parent := NewZeroLogger("parent", WithWriter(&buf), WithLevel("ERROR"))
	child := parent.New("child")

	zchild, ok := child.(*ZLoggerWrapper)
	require.True(t, ok)
	assert.Equal(t, "error", zchild.GetLevel().String())
}

func TestTestLoggerImplementsLogger(t *testing.T) {
	var _ Logger = NewTestLogger(t)
	var _ Logger = NewVerboseTestLogger(t)
}
