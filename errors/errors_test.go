package errors

import (
	"bytes"
	Errors "errors"
	"log"
	"notehub-server/global"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleBasicError(t *testing.T) {
	var buf bytes.Buffer
	global.InternalLogger = log.New(&buf, "", 0)

	assert.False(t, HandleBasicError(nil))
	assert.Empty(t, buf.String())

	assert.True(t, HandleBasicError(Errors.New("scylla timeout")))
	assert.Contains(t, buf.String(), "scylla timeout")
}

func TestHandleComplexError(t *testing.T) {
	var buf bytes.Buffer
	global.MonitorLogger = log.New(&buf, "", 0)

	err := HandleComplexError("stream_write", "connection reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream_write")
	assert.Contains(t, buf.String(), "connection reset")
}
