package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionState_String(t *testing.T) {
	assert.Equal(t, "disconnected", Disconnected.String())
	assert.Equal(t, "connecting", Connecting.String())
	assert.Equal(t, "connected", Connected.String())
	assert.Equal(t, "reconnecting", Reconnecting.String())
	assert.Equal(t, "unknown", ConnectionState(42).String())
}

func TestViewportRange_Len(t *testing.T) {
	assert.Equal(t, 50, ViewportRange{Start: 0, End: 50}.Len())
	assert.Equal(t, 0, ViewportRange{Start: 10, End: 10}.Len())
	assert.Equal(t, 0, ViewportRange{Start: 10, End: 5}.Len())
}
