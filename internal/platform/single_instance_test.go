package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromName(t *testing.T) {
	port := PortFromName("WorkoutTimer")
	assert.Equal(t, port, PortFromName("WorkoutTimer"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestAcquireSingleInstance(t *testing.T) {
	appName := fmt.Sprintf("WorkoutTimerTest-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("127.0.0.1:%d", PortFromName(appName)), guard.Address())

	second, err := AcquireSingleInstance(appName)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Equal(t, "", guard.Address())
}
