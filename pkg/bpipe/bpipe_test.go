package bpipe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flatflow/flatflow/pkg/feature"
)

func TestDisabledOnFreshProcess(t *testing.T) {
	Flag.Reset()
	require.False(t, IsEnabled())
}

func TestEnableDisableCycle(t *testing.T) {
	Flag.Reset()
	require.False(t, IsEnabled())

	SetEnabled(true)
	require.True(t, IsEnabled())

	// Setting the same value again changes nothing.
	SetEnabled(true)
	require.True(t, IsEnabled())

	SetEnabled(false)
	require.False(t, IsEnabled())
}

func TestRegisteredAsFeatureFlag(t *testing.T) {
	f, ok := feature.Lookup("use_bpipe")
	require.True(t, ok)
	require.Same(t, Flag, f)
	require.False(t, Flag.Default())
}
