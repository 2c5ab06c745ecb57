package pivotlog_test

import (
	"testing"

	"github.com/silvanis/pivot/pivotlog"
	"github.com/stretchr/testify/require"
)

func TestDisabledByDefault(t *testing.T) {
	require.False(t, pivotlog.Enabled())
}

func TestSetEnabledToggles(t *testing.T) {
	pivotlog.SetEnabled(true)
	require.True(t, pivotlog.Enabled())

	pivotlog.SetEnabled(false)
	require.False(t, pivotlog.Enabled())
}

// Tracef must not panic regardless of enablement; this is the only
// externally observable behavior since it writes to stderr rather than
// a capturable buffer.
func TestTracefDoesNotPanicWhenDisabled(t *testing.T) {
	pivotlog.SetEnabled(false)
	require.NotPanics(t, func() {
		pivotlog.Tracef("no-op trace %d", 1)
	})
}

func TestTracefDoesNotPanicWhenEnabled(t *testing.T) {
	pivotlog.SetEnabled(true)
	defer pivotlog.SetEnabled(false)
	require.NotPanics(t, func() {
		pivotlog.Tracef("enabled trace %d", 1)
	})
}
