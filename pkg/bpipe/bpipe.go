// Package bpipe holds the process-wide switch for FlatFlow's bpipe
// pipeline-parallel execution variant. The switch only records whether the
// variant is active; the scheduling logic it gates lives elsewhere in the
// host system.
package bpipe

import "github.com/flatflow/flatflow/pkg/feature"

// Flag is the underlying feature cell, registered as "use_bpipe" and
// disabled on a fresh process.
var Flag = feature.New("use_bpipe", "Run the bpipe pipeline-parallel variant.", false)

// IsEnabled reports whether bpipe is enabled.
func IsEnabled() bool {
	return Flag.Enabled()
}

// SetEnabled enables or disables bpipe.
func SetEnabled(enabled bool) {
	Flag.SetEnabled(enabled)
}
