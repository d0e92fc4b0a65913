//go:build !pprof

package profile

import "sync"

// Modes returns an empty list when built without the pprof build tag.
var Modes = sync.OnceValue(func() []string { return nil })

// start is a no-op without the pprof build tag.
func start(string, string, bool) interface{ Stop() } { return ignore{} }
