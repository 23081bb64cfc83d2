// Package all registers every built-in plugin with the global registry.
// Import it with a blank identifier:
//
//	import _ "github.com/flatlint-labs/flatlint/pkg/plugins/all"
//
// Individual plugins can also be imported directly.
package all

import (
	// Each plugin registers itself via init().
	_ "github.com/flatlint-labs/flatlint/pkg/plugins/js"
	_ "github.com/flatlint-labs/flatlint/pkg/plugins/react"
	_ "github.com/flatlint-labs/flatlint/pkg/plugins/vitest"
)
