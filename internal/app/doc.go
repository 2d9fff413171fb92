// Package app wires the application together: logger construction, config
// loading, module registration, registry validation, and the pass-by-pass
// sweep driver that repeatedly invokes every loop instance in the grid.
package app
