// Package loop implements the stateful traversal core shared by every loop
// node: expansion of numeric range descriptors, skip-list filtering of
// categorical name sets, Cartesian combination spaces with mixed-radix
// indexing, and the per-instance traversal state machine (sequential, random
// and ping-pong modes).
//
// The package carries no HCL or registry dependencies. One invocation of a
// loop node maps to exactly one Invoke call against that instance's State.
package loop
