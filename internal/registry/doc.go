// Package registry provides the central glue for the loop-node module system.
//
// The Registry stores mappings between the handler names used in manifests
// (e.g. "OnInvokeSamplerLoop") and the compiled Go functions and input types
// that implement them, alongside the parsed node-type definitions themselves.
//
// During startup the registry is populated and then validated so that the Go
// code and the public-facing manifests are in sync, turning a wide class of
// runtime errors into startup errors.
package registry
