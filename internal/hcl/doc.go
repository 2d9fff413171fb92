// Package hcl implements the HCL-backed config.Loader and config.Converter:
// file discovery, manifest and grid decoding, type-expression translation,
// and the binding between cty values and node input structs.
package hcl
