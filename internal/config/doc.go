// Package config holds the format-agnostic model of the application's
// configuration: node-type definitions loaded from module manifests and the
// grid of loop instances the user wants to sweep. Keeping the model free of
// HCL specifics lets the engine and registry work against one representation
// regardless of how it was loaded.
package config
