// Package pinia holds build metadata for the pinia CLI.
package pinia

// Version is the CLI version reported by --version.
const Version = "1.0.0"
