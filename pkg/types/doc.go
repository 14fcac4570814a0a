// Package types defines the public data model (ShellLink and its
// substructures), the decode/encode error taxonomy, and the options
// accepted by the reader and writer packages.
package types
