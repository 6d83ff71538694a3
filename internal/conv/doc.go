// Package conv provides overflow-checked integer conversions for sizes
// read from flags and blob metadata.
package conv
