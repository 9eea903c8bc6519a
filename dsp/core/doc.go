// Package core provides array and numeric helpers shared by the signal
// packages: reversal, index-safe slicing, zero extension, edge padding and
// small buffer utilities.
//
// Every function returning a slice allocates a new one; caller input is never
// modified.
package core
