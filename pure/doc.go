// Package pure holds memo tables for pure functions.
//
// Tableize assumes referential transparency: the same arguments always give
// the same result. Do not use it on functions that depend on time, I/O or
// any other outside state.
package pure
