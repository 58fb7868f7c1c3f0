// Package testutil provides helpers for tests: a seeded thread-safe RNG,
// snapshot fixture builders and a brute-force positional neighbor finder.
// It is not part of the public classification API.
package testutil
