// Package memory provides a byte-accounting ledger for scratch allocations
// made by transform kernels. Transforms reserve the exact byte size of each
// scratch buffer before using it and release the same size on every exit
// path, so a balanced ledger doubles as a leak check in tests. An optional
// byte limit turns the ledger into a budget, which is also how allocation
// failure is injected.
package memory
