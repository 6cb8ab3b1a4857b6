// Package contract has configuration and shared helpers used across the
// pipelog CLI, core logic and output writers.
package contract
