// Package common holds the handful of helpers shared by config, fixtures
// and the CLI entry points that don't belong to any one domain package.
package common

// KiB, MiB and GiB convert a count of kibi/mebi/gibibytes into bytes, used
// for chunk-size and fixture-size flag defaults.
func KiB(n int64) int64 { return n * 1024 }
func MiB(n int64) int64 { return KiB(n) * 1024 }
func GiB(n int64) int64 { return MiB(n) * 1024 }
