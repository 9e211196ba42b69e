// Package profile loads calculator inputs from an HCL file instead of
// positional arguments. A profile looks like:
//
//	object_size   = "4K"
//	block_size    = "512"
//	cache_objects = "1024"
//	cache_size    = "co*2"
//	bench_size    = env.BENCH_SIZE
//	requests      = true
//
// Expressions are evaluated with a single variable, `env`, holding the
// process environment.
package profile
