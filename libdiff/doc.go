// Package libdiff computes line oriented differences between XIDX
// documents in their canonical encoding.
package libdiff
