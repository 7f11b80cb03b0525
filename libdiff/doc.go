// Package libdiff computes line diffs between expected and actual
// interpreter output.
package libdiff
