// Package tools provides host helpers shared by entry points.
//
// Ownership boundary:
// - external program execution
package tools
