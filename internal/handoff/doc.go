// Package handoff owns the launch bootstrap protocol.
//
// Ownership boundary:
// - line sources and command decoding
// - argument/property accumulation
// - the one-shot control transfer to a resolved entry point
// - the parent-side writer for the same protocol
//
// Wire shape, one field per line, no escaping:
//
//	arg
//	<value>
//	property
//	<key>
//	<value>
//	launch
//	<entry point name>
//
// Lifecycle order:
// - arg/property (any order, any count) -> launch
//
// - nothing is read after launch.
package handoff
