// Package registers models the classical data produced by running a
// circuit: named registers of bit, float, or complex rows, where row i
// holds the values recorded by shot i in request order.
//
// A Space bundles the three register families of one or more executions.
// Backends declare registers at run start, append one row per shot, and
// hand the Space to the caller, who treats it as read-only. Spaces pool
// across repeated executions of the same circuit template with Merge,
// which appends rows name-wise and never reorders them.
//
// A register can be present yet empty (declared, zero shots recorded);
// downstream estimators rely on that distinction, so lookups report
// presence separately from row count.
package registers
