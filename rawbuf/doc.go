// Package rawbuf provides the fixed-size storage block backing dynarr.Array.
//
// # Ownership
//
// A Buffer is owned by exactly one holder at a time. Ownership moves
// wholesale via Swap (exchange with another buffer) or Release/Adopt
// (relinquish and re-wrap the raw slots). A Buffer cannot resize itself.
package rawbuf
