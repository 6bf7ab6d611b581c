// Package analytics derives wrestler, team, tournament and time-series statistics
// from flat match rows. Everything here is pure: callers load rows from the store
// and hand them over, so each function recomputes from scratch and is safe to call concurrently.
package analytics
