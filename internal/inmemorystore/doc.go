// Package inmemorystore provides a thread-safe, in-memory value store for
// logged component batches. It resolves latest-at queries for the data UI and
// accepts edited values as a registry.Committer, storing them as static data
// that overrides anything logged on a timeline.
//
// It is suitable for tests, for the CLI when no database is configured, and
// for any scenario where component data does not need to be persisted.
package inmemorystore
