// Package sqlite provides the web cache persistence adapter backed by SQLite.
//
// The store only contains derived cache state that can be rebuilt from the
// interests API.
package sqlite
