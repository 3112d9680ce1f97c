// Package sqlite provides SQLite-backed persistence for recorded
// validation runs.
//
// The store uses a single database file with embedded schema
// migrations, applied in version order on open. Netlists and
// validation results are stored as JSON columns; the submission ID and
// timestamp are first-class columns so history listings stay cheap.
package sqlite
