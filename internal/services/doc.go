// Package services contains the application services of the cashier
// terminal: authentication, catalog management, checkout and reporting.
//
// Each service owns a pooled *sql.DB and obtains repositories from a
// repomanager.RepositoryManager, bound either to the pool or to a
// transaction opened with dbx.WithTx for operations spanning several
// statements.
package services
