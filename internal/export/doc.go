// Package export renders receipts and sales reports to files (plain text,
// CSV and PDF) and hands them to a Store.
//
// Stores:
//
//   - LocalStore writes into the export directory.
//   - S3Store uploads to an S3-compatible bucket (AWS or MinIO).
//   - MultiStore fans a file out to several stores.
package export
