// Package services implements the business logic layer between the HTTP
// handlers and the aggregation engine.
//
// # Architecture
//
// Services follow these principles:
//
//	1. Context propagation for cancellation and tracing
//	2. Dependency injection for loose coupling
//	3. Domain-focused methods that encapsulate business rules
//
// # Available Services
//
// ReportService owns the mutable state of the system: the three uploaded
// datasets and the last computed result snapshot. All access goes through
// a single mutex, so dataset replacement and report computation never
// interleave, and each computation drains fully before the next request
// is admitted.
//
// # Error Handling
//
// Services return domain-specific errors that handlers transform into
// RFC 7807 responses; report.ErrNoSales marks a computation refused for
// lack of a sales dataset.
package services
