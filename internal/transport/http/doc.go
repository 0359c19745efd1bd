// Package http implements HTTP request handlers for the sales report
// service. It provides a thin layer between HTTP transport and business
// logic: handlers parse requests, delegate to the report service, and
// format responses.
//
// # Request Flow
//
// A typical request flows through these layers:
//
//	HTTP Request → Chi Router → Middleware → Handler → ReportService → Engine
//	                                              ↓
//	HTTP Response ← Handler ← Service Response ←─┘
//
// # Error Handling
//
// All errors follow RFC 7807 Problem Details specification:
//
//	{
//	    "type": "/errors/report/sales-missing",
//	    "title": "Sales Dataset Missing",
//	    "status": 422,
//	    "detail": "Upload sales_transactions.xlsx first.",
//	    "instance": "/api/report/compute"
//	}
//
// # Endpoints
//
//	POST /api/datasets/{kind}   replace one dataset from an uploaded file
//	GET  /api/datasets          loaded record counts per dataset
//	POST /api/report/compute    run the aggregation engine
//	GET  /api/report            last computed snapshot
//	GET  /api/report/filters    known leaderboard filter names
//	GET  /api/report/export     last snapshot as CSV download
package http
