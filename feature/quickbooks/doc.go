// Package quickbooks implements the QBXML gateway used to read customers
// from QuickBooks Desktop and, in apply mode, create missing ones.
//
// QuickBooks Desktop only speaks QBXML through a request-processor session.
// The RequestProcessor interface models that session surface (open
// connection, begin session, process request, end session, close
// connection); HTTPProcessor implements it against a remote-connector bridge
// so this package never needs a COM runtime. Tests substitute a mock
// processor.
//
// # Session Lifecycle
//
// Sessions are never implicit: the Gateway acquires a connection and session
// per operation and releases both on every exit path, including errors
// mid-request. Callers only see FetchCustomers and AddCustomers.
//
// # Record Mapping
//
// The customer's record id travels in the Fax field (the company keeps its
// internal customer ids there) and the display name in Name. The gateway
// hands raw rows to customer.Normalize, which owns id coercion and trimming.
//
// # Caching
//
// IndexCache keeps the normalized QuickBooks customer set behind a TTL with
// singleflight protection, so the HTTP serving path does not open a
// QuickBooks session per request.
package quickbooks
