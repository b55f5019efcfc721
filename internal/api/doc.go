// Package api implements the low-level HTTP client for the ShopDesk API.
//
// Every request issued by the SDK flows through Client.Do, which owns:
//
//   - request decoration: JSON content type, bearer access token, caller
//     header overrides, a client-generated X-Request-ID
//   - tenant scoping: superadmin sessions with a shop scope set have shop_id
//     injected into the query string (reads) or JSON object body (writes)
//   - response normalization: bodies parse into JSON, text or empty through
//     a mandatory fallback chain that never raises on malformed input
//   - error classification: hard 401/403 statuses and soft auth failures
//     embedded in 2xx bodies both classify as authentication failures
//   - recovery: at most one refresh-and-retry cycle per original call; a
//     failed refresh tears down the session
//   - a short-lived TTL cache for GET responses
//
// The package is internal; the root shopdesk package re-exposes typed
// resource methods and a public error taxonomy on top of it.
package api
