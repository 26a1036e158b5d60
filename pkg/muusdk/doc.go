// Package muusdk is a client for the MuuSmart farm-management API gateway.
//
// The Client covers the gateway's REST surface: authentication, animals,
// stables, health records, milk and weight production, marketing campaigns,
// reports, admin data, and the AI assistant. Authenticated requests pull
// the bearer token from a TokenProvider (normally the session manager) and
// report 401/403 responses through an UnauthorizedSignal so the session
// layer can force a logout.
package muusdk
