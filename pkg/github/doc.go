// Package github provides a rate-limit-aware client for the public GitHub
// REST API (v3).
//
// The client covers the four read-only endpoints the portfolio pipeline
// needs: user identity, the paginated repository listing, per-repository
// language breakdowns, and readme content. All requests share one
// RateLimiter that is consulted before dispatch and reconciled from the
// X-RateLimit-* response headers after every response.
//
// Requests are strictly sequential. The anonymous quota is 60 requests per
// hour, so the paginator and enricher pace their calls rather than fan out.
package github
