// Package delivery sends finished cards to webhook endpoints.
//
// A [Client] is bound to one webhook URL and one target platform at
// construction; the platform selects both the validation profile and the
// payload envelope. Only "teams" is currently supported.
//
// Delivery failures are never returned as errors: [Client.Send] converts
// network faults, timeouts, and non-2xx responses into a structured
// [Result], so callers always get a status they can log or display.
// Transient failures (network errors, 429, 5xx) are retried with
// exponential backoff before the result is reported.
package delivery
