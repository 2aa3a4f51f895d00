// Package validate checks finished cards against a platform profile.
//
// A [Profile] captures a delivery target's constraints: a serialized size
// limit and minimum schema versions per element kind. Validation is a
// stateless pass over a card — the card is only read, never mutated, and two
// passes over an unchanged card produce identical reports.
//
// # Rule Order
//
// [Validator.Validate] evaluates rules in a fixed order and collects results
// into a [Report] rather than failing fast:
//
//  1. Structural: empty body → EMPTY_CARD
//  2. Schema: element needs a newer version than the card declares
//     → INVALID_FIELD_VERSION (one entry per element kind)
//  3. Size: serialized size over the profile limit → SIZE_LIMIT_EXCEEDED
//
// Suggestions are generated per failure in detection order, followed by a
// near-limit warning (above 80% of the ceiling) and an accessibility warning
// when no top-level element carries an id. Warnings never affect validity.
//
// # Profiles
//
// [ProfileFor] resolves built-in profiles by name ("teams" → 28 KB) and
// falls back to a 40 KB default for unknown names. [New] is the strict
// construction path: an unsupported target is a configuration error, not a
// silent fallback. Deployments can override limits via [LoadProfiles]
// (TOML).
package validate
