// Package mapper infers a visual shape for arbitrary structured data and
// emits card elements.
//
// This package is the bridge between raw input (JSON text, CSV text, maps,
// lists, tabular records) and the normalized element tree: it classifies the
// input's shape once, then synthesizes elements through [factory] and
// [layout].
//
// # Shape Inference
//
// [FromJSON] classifies parsed input with a single tagged classification
// step and dispatches in priority order:
//
//  1. JSON object        → fact set (nested values rendered as indented JSON)
//  2. list of objects    → table (headers = first-seen union of keys)
//  3. any other list     → bulleted text lines
//  4. bare scalar        → no elements
//
// Table headers are collected in deterministic first-seen order across all
// records, scanning records left to right. Object member order follows the
// JSON document, not Go map iteration; the package decodes objects
// incrementally to preserve it.
//
// # Error Handling
//
// Nothing here returns an error. Malformed input degrades to a single inline
// error element (an attention-colored text block) that stays visible in the
// rendered card:
//
//	elements := mapper.FromJSON("{not json")
//	// → [TextBlock "Invalid JSON data" (attention)]
//
// # CSV Dialect
//
// [CSV] uses the comma-delimited, double-quote-enclosing dialect of
// encoding/csv: embedded commas and newlines are permitted inside quoted
// fields, and records may have varying field counts. The first record is the
// header row.
package mapper
