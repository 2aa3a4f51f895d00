// Package card defines the adaptive card data model and its wire format.
//
// This package is the single source of truth for Cardforge's card structures,
// used for JSON output, validation, delivery payloads, and cross-tool
// interoperability.
//
// # Core Types
//
//   - [Card]: Root entity (version + ordered body + ordered actions)
//   - [Element]: Polymorphic body node (TextBlock, Image, Container, ...)
//   - [Action]: Card-level action (Action.OpenUrl, Action.Submit)
//   - [Width]: Column width — an integer weight or "auto"/"stretch"
//
// # Building Cards
//
// A Card is a mutable accumulator: elements and actions are appended in
// order, and the order is never changed afterwards. The append methods
// return the same card so calls can be chained:
//
//	c := card.New().
//	    AddElement(factory.Heading("Deploy finished", 1)).
//	    AddElement(factory.Text("All 12 services are healthy.")).
//	    AddAction(&card.OpenURLAction{Title: "View logs", URL: logsURL})
//
// A Card is not safe for concurrent mutation; confine one card to one
// goroutine while building.
//
// # Wire Format
//
// Marshaling produces the Adaptive Cards JSON schema:
//
//	{
//	  "type": "AdaptiveCard",
//	  "version": "1.5",
//	  "body": [{"type": "TextBlock", "text": "...", "wrap": true}],
//	  "actions": [{"type": "Action.OpenUrl", "title": "...", "url": "..."}]
//	}
//
// [Decode] parses the wire format back into a Card. Unknown element types
// round-trip unchanged through [RawElement].
package card
