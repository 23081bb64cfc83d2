// Package flatconf implements the flat lint configuration model: an
// ordered list of configuration blocks, each scoped by glob matchers and
// carrying plugin bindings, extended rule sets, rule overrides, language
// globals and plugin settings.
//
// The package resolves a configuration against a file path into a single
// effective rule table. Resolution is flat list concatenation with
// last-write-wins semantics; there is no inheritance graph.
package flatconf
