// Package engine implements fee-narrative generation and compliance validation.
//
// The engine is a pure rule engine: it performs no I/O, holds no global state,
// and every choice of wording goes through an injected driven.PhraseSelector.
// Given the same vocabulary, templates, input and selector seed it produces
// byte-identical output.
//
// Pipeline:
//
//	classify -> group -> narrate sections -> compose -> format
//	  [-> detect type -> fill template] -> validate -> score -> alternatives
//
// An Engine is read-only after construction and safe for concurrent use as
// long as each call is given its own selector.
package engine
