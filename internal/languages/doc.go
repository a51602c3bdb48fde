// Package languages provides the per-language rule tables used by the
// recognizers: month name variants, number words, duration unit words and
// the ordered list of date rules.
//
// Tables are built once when the package is initialised and registered in
// a static map keyed by language identifier. They are read-only afterwards
// and safe to share between goroutines.
//
// Adding a language means adding one file with a builder function and one
// entry in the builders map in registry.go.
package languages
