// Package template resolves bracketed placeholder tokens in user-authored
// log and signature text.
//
// A Provider owns a fixed, ordered set of named templates (DATE, TIME, USER,
// NUMBER, ...). Apply scans input text for bracketed occurrences such as
// "[DATE]" and substitutes each one with the template's resolved value.
// Resolution is lazy: a template's resolver only runs when its bracketed
// token is present in the text, because some resolvers are costly or have
// side effects (NUMBER may trigger a connector login).
//
// Collaborators (connector source, settings, formatter) are injected through
// Config; the package performs no I/O of its own.
package template
