// Package format names the output formats of the dl command.
//
// TextFormat writes the token listings, program dumps and answers in
// their line oriented forms.  YAMLFormat and JSONFormat encode the same
// results as documents.
package format
