// Package fixer coordinates running php-cs-fixer against a document.
//
// A fix operation writes the document text to a temporary file, builds
// the command line from the current configuration, runs the external
// binary, and reads the rewritten file back as the result. At most one
// fix runs at a time; overlapping requests are rejected, not queued.
// The temporary file is removed and the in-flight slot released on
// every path out of the operation.
package fixer
