// Package validate checks a serialized MapBuffer against every structural
// and checksum invariant from the wire format, independent of constructing
// a Reader. It is also usable as a Reader's strict-mode precondition.
package validate
