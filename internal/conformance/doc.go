// Package conformance implements workspace conformance rules. A rule reads
// workspace files, compares them against its options, and reports the
// findings as a Result holding a severity and a list of violations. Rules
// never return errors: failures to read their inputs are reported as a
// single workspace violation so hosts see one result shape.
package conformance
