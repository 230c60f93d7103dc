// Package peoplegen synthesizes populations of fake people and renders
// them in multiple output formats.
//
// The package has three parts: an enumerator of guaranteed-fake Social
// Security numbers, a stratified random population generator, and a set
// of record writers. The central entry points are [Generator.Generate],
// which produces a [People] slice, and [Write] / [WriteFile] /
// [Marshal], which render it.
//
// # SSN Enumeration
//
// [SSNGenerator] walks a finite prefix/middle/last space in a fixed
// odometer order, so every number within one full pass is distinct —
// there is no collision-prone random sampling. The default space uses
// only prefixes that are never issued to real people and holds
// 99,980,001 numbers. Generators either stop at exhaustion or cycle:
//
//	ssns := peoplegen.NewCyclingSSNGenerator()
//	ssn, _ := ssns.Next() // "900-01-0001"
//
// # Generation
//
// [Generator] draws names from caller-supplied lists (or the built-in
// Default* lists), birth dates uniformly within a year range, and
// salaries from a normal distribution. The gender split is exact per
// the configured percentages, and the result is shuffled:
//
//	gen := &peoplegen.Generator{Config: peoplegen.GenConfig{
//		Total:         1000,
//		FemalePercent: 50,
//		MalePercent:   50,
//		YearMin:       1935,
//		YearMax:       2007,
//		SalaryMean:    72641,
//		SalarySigma:   20000,
//	}}
//	people, err := gen.Generate(males, females, lasts)
//
// The Rand and SSNs fields are injectable so tests can reproduce a run
// exactly.
//
// # Output
//
// Four formats: [CSV] (RFC 4180, one header row), [JSON] (one document
// with a "people" array), [JSONL] (one independently parseable object
// per line), and [YAML] (one document with a "people" sequence).
// [WriteOptions] selects the included fields (sequential id, SSN,
// salary) and the key naming convention ([Snake], [Camel], [Pretty]).
// For a given options value, all four formats carry identical field
// names and values per record; only the envelope differs.
//
//	_, err := peoplegen.WriteFile("people.csv", peoplegen.CSV,
//		peoplegen.WriteOptions{Headers: peoplegen.Camel, SSNs: true}, people)
//
// Use [ParseFormat] and [ParseHeaderFormat] to convert CLI flag strings.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat], [ErrUnsupportedHeaderFormat] — unknown
//     format strings
//   - [ErrConfig] — percentages not summing to 100, inverted year
//     range, malformed salary distribution
//   - [ErrSSNSpace] — invalid custom SSN space
//   - [ErrSSNExhausted] — a non-cycling SSN source ran out mid-run
//   - [ErrNegativeSalary] — a salary draw came out negative; the run
//     aborts rather than clamping, which would skew the distribution
//   - [ErrEmptyNames] — a required name list is empty
package peoplegen
