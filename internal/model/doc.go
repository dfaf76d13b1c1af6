// Package model defines the data structures shared by the batchstat pipelines.
//
// The model package contains:
//   - Dataset and Tokens: the parsed contents of an input file
//   - FrequencyTable: an insertion-ordered key to count mapping
//   - Statistics and Conversion: computed result records
//   - Report: the payload a report writer turns into a results file
//   - Kind: which of the three pipelines produced a report
//
// None of these values outlive a single invocation and none are mutated
// after the computing stage has finished.
package model
