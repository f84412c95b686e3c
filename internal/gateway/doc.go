// Package gateway turns user content into Fraud DNA verdicts and registry
// snapshots. It owns the prompts and the response schemas, calls a
// structured-generation backend through [adapter.Generator] and validates
// and repairs whatever comes back. It holds no state.
package gateway
