// Package mock provides test doubles for the ai package interfaces.
//
// The mocks default to deterministic behavior (hash-derived embeddings,
// echoed answers, language-prefixed translations) so tests are reproducible
// without external services. Behavior can be overridden per-test by setting
// the exported function fields.
package mock
