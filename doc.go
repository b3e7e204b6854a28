// Package attribkit estimates how much credit each touchpoint in an
// ordered event sequence contributes to an eventual binary outcome —
// conversions in marketing funnels, recoveries in treatment plans,
// completions in course pipelines.
//
// 🚀 What is attribkit?
//
//	A deterministic, in-memory attribution engine that brings together:
//		• Shapley values: Monte-Carlo permutation sampling over an arbitrary
//		  coalition value function, with exact enumeration for small sets
//		• Markov chains: first-order journey models and per-channel removal
//		  effects via absorption probabilities
//		• Hybrid blending: one normalized vector from both methods
//		• Differential privacy: Laplace noise calibrated to epsilon, with a
//		  session budget ledger and composition accounting
//
// ✨ Why choose attribkit?
//
//   - Auditable – sentinel errors, no silent coercion, no clamped results
//   - Reproducible – every random source is seeded; same seed, same output
//   - Pure Go – no cgo, in-memory only, no I/O owned by the engine
//   - Composable – each estimator is its own package with explicit Options
//
// Everything is organized under flat subpackages:
//
//	journey/ — Channel, Journey, Dataset, indicator tables & value functions
//	shapley/ — Monte-Carlo and exact Shapley estimation + diagnostics
//	markov/  — transition models, removal effects, conversion attribution
//	matrix/  — dense float64 matrices and the absorption linear solve
//	hybrid/  — convex combination of attribution vectors
//	privacy/ — Laplace mechanism, budget ledger, composition accounting
//	axioms/  — efficiency / symmetry / null-player / additivity checks
//	unified/ — one-call orchestration of the full pipeline
//
// Quick ASCII example:
//
//	Start ──► A ──► B ──► Conversion
//	Start ──► B ──► Conversion
//	Start ──► A ──► Null
//
//	two channels, three journeys: B carries both converting paths,
//	so every method must rank B at least as high as A.
//
// Dive into unified/example_test.go for the end-to-end walkthrough.
package attribkit
