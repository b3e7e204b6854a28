// Package journey defines the observation model shared by every estimator:
// channels, ordered journeys, immutable datasets, binary-indicator tables,
// and the empirical coalition value functions derived from them.
//
// 🚀 What is a journey?
//
//	An ordered sequence of channel touches that ends in a binary outcome:
//	  [Search, Email, Display] → converted
//	  [Display]               → did not convert
//	Order inside a journey is causally significant; order across journeys
//	is not. A Dataset is a read-only snapshot of such observations plus
//	the channel universe they are allowed to reference.
//
// ✨ Key features:
//   - strict vocabulary: a journey touching a channel outside the declared
//     universe fails with ErrUnknownChannel — attribution runs are audited,
//     so bad input is rejected, never coerced
//   - derived value functions: conversion rate restricted to a coalition,
//     from either raw journeys or a one-row-per-observation indicator table
//   - immutability: constructors copy their inputs; accessors return copies
//
// ⚙️ Usage:
//
//	ds, err := journey.NewDataset([]journey.Journey{
//	  {Channels: []string{"A", "B"}, Converted: true},
//	  {Channels: []string{"B"}, Converted: true},
//	  {Channels: []string{"A"}, Converted: false},
//	})
//	v := journey.ConversionRateValue(ds)   // feeds shapley.Estimate / Exact
//
// Complexity: construction O(total touches); value function evaluation
// O(total touches) per coalition call (estimators cache aggressively).
package journey
