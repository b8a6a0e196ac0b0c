// Package testutil provides helpers shared by the package tests.
//
// Key helpers:
//   - CollectEvents / EventShapes: run the tokenizer and summarize its events
//   - MustDeserialize: parse markup and fail the test on error
//   - AssertJSON: compare a component tree with a JSON literal
//   - PlainText / LeafColors: inspect trees without caring about their shape
//   - NewMemFS: an afero memory filesystem seeded with files
//
// All test data should be defined inline; tests must not touch the real
// filesystem except through t.TempDir.
package testutil
