// Package embedding holds a fitted low-dimensional embedding of N samples:
// the posterior means (N×Q) and, optionally, the posterior variances (N×Q)
// of a variational latent-variable model.
//
// An Embedding is immutable once built. Storage is a gonum mat.Dense so the
// numeric code downstream (pairwise distances) can read rows without copying
// through an intermediate representation.
//
// Dimension selection
//
//	Models with automatic relevance determination switch off most latent
//	dimensions. WithDimensions(idx...) restricts every accessor to the given
//	columns, in the given order, so distances are computed only on the
//	dimensions that carry signal.
//
// Input
//
//	ReadCSV parses a numeric CSV (one sample per row, one latent dimension
//	per column). A first row that does not parse as numbers is treated as a
//	header and skipped.
//
// Errors
//
//	ErrEmpty     - no rows or no columns.
//	ErrShape     - variances shaped differently from means, ragged CSV.
//	ErrDimension - a selected dimension is outside [0, Q) or repeated.
//	ErrNaN       - NaN or ±Inf in means or variances, or a negative variance.
package embedding
