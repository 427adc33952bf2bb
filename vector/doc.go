// Package vector implements the vector math used by this module. It includes:
//   - CosineSimilarity, the core similarity measure
//   - Dot, Magnitude and L2Distance primitives
//   - Add and Scale element-wise helpers
//   - CosineDistance over precomputed magnitudes
//   - Embedding encoding (BLOB) shared with the SQL functions in engine
//
// All functions are pure and safe for concurrent use.
package vector
