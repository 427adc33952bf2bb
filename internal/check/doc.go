// Package check replays cosine similarity scenarios against package vector
// and, optionally, against the vec_cosine SQL function, and reports which
// scenarios hold.
package check
