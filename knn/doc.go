// Package knn implements the K-Nearest-Neighbors occupancy classifier and the
// error evaluators built on it.
//
// Prediction is a majority vote among the K reference points closest to the
// query under Euclidean distance. Neighbors are ranked by a stable sort, so
// equal distances keep dataset order, and a tied vote resolves to the smaller
// label (Unoccupied). K must lie in [1, N]; it is never clamped.
package knn
