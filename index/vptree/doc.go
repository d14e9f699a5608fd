// Package vptree provides a Euclidean kNN index backed by the gonum
// vantage-point tree. It prunes the search with the triangle inequality and
// returns the same neighbors as the bruteforce index, except that which of
// several points tied at the k-th distance is kept is left to the tree.
package vptree
