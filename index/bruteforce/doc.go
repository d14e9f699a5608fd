// Package bruteforce provides a vector index that answers kNN queries by
// scanning all points and stable-sorting them by Euclidean distance. Equal
// distances keep their original order, which makes results deterministic.
package bruteforce
