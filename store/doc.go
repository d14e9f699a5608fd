// Package store persists occupancy datasets and K-sweep runs in SQLite.
// Feature vectors are kept as float64 BLOBs so a dataset round-trips
// exactly, and the registered knn_l2 function lets SQL rank examples by
// distance to a query.
package store
