// Package vector holds the numeric primitives shared by this project:
//   - Euclidean distance with dimension checks
//   - the sentinel errors for invalid arguments
//   - feature vector encoding (BLOB) for SQLite storage
package vector
