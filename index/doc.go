// Package index defines the neighbor-search abstraction used by the
// classifier. Implementations live in sub-packages: bruteforce scans every
// point; vptree prunes with a vantage-point tree.
package index
