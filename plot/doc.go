// Package plot renders feature-pair scatter plots of an occupancy dataset,
// one series per label, using gonum.org/v1/plot. The output format follows
// the file extension (.png, .svg, .pdf, ...).
package plot
