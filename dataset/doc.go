// Package dataset models the labeled occupancy sensor data: the binary Label
// type, immutable Examples and Datasets, and loaders for the delimited text
// files the sensor logger produces.
package dataset
