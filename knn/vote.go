package knn

import "github.com/viant/occupancy-knn/dataset"

// Vote returns the most frequent label. Labels are scanned in ascending
// order and only a strictly greater count replaces the current winner, so
// ties go to the smaller label.
func Vote(labels []dataset.Label) dataset.Label {
	var counts [2]int
	for _, l := range labels {
		if l.Valid() {
			counts[l]++
		}
	}
	best := dataset.Labels[0]
	for _, l := range dataset.Labels[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best
}
