package domain

// Statistics summarizes a working directory's records.
type Statistics struct {
	Completed int
	Retake    int
	Retouch   int
	Total     int
	Wrong     int
}

// ComputeStatistics counts outcomes over the images in imageList. Blunders
// count as retouch work.
func ComputeStatistics(imageList []string, records map[string]QCRecord, cards []CustomCard) Statistics {
	stats := Statistics{Total: len(imageList)}
	for _, path := range imageList {
		record, ok := records[BaseFilename(path)]
		if !ok {
			continue
		}
		switch record.NextAction {
		case NextActionRetouch, NextActionBlunder:
			stats.Retouch++
		case NextActionRetake:
			stats.Retake++
		}
		if record.QCDecision == DecisionWrong {
			stats.Wrong++
		}
		if IsComplete(record, cards) {
			stats.Completed++
		}
	}
	return stats
}
