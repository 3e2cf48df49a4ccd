package domain

// SavedState is the JSON session file kept in each working directory so a
// review can be resumed.
type SavedState struct {
	CSVFilename  string              `json:"csvFilename"`
	CurrentIndex int                 `json:"currentIndex"`
	CustomCards  []CustomCard        `json:"customCards"`
	ImageList    []string            `json:"imageList"`
	QCName       string              `json:"qcName"`
	Results      map[string]QCRecord `json:"results"`
}
