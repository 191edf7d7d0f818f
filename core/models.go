package core

// Metadata describes the on-disk origin of a document.
// It is stored alongside the document in the external collection and is used
// for filtering and inspection, never for identity.
type Metadata struct {
	FilePath     string `json:"file_path"`
	RelativePath string `json:"relative_path"`
	Folder       string `json:"folder"`
	Filename     string `json:"filename"`
}

// Document is a unit of indexable text derived from a vault file.
// The Id is the upsert key: re-indexing an unchanged file overwrites the
// same record in the external store instead of creating a duplicate.
type Document struct {
	Id       string
	Content  string
	Metadata Metadata
}

// QueryResult is a single ranked match from a similarity search.
type QueryResult struct {
	Id       string         `json:"id"`
	Document string         `json:"document"`
	Metadata map[string]any `json:"metadata"`
	Distance float64        `json:"distance"`
}

// ProcessingStats accumulates file classification counts for one pipeline run.
type ProcessingStats struct {
	TotalFiles      int
	Processed       int
	Empty           int
	PlaceholderOnly int
	EncodingErrors  int
	BatchesCreated  int
}

// Excluded returns the number of files that were seen but not indexed.
func (s *ProcessingStats) Excluded() int {
	return s.Empty + s.PlaceholderOnly + s.EncodingErrors
}

// SuccessRate returns the fraction of files successfully processed as a
// percentage. Returns 0 when no files were seen.
func (s *ProcessingStats) SuccessRate() float64 {
	if s.TotalFiles == 0 {
		return 0
	}
	return float64(s.Processed) / float64(s.TotalFiles) * 100.0
}

// UploadStats accumulates batch upload counts for one pipeline run.
type UploadStats struct {
	TotalBatches      int
	SuccessfulUploads int
	FailedUploads     int
	TotalDocuments    int
}

// UploadRate returns the fraction of batches successfully uploaded as a
// percentage. Returns 0 when no batches were attempted.
func (s *UploadStats) UploadRate() float64 {
	if s.TotalBatches == 0 {
		return 0
	}
	return float64(s.SuccessfulUploads) / float64(s.TotalBatches) * 100.0
}
