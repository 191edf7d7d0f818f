package ingestion

import (
	"fmt"
	"io"

	"github.com/poiesic/vaultsync/core"
)

// Report is the combined outcome of one ingestion run.
type Report struct {
	Collection string
	Processing core.ProcessingStats
	Upload     core.UploadStats
}

// Write prints the human-readable final report, mirroring what an operator
// wants to see after a reindex: classification counts, upload counts, and
// success percentages.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "REINDEXING COMPLETE")
	fmt.Fprintln(w, "============================================================")

	fmt.Fprintln(w, "\nFile Processing Statistics:")
	fmt.Fprintf(w, "  Total files found: %d\n", r.Processing.TotalFiles)
	fmt.Fprintf(w, "  Successfully processed: %d\n", r.Processing.Processed)
	fmt.Fprintf(w, "  Empty files: %d\n", r.Processing.Empty)
	fmt.Fprintf(w, "  Placeholder-only files: %d\n", r.Processing.PlaceholderOnly)
	fmt.Fprintf(w, "  Encoding errors: %d\n", r.Processing.EncodingErrors)
	fmt.Fprintf(w, "  Batches created: %d\n", r.Processing.BatchesCreated)

	fmt.Fprintln(w, "\nUpload Statistics:")
	fmt.Fprintf(w, "  Total batches: %d\n", r.Upload.TotalBatches)
	fmt.Fprintf(w, "  Successful uploads: %d\n", r.Upload.SuccessfulUploads)
	fmt.Fprintf(w, "  Failed uploads: %d\n", r.Upload.FailedUploads)
	fmt.Fprintf(w, "  Total documents uploaded: %d\n", r.Upload.TotalDocuments)

	fmt.Fprintln(w, "\nSuccess Rates:")
	fmt.Fprintf(w, "  File processing: %.1f%%\n", r.Processing.SuccessRate())
	fmt.Fprintf(w, "  Batch upload: %.1f%%\n", r.Upload.UploadRate())

	if r.Upload.FailedUploads > 0 {
		fmt.Fprintf(w, "\n[WARNING] %d batches failed to upload.\n", r.Upload.FailedUploads)
	} else {
		fmt.Fprintf(w, "\n[SUCCESS] All %d documents successfully upserted in collection %q\n",
			r.Upload.TotalDocuments, r.Collection)
	}
}
