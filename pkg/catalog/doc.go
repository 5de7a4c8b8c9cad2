// Package catalog extracts book records from an XML catalog stream and
// classifies each one as valid or rejected.
//
// The package is split in three stages that run in a single sequential pass:
//
//   - Extractor pulls RawRecord values one at a time from an io.Reader. Only
//     the record currently being read is held in memory.
//   - Validate turns a RawRecord into a Result: either a ValidatedRecord or a
//     RejectedRecord carrying a Reason. Field problems are data, never errors.
//   - Processor drives both for a whole document, honours context
//     cancellation between records and builds the ResultSet.
//
// Basic usage:
//
//	p := catalog.NewProcessor(catalog.WithLogger(log))
//	set, err := p.Process(ctx, f)
//	switch {
//	case errors.Is(err, catalog.ErrMalformedInput):
//		// bad markup
//	case errors.Is(err, catalog.ErrOperationCancelled):
//		// ctx done between records
//	}
//
// Records are the direct children of the document root whose local name is
// "book" (see WithRecordElement). Recognised fields are title, author, genre,
// year and publisher; anything else inside a record is ignored.
package catalog
