package constants

// DocumentStatus is the outcome of extracting one source file.
type DocumentStatus string

const (
	DocumentOK      DocumentStatus = "OK"      // all requested tables extracted
	DocumentPartial DocumentStatus = "PARTIAL" // summary ok, some other table missing
	DocumentFailed  DocumentStatus = "FAILED"  // mandatory part missing; counted as failure
)
