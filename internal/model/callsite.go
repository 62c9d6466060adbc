package model

// CallSite is a detected invocation of a translation function.
type CallSite struct {
	Function string
	// Text is the de-escaped, concatenation-merged literal.
	Text string
	// Context is the optional disambiguating literal. Empty means none.
	Context string
	File    Path
	Line    int
}

// UnresolvedCall records a translation function call whose text argument
// could not be resolved to a literal.
type UnresolvedCall struct {
	Function string
	File     Path
	Line     int
	Reason   string
}

// Extraction is everything the detector found in one file.
type Extraction struct {
	CallSites  []CallSite
	Unresolved []UnresolvedCall
}

// FileExtraction pairs a scanned file with its extraction.
type FileExtraction struct {
	File       File
	Extraction Extraction
	// Cached reports whether the extraction was reused from the cache.
	Cached bool
}
