package core

// FileSearcher checks a single file for a fixed set of keywords.
type FileSearcher interface {
	Keywords() []string
	SearchInFile(path string) FileResult
}
