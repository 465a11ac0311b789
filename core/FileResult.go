package core

type FileStatus int

const (
	FileNoMatch FileStatus = iota
	FileMatched
	FileReadFailed
)

func (s FileStatus) String() string {
	switch s {
	case FileMatched:
		return "matched"
	case FileReadFailed:
		return "read_failed"
	default:
		return "no_match"
	}
}

// FileResult is what searching exactly one file produced. Matches holds every
// configured keyword mapped to either the file path or nothing. When the file
// could not be read Matches is empty and Err is set.
type FileResult struct {
	Path    string              `json:"path"`
	Matches map[string][]string `json:"matches"`
	Err     error               `json:"-"`
}

func (r FileResult) Status() FileStatus {
	if r.Err != nil {
		return FileReadFailed
	}
	for _, paths := range r.Matches {
		if len(paths) > 0 {
			return FileMatched
		}
	}
	return FileNoMatch
}
