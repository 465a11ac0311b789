package searchers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/reaandrew/keywordsearch/core"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const DefaultEncoding = "utf-8"

type Option func(*KeywordSearcher) error

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *KeywordSearcher) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithEncoding selects the text encoding files are decoded with. Any WHATWG
// label is accepted ("utf-8", "latin1", "windows-1252", ...).
func WithEncoding(name string) Option {
	return func(s *KeywordSearcher) error {
		if name == "" {
			name = DefaultEncoding
		}
		enc, err := htmlindex.Get(name)
		if err != nil {
			return core.NewConfigurationError("unsupported text encoding %q", name)
		}
		canonical, err := htmlindex.Name(enc)
		if err != nil {
			canonical = strings.ToLower(name)
		}
		s.encodingName = canonical
		s.encoding = enc
		return nil
	}
}

// WithSkipBinary reports files that look binary as unreadable instead of
// searching them.
func WithSkipBinary(skip bool) Option {
	return func(s *KeywordSearcher) error {
		s.skipBinary = skip
		return nil
	}
}

// KeywordSearcher looks for literal keywords in whole file contents.
type KeywordSearcher struct {
	keywords     []string
	logger       logrus.FieldLogger
	encoding     encoding.Encoding
	encodingName string
	skipBinary   bool
}

func NewKeywordSearcher(keywords []string, opts ...Option) (*KeywordSearcher, error) {
	if len(keywords) == 0 {
		return nil, core.NewConfigurationError("keywords list cannot be empty")
	}
	for i, keyword := range keywords {
		if keyword == "" {
			return nil, core.NewConfigurationError("keyword at position %d is empty", i)
		}
	}

	s := &KeywordSearcher{
		keywords: append([]string(nil), keywords...),
		logger:   logrus.StandardLogger(),
	}
	opts = append([]Option{WithEncoding(DefaultEncoding)}, opts...)
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *KeywordSearcher) Keywords() []string {
	return append([]string(nil), s.keywords...)
}

func (s *KeywordSearcher) Encoding() string {
	return s.encodingName
}

// SearchInFile never fails: a file that cannot be read is logged and comes back
// with no matches and Err set.
func (s *KeywordSearcher) SearchInFile(path string) core.FileResult {
	content, err := s.readContent(path)
	if err != nil {
		accessErr := &core.FileAccessError{Path: path, Err: err}
		entry := s.logger.WithField("path", path)
		if err == core.ErrBinaryContent {
			entry.Warnf("Skipping binary file %s", path)
		} else {
			entry.Errorf("Error opening or reading file %s: %v", path, err)
		}
		return core.FileResult{
			Path:    path,
			Matches: map[string][]string{},
			Err:     accessErr,
		}
	}

	matches := make(map[string][]string, len(s.keywords))
	for _, keyword := range s.keywords {
		if strings.Contains(content, keyword) {
			matches[keyword] = []string{path}
		} else {
			matches[keyword] = []string{}
		}
	}
	return core.FileResult{Path: path, Matches: matches}
}

func (s *KeywordSearcher) readContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s is not a regular file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	if s.skipBinary && enry.IsBinary(raw) {
		return "", core.ErrBinaryContent
	}

	decoded, err := s.decode(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as %s: %w", path, s.encodingName, err)
	}
	return decoded, nil
}

func (s *KeywordSearcher) decode(raw []byte) (string, error) {
	if s.encodingName == DefaultEncoding {
		// The utf-8 decoder substitutes U+FFFD for bad bytes; validate instead.
		valid, _, err := transform.Bytes(encoding.UTF8Validator, raw)
		if err != nil {
			return "", err
		}
		return string(valid), nil
	}
	decoded, err := s.encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
