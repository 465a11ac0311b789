package reporters

import (
	"fmt"
	"time"

	"github.com/reaandrew/keywordsearch/core"
	"github.com/reaandrew/keywordsearch/utils"
	bolt "go.etcd.io/bbolt"
)

const DefaultBoltReport = "keyword_search.bolt"

// BoltReporter stores one bucket per keyword; each key in a bucket is a path
// the keyword was found in.
type BoltReporter struct {
	Output string
}

func (b BoltReporter) Report(results core.SearchResults) error {
	output := b.Output
	if output == "" {
		output = DefaultBoltReport
	}
	if err := utils.DeleteFileIfExists(output); err != nil {
		return err
	}

	db, err := bolt.Open(output, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("failed to open bolt database %s: %w", output, err)
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		for _, keyword := range results.Keywords() {
			bucket, err := tx.CreateBucketIfNotExists([]byte(keyword))
			if err != nil {
				return fmt.Errorf("failed to create bucket for '%s': %w", keyword, err)
			}
			for _, path := range results.Get(keyword) {
				if err := bucket.Put([]byte(path), []byte{}); err != nil {
					return fmt.Errorf("failed to store '%s' -> '%s': %w", keyword, path, err)
				}
			}
		}
		return nil
	})
}
