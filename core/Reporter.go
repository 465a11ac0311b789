package core

// Reporter publishes an aggregate search result.
type Reporter interface {
	Report(results SearchResults) error
}
