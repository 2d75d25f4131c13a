package multisearch

import (
	"errors"
	"fmt"

	"github.com/oarkflow/xsync"
)

var ErrSearcherNotFound = errors.New("searcher not found")

var searchers xsync.IMap[string, *Searcher]

func init() {
	searchers = xsync.NewMap[string, *Searcher]()
}

func GetSearcher(key string) (*Searcher, error) {
	s, ok := searchers.Get(key)
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: %s", ErrSearcherNotFound, key)
	}
	return s, nil
}

// GetOrPrepare returns the searcher registered under key, preparing and
// registering one over words if there is none.
func GetOrPrepare(key string, words []string) (*Searcher, error) {
	if s, ok := searchers.Get(key); ok && s != nil {
		return s, nil
	}
	s, err := Prepare(words, GetConfig(key))
	if err != nil {
		return nil, err
	}
	searchers.Set(key, s)
	return s, nil
}

func AddSearcher(key string, s *Searcher) {
	searchers.Set(key, s)
}

func RemoveSearcher(key string) {
	searchers.Del(key)
}
