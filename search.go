package multisearch

import (
	"slices"
	"sync"

	"github.com/oarkflow/gopool"
	"github.com/oarkflow/gopool/spinlock"
	"github.com/oarkflow/json"
	"github.com/oarkflow/log"

	"github.com/oarkflow/multisearch/lib"
	"github.com/oarkflow/multisearch/trie"
)

// Match is a refined span together with the dictionary word it covers.
type Match struct {
	Span
	Word string `json:"word"`
}

type cached struct {
	text  string
	spans []Span
}

// Searcher binds a dictionary and searches texts against it. It is safe for
// concurrent use: searches share the dictionary, mutations are exclusive.
type Searcher struct {
	mu    sync.RWMutex
	key   string
	dict  *trie.Trie[rune]
	cache *lib.LRU[uint64, cached]
	cfg   *Config
}

func Prepare(words []string, cfg ...*Config) (*Searcher, error) {
	c := MergeConfigs(cfg...).withDefaults()
	dict, err := trie.FromStrings(words)
	if err != nil {
		log.Error().Err(err).Str("key", c.Key).Msg("Unable to build dictionary")
		return nil, err
	}
	s := &Searcher{key: c.Key, dict: dict, cfg: c}
	if c.CacheSize > 0 {
		s.cache = lib.NewLRU[uint64, cached](c.CacheSize)
	}
	log.Info().Str("key", c.Key).Int("words", dict.Len()).Int("states", dict.Size()).Msg("Prepared searcher")
	return s, nil
}

func (s *Searcher) Key() string { return s.key }

// FindWords returns the raw spans of dictionary words in text, in rune offsets.
func (s *Searcher) FindWords(text string) ([]Span, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var key uint64
	if s.cache != nil {
		key = lib.Hash64(text)
		if hit, ok := s.cache.Get(key); ok && hit.text == text {
			return slices.Clone(hit.spans), nil
		}
	}
	spans, err := FindStrings(text, s.dict)
	if err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("Unable to search text")
		return nil, err
	}
	if s.cache != nil {
		s.cache.Put(key, cached{text: text, spans: slices.Clone(spans)})
	}
	return spans, nil
}

// Search returns the refined, non-overlapping matches in text order.
func (s *Searcher) Search(text string) ([]Match, error) {
	spans, err := s.FindWords(text)
	if err != nil {
		return nil, err
	}
	spans = RefineMatches(spans, true)
	runes := []rune(text)
	matches := make([]Match, len(spans))
	for i, span := range spans {
		matches[i] = Match{Span: span, Word: string(runes[span.Start:span.End])}
	}
	return matches, nil
}

// SearchBatch searches every text concurrently. Results and errors are
// indexed like texts.
func (s *Searcher) SearchBatch(texts []string) ([][]Match, []error) {
	results := make([][]Match, len(texts))
	errs := make([]error, len(texts))
	if len(texts) == 0 {
		return results, errs
	}
	pool := gopool.NewGoPool(s.cfg.Workers,
		gopool.WithTaskQueueSize(s.cfg.TaskQueueSize),
		gopool.WithLock(new(spinlock.SpinLock)),
		gopool.WithErrorCallback(func(err error) {
			log.Error().Err(err).Str("key", s.key).Msg("Batch search failed")
		}),
	)
	defer pool.Release()
	for i, text := range texts {
		pool.AddTask(func() (interface{}, error) {
			matches, err := s.Search(text)
			results[i], errs[i] = matches, err
			return matches, err
		})
	}
	pool.Wait()
	return results, errs
}

func (s *Searcher) AddWord(word string) error {
	return s.mutate(word, s.dict.AddWord)
}

func (s *Searcher) RemoveWord(word string) error {
	return s.mutate(word, s.dict.RemoveWord)
}

func (s *Searcher) mutate(word string, fn func([]rune) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn([]rune(word)); err != nil {
		log.Error().Err(err).Str("key", s.key).Str("word", word).Msg("Dictionary is corrupted")
		return err
	}
	s.purge()
	return nil
}

func (s *Searcher) purge() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *Searcher) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict.Contains([]rune(word))
}

func (s *Searcher) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lib.Strings(s.dict.Words())
}

func (s *Searcher) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict.Len()
}

// Dictionary snapshots the word list as msgpack.
func (s *Searcher) Dictionary() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict.MarshalBinary()
}

// LoadDictionary replaces the word list with a snapshot from Dictionary.
func (s *Searcher) LoadDictionary(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dict.UnmarshalBinary(data); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("Unable to load dictionary")
		return err
	}
	s.purge()
	log.Info().Str("key", s.key).Int("words", s.dict.Len()).Msg("Loaded dictionary")
	return nil
}

func (s *Searcher) Metadata() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"key":        s.key,
		"words":      s.dict.Len(),
		"states":     s.dict.Size(),
		"cache_size": s.cfg.CacheSize,
		"workers":    s.cfg.Workers,
	}
}

// ParseWords decodes a JSON array of words, dropping duplicates.
func ParseWords(data []byte) ([]string, error) {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return lib.Unique(words), nil
}
