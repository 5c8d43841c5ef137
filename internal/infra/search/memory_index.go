// Package search provides the in-process product index behind the search API.
package search

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"kalado/internal/domain/entity"
	"kalado/internal/domain/repository"
	"kalado/internal/infra/metrics"
)

// Field weights for keyword scoring. Title hits dominate.
const (
	titleWeight       = 3.0
	brandWeight       = 2.0
	descriptionWeight = 1.0
)

// memoryIndex is an in-process ProductIndex. Documents live in a primary map
// keyed by id; a term index maps every token of title, brand and description
// back to the documents containing it with a per-field weight. Upsert fully
// replaces a document, so replaying an event converges to the last snapshot.
type memoryIndex struct {
	mu    sync.RWMutex
	docs  map[int64]*repository.ProductDocument
	terms map[string]map[int64]float64
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() repository.ProductIndex {
	return &memoryIndex{
		docs:  make(map[int64]*repository.ProductDocument),
		terms: make(map[string]map[int64]float64),
	}
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Upsert stores or fully replaces the document for doc.ID.
func (idx *memoryIndex) Upsert(_ context.Context, doc *repository.ProductDocument) error {
	stored := *doc
	stored.ImageURLs = append([]string(nil), doc.ImageURLs...)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.removeTermsLocked(doc.ID)
	idx.docs[doc.ID] = &stored
	idx.addTermsLocked(&stored)
	metrics.IndexedDocuments.Set(float64(len(idx.docs)))

	return nil
}

// Delete removes the document for id. Deleting an absent id is not an error.
func (idx *memoryIndex) Delete(_ context.Context, id int64) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.removeTermsLocked(id)
	delete(idx.docs, id)
	metrics.IndexedDocuments.Set(float64(len(idx.docs)))

	return nil
}

// Get returns a copy of the stored document.
func (idx *memoryIndex) Get(_ context.Context, id int64) (*repository.ProductDocument, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	doc, ok := idx.docs[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	copied := *doc
	copied.ImageURLs = append([]string(nil), doc.ImageURLs...)

	return &copied, nil
}

// Count returns how many documents the index holds, DELETED included.
func (idx *memoryIndex) Count(_ context.Context) (int64, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return int64(len(idx.docs)), nil
}

func (idx *memoryIndex) addTermsLocked(doc *repository.ProductDocument) {
	idx.indexFieldLocked(doc.ID, doc.Title, titleWeight)
	idx.indexFieldLocked(doc.ID, doc.Brand, brandWeight)
	idx.indexFieldLocked(doc.ID, doc.Description, descriptionWeight)
}

func (idx *memoryIndex) indexFieldLocked(id int64, text string, weight float64) {
	for _, term := range tokenize(text) {
		postings, ok := idx.terms[term]
		if !ok {
			postings = make(map[int64]float64)
			idx.terms[term] = postings
		}
		if weight > postings[id] {
			postings[id] = weight
		}
	}
}

func (idx *memoryIndex) removeTermsLocked(id int64) {
	doc, ok := idx.docs[id]
	if !ok {
		return
	}

	for _, field := range []string{doc.Title, doc.Brand, doc.Description} {
		for _, term := range tokenize(field) {
			if postings, ok := idx.terms[term]; ok {
				delete(postings, id)
				if len(postings) == 0 {
					delete(idx.terms, term)
				}
			}
		}
	}
}

// Search runs a query and returns one page of non-DELETED hits.
func (idx *memoryIndex) Search(_ context.Context, query repository.SearchQuery) (*repository.SearchResult, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	scores := idx.matchKeywordLocked(query.Keyword)

	var since time.Time
	switch query.TimeFilter {
	case repository.TimeFilterDay:
		since = time.Now().AddDate(0, 0, -1)
	case repository.TimeFilterWeek:
		since = time.Now().AddDate(0, 0, -7)
	case repository.TimeFilterMonth:
		since = time.Now().AddDate(0, -1, 0)
	}

	hits := make([]*repository.ProductDocument, 0)
	for id := range scores {
		doc := idx.docs[id]
		if doc == nil || doc.Status == entity.ProductDeleted {
			continue
		}
		if query.MinPrice != nil && doc.Price.Amount < *query.MinPrice {
			continue
		}
		if query.MaxPrice != nil && doc.Price.Amount > *query.MaxPrice {
			continue
		}
		if !since.IsZero() && doc.CreatedAt.Before(since) {
			continue
		}

		hits = append(hits, doc)
	}

	sortHits(hits, query.Sort, scores)

	total := int64(len(hits))
	page := paginate(hits, query.Page, query.Size)

	out := make([]*repository.ProductDocument, 0, len(page))
	for _, doc := range page {
		copied := *doc
		copied.ImageURLs = append([]string(nil), doc.ImageURLs...)
		out = append(out, &copied)
	}

	return &repository.SearchResult{
		Hits:  out,
		Total: total,
		Page:  query.Page,
		Size:  query.Size,
	}, nil
}

// matchKeywordLocked scores every document against the keyword. An empty
// keyword matches everything with a flat score. A query token matches an
// indexed term when one contains the other or they are within edit
// distance one, which absorbs small typos.
func (idx *memoryIndex) matchKeywordLocked(keyword string) map[int64]float64 {
	scores := make(map[int64]float64, len(idx.docs))

	tokens := tokenize(keyword)
	if len(tokens) == 0 {
		for id := range idx.docs {
			scores[id] = 1
		}

		return scores
	}

	for _, token := range tokens {
		for term, postings := range idx.terms {
			if !fuzzyMatch(term, token) {
				continue
			}
			for id, weight := range postings {
				scores[id] += weight
			}
		}
	}

	return scores
}

// fuzzyMatch reports whether an indexed term matches a query token.
func fuzzyMatch(term, token string) bool {
	if strings.Contains(term, token) || strings.Contains(token, term) {
		return true
	}
	if len(token) < 4 {
		return false
	}

	return editDistanceAtMostOne(term, token)
}

// editDistanceAtMostOne reports whether two strings differ by at most one
// insertion, deletion or substitution.
func editDistanceAtMostOne(a, b string) bool {
	la, lb := len(a), len(b)
	if la > lb {
		a, b = b, a
		la, lb = lb, la
	}
	if lb-la > 1 {
		return false
	}

	i, j, edits := 0, 0, 0
	for i < la && j < lb {
		if a[i] == b[j] {
			i++
			j++

			continue
		}

		edits++
		if edits > 1 {
			return false
		}
		if la == lb {
			i++
		}
		j++
	}

	return edits+(lb-j) <= 1
}

func sortHits(hits []*repository.ProductDocument, order repository.SortOrder, scores map[int64]float64) {
	switch order {
	case repository.SortPriceAsc:
		sort.Slice(hits, func(i, j int) bool {
			if hits[i].Price.Amount != hits[j].Price.Amount {
				return hits[i].Price.Amount < hits[j].Price.Amount
			}

			return hits[i].ID < hits[j].ID
		})
	case repository.SortPriceDesc:
		sort.Slice(hits, func(i, j int) bool {
			if hits[i].Price.Amount != hits[j].Price.Amount {
				return hits[i].Price.Amount > hits[j].Price.Amount
			}

			return hits[i].ID < hits[j].ID
		})
	default:
		// Newest first, better keyword score breaking ties.
		sort.Slice(hits, func(i, j int) bool {
			if !hits[i].CreatedAt.Equal(hits[j].CreatedAt) {
				return hits[i].CreatedAt.After(hits[j].CreatedAt)
			}
			if scores[hits[i].ID] != scores[hits[j].ID] {
				return scores[hits[i].ID] > scores[hits[j].ID]
			}

			return hits[i].ID > hits[j].ID
		})
	}
}

func paginate(hits []*repository.ProductDocument, page, size int) []*repository.ProductDocument {
	if size <= 0 {
		return hits
	}

	start := page * size
	if start >= len(hits) {
		return nil
	}

	end := start + size
	if end > len(hits) {
		end = len(hits)
	}

	return hits[start:end]
}
