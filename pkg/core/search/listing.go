// Package search resolves a free-text stock name to its six-digit exchange
// code. Two strategies run in order: a local listing index when one is
// configured, then a scrape of the Naver Finance search page. Resolution is
// best effort; an ambiguous name can resolve to the wrong listing.
package search

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// Listing is one row of the exchange listing table.
type Listing struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Market string `json:"market"`
}

// LoadListings reads a listing CSV with code, name and market columns.
func LoadListings(filePath string) ([]Listing, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	// Skip header row if present
	if len(records) > 0 && (records[0][0] == "Code" || records[0][0] == "code") {
		records = records[1:]
	}

	var listings []Listing
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		l := Listing{Code: record[0], Name: record[1]}
		if len(record) > 2 {
			l.Market = record[2]
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// ListingIndex answers name lookups over the listing table: exact match
// first, then case-insensitive substring, then a bleve match query as the
// loosest tier.
type ListingIndex struct {
	listings []Listing
	byName   map[string]string
	index    bleve.Index
	log      *zap.Logger
}

func NewListingIndex(listings []Listing, log *zap.Logger) *ListingIndex {
	li := &ListingIndex{
		listings: listings,
		byName:   make(map[string]string, len(listings)),
		log:      log,
	}
	for _, l := range listings {
		if _, ok := li.byName[l.Name]; !ok {
			li.byName[l.Name] = l.Code
		}
	}

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		log.Warn("listing index unavailable, falling back to scans", zap.Error(err))
		return li
	}
	batch := index.NewBatch()
	for _, l := range listings {
		// Code alone is not unique across markets.
		id := fmt.Sprintf("%s-%s", l.Code, l.Market)
		if err := batch.Index(id, l); err != nil {
			log.Warn("listing index unavailable, falling back to scans", zap.Error(err))
			return li
		}
	}
	if err := index.Batch(batch); err != nil {
		log.Warn("listing index unavailable, falling back to scans", zap.Error(err))
		return li
	}
	li.index = index
	return li
}

// Lookup resolves a name to a code, reporting false when no tier matches.
func (li *ListingIndex) Lookup(name string) (string, bool) {
	if code, ok := li.byName[name]; ok {
		return code, true
	}

	q := strings.ToLower(name)
	for _, l := range li.listings {
		if strings.Contains(strings.ToLower(l.Name), q) {
			return l.Code, true
		}
	}

	if li.index != nil {
		query := bleve.NewMatchQuery(name)
		query.SetField("name")
		req := bleve.NewSearchRequest(query)
		req.Size = 1
		req.Fields = []string{"code"}
		res, err := li.index.Search(req)
		if err == nil && len(res.Hits) > 0 {
			if code, ok := res.Hits[0].Fields["code"].(string); ok && code != "" {
				li.log.Debug("listing resolved via index match",
					zap.String("query", name), zap.String("code", code))
				return code, true
			}
		}
	}

	return "", false
}
