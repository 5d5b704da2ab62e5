package costperuse

import (
	"encoding/json"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// This file contains the codec for the persisted item collection: a single
// JSON array of item records, human readable and diff friendly. The same
// shape is used verbatim by the JSON export, so an export can be dropped back
// in place of the data file.

// jitem is the persisted form of an Item.
//
// Amounts are stored as plain JSON numbers, dateCreated and lastUsed as
// RFC 3339 strings, and usage events as millisecond epochs.
type jitem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Price        json.Number `json:"price"`
	ResaleValue  json.Number `json:"resaleValue"`
	Category     string      `json:"category"`
	UseCount     int         `json:"useCount"`
	UsageHistory []int64     `json:"usageHistory"`
	DateCreated  string      `json:"dateCreated"`
	LastUsed     *string     `json:"lastUsed"`
}

// DecodeItems reads a persisted item collection. It fails soft: malformed or
// non-array data yields an empty collection, never an error. Records from
// before resale tracking are migrated on the fly, backfilling a zero resale
// value and an empty usage history without touching any other field.
func DecodeItems(r io.Reader) []Item {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}

	var jitems []jitem
	if err := json.Unmarshal(data, &jitems); err != nil {
		// corrupted or non-array data: start over with an empty collection
		return nil
	}

	items := make([]Item, 0, len(jitems))
	for _, j := range jitems {
		it := Item{
			ID:           j.ID,
			Name:         j.Name,
			Price:        parseNumber(j.Price),
			ResaleValue:  parseNumber(j.ResaleValue),
			Category:     j.Category,
			UseCount:     j.UseCount,
			UsageHistory: make([]time.Time, 0, len(j.UsageHistory)),
		}
		for _, ms := range j.UsageHistory {
			it.UsageHistory = append(it.UsageHistory, time.UnixMilli(ms))
		}
		if t, err := time.Parse(time.RFC3339, j.DateCreated); err == nil {
			it.DateCreated = t
		}
		if j.LastUsed != nil {
			if t, err := time.Parse(time.RFC3339, *j.LastUsed); err == nil {
				it.LastUsed = &t
			}
		}
		items = append(items, it)
	}
	return items
}

// EncodeItems writes the item collection as a pretty-printed JSON array.
func EncodeItems(w io.Writer, items []Item) error {
	data, err := json.MarshalIndent(encodeItems(items), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func encodeItems(items []Item) []jitem {
	// an empty collection must encode as [], not null
	jitems := make([]jitem, 0, len(items))
	for _, it := range items {
		j := jitem{
			ID:           it.ID,
			Name:         it.Name,
			Price:        json.Number(it.Price.String()),
			ResaleValue:  json.Number(it.ResaleValue.String()),
			Category:     it.Category,
			UseCount:     it.UseCount,
			UsageHistory: make([]int64, 0, len(it.UsageHistory)),
			DateCreated:  it.DateCreated.Format(time.RFC3339),
		}
		for _, t := range it.UsageHistory {
			j.UsageHistory = append(j.UsageHistory, t.UnixMilli())
		}
		if it.LastUsed != nil {
			s := it.LastUsed.Format(time.RFC3339)
			j.LastUsed = &s
		}
		jitems = append(jitems, j)
	}
	return jitems
}

func parseNumber(n json.Number) decimal.Decimal {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
