package costperuse

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDecodeItems(t *testing.T) {
	// A record written by the current codec plus one from before resale
	// tracking existed, which lacks resaleValue, usageHistory and lastUsed.
	data := `[
  {
    "id": "a1",
    "name": "Jacket",
    "price": 120,
    "resaleValue": 30,
    "category": "Outerwear",
    "useCount": 2,
    "usageHistory": [1735689600000, 1735776000000],
    "dateCreated": "2025-01-01T00:00:00Z",
    "lastUsed": "2025-01-02T00:00:00Z"
  },
  {
    "id": "b2",
    "name": "Mug",
    "price": 12.5,
    "category": "Kitchen",
    "useCount": 4,
    "dateCreated": "2024-06-01T00:00:00Z"
  }
]`

	items := DecodeItems(strings.NewReader(data))
	if len(items) != 2 {
		t.Fatalf("DecodeItems() decoded %d items, want 2", len(items))
	}

	jacket := items[0]
	if jacket.ID != "a1" || jacket.Name != "Jacket" {
		t.Errorf("first record mangled: %+v", jacket)
	}
	if !jacket.Price.Equal(dec("120")) || !jacket.ResaleValue.Equal(dec("30")) {
		t.Errorf("amounts = %s / %s, want 120 / 30", jacket.Price, jacket.ResaleValue)
	}
	if len(jacket.UsageHistory) != 2 || jacket.UsageHistory[0].UnixMilli() != 1735689600000 {
		t.Errorf("usage history not restored: %v", jacket.UsageHistory)
	}
	if jacket.LastUsed == nil || !jacket.LastUsed.Equal(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("lastUsed = %v, want 2025-01-02", jacket.LastUsed)
	}

	// the old record is migrated in place: zero resale, empty history, nil lastUsed
	mug := items[1]
	if !mug.ResaleValue.IsZero() {
		t.Errorf("migrated resaleValue = %s, want 0", mug.ResaleValue)
	}
	if len(mug.UsageHistory) != 0 || mug.LastUsed != nil {
		t.Errorf("migration invented usage data: history %v, lastUsed %v", mug.UsageHistory, mug.LastUsed)
	}
	if mug.UseCount != 4 || !mug.Price.Equal(dec("12.5")) {
		t.Errorf("migration touched existing fields: %+v", mug)
	}
}

func TestDecodeItemsFailSoft(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"truncated json", `[{"id": "a1", "name":`},
		{"non-array", `{"id": "a1"}`},
		{"plain garbage", `not json at all`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if items := DecodeItems(strings.NewReader(c.data)); len(items) != 0 {
				t.Errorf("DecodeItems(%q) = %v, want empty", c.data, items)
			}
		})
	}
}

func TestEncodeItemsRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	in := []Item{
		testItem("Jacket", "120", "30", "Outerwear", 3, created),
		testItem("Mug", "12.5", "0", "", 0, created),
	}

	var buf bytes.Buffer
	if err := EncodeItems(&buf, in); err != nil {
		t.Fatalf("EncodeItems() returned an unexpected error: %v", err)
	}

	out := DecodeItems(&buf)
	if len(out) != len(in) {
		t.Fatalf("round trip lost items: got %d, want %d", len(out), len(in))
	}
	for n := range in {
		a, b := in[n], out[n]
		if a.ID != b.ID || a.Name != b.Name || a.Category != b.Category || a.UseCount != b.UseCount {
			t.Errorf("item %d changed: %+v vs %+v", n, a, b)
		}
		if !a.Price.Equal(b.Price) || !a.ResaleValue.Equal(b.ResaleValue) {
			t.Errorf("item %d amounts drifted: %s/%s vs %s/%s", n, a.Price, a.ResaleValue, b.Price, b.ResaleValue)
		}
		if len(a.UsageHistory) != len(b.UsageHistory) {
			t.Fatalf("item %d history length %d vs %d", n, len(a.UsageHistory), len(b.UsageHistory))
		}
		for k := range a.UsageHistory {
			if a.UsageHistory[k].UnixMilli() != b.UsageHistory[k].UnixMilli() {
				t.Errorf("item %d history entry %d drifted", n, k)
			}
		}
		if (a.LastUsed == nil) != (b.LastUsed == nil) {
			t.Errorf("item %d lastUsed presence changed", n)
		}
	}
}

func TestEncodeItemsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeItems(&buf, nil); err != nil {
		t.Fatalf("EncodeItems(nil) returned an unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty collection encoded as %q, want []", got)
	}
}

func TestLoadSaveItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DataFilename)

	// missing file is an empty collection, not an error
	if items := LoadItems(path); len(items) != 0 {
		t.Fatalf("LoadItems(missing) = %v, want empty", items)
	}

	in := []Item{testItem("Jacket", "120", "30", "Outerwear", 2, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))}
	if err := SaveItems(path, in); err != nil {
		t.Fatalf("SaveItems() returned an unexpected error: %v", err)
	}

	out := LoadItems(path)
	if len(out) != 1 || out[0].Name != "Jacket" || out[0].UseCount != 2 {
		t.Errorf("LoadItems() after save = %+v, want the saved item back", out)
	}
}

func TestOpenInventoryPersists(t *testing.T) {
	dir := t.TempDir()

	inv := OpenInventory(dir)
	if inv.Len() != 0 {
		t.Fatalf("fresh inventory has %d items, want 0", inv.Len())
	}
	if _, err := inv.Add("Jacket", "120", "Outerwear", "30"); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}

	// a second open over the same directory sees the mutation
	again := OpenInventory(dir)
	if again.Len() != 1 {
		t.Fatalf("reopened inventory has %d items, want 1", again.Len())
	}
	if got := again.Items()[0]; got.Name != "Jacket" || !got.ResaleValue.Equal(dec("30")) {
		t.Errorf("reopened item = %+v, want the added one", got)
	}
}
