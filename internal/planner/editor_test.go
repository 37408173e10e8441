package planner

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlobs struct {
	data    map[string][]byte
	saves   int
	saveErr error
	loadErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{data: map[string][]byte{}}
}

func (f *fakeBlobs) Load(_ context.Context, key string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	raw, ok := f.data[key]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return raw, nil
}

func (f *fakeBlobs) Save(_ context.Context, key string, data []byte) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = append([]byte(nil), data...)
	return nil
}

func newTestEditor(t *testing.T, blobs BlobStore) *Editor {
	t.Helper()
	return NewEditor(NewStore(context.Background(), blobs, "", nil))
}

func venueRef(id int) *int { return &id }

func itemTimes(items []PlanItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Time
	}
	return out
}

func itemIDs(items []PlanItem) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestEditor_AddAssignsIncreasingIDs(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()

	a := ed.Add(ctx, "2024-07-01", PlanItem{ActivityType: "Lunch", Time: "13:00"})
	b := ed.Add(ctx, "2024-07-01", PlanItem{ActivityType: "Swim"})
	c := ed.Add(ctx, "2024-07-02", PlanItem{ActivityType: "Boat", Time: "20:00"})

	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)
	assert.Equal(t, AnyTime, b.Time)
	assert.Equal(t, Daytime, b.TimeOfDay)
	assert.Equal(t, Nighttime, c.TimeOfDay)
	assert.Equal(t, "2024-07-02", c.Date)
	assert.Len(t, ed.Store().Items("2024-07-01"), 2)
}

func TestEditor_RemoveDropsEmptyDate(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()

	it := ed.Add(ctx, "2024-07-01", PlanItem{ActivityType: "Museum"})
	assert.False(t, ed.Remove(ctx, "2024-07-01", it.ID+100))
	assert.True(t, ed.Remove(ctx, "2024-07-01", it.ID))

	_, present := ed.Store().Snapshot()["2024-07-01"]
	assert.False(t, present, "empty date key must be deleted")
	assert.Empty(t, ed.Store().Dates())
}

func TestEditor_AddRemoveLengthAccounting(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()
	date := "2024-07-03"

	var ids []int64
	for i := 0; i < 6; i++ {
		ids = append(ids, ed.Add(ctx, date, PlanItem{ActivityType: "Stop"}).ID)
	}
	removed := 0
	for _, id := range []int64{ids[0], ids[3], ids[3], 9999} {
		if ed.Remove(ctx, date, id) {
			removed++
		}
	}

	assert.Equal(t, 2, removed)
	assert.Len(t, ed.Store().Items(date), 6-removed)
}

func TestEditor_ReorderMovesSingleItem(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()
	date := "2024-07-04"

	var ids []int64
	for i := 0; i < 5; i++ {
		ids = append(ids, ed.Add(ctx, date, PlanItem{ActivityType: "Stop"}).ID)
	}

	require.True(t, ed.Reorder(ctx, date, 0, 3))
	got := itemIDs(ed.Store().Items(date))
	assert.Equal(t, []int64{ids[1], ids[2], ids[3], ids[0], ids[4]}, got)

	require.True(t, ed.Reorder(ctx, date, 4, 0))
	got = itemIDs(ed.Store().Items(date))
	assert.Equal(t, []int64{ids[4], ids[1], ids[2], ids[3], ids[0]}, got)
}

func TestEditor_ReorderOutOfRangeIsNoop(t *testing.T) {
	blobs := newFakeBlobs()
	ed := newTestEditor(t, blobs)
	ctx := context.Background()
	date := "2024-07-05"

	for i := 0; i < 3; i++ {
		ed.Add(ctx, date, PlanItem{ActivityType: "Stop"})
	}
	before := itemIDs(ed.Store().Items(date))
	saves := blobs.saves

	for _, mv := range [][2]int{{-1, 0}, {0, 3}, {5, 1}, {1, -2}, {2, 2}} {
		assert.False(t, ed.Reorder(ctx, date, mv[0], mv[1]))
	}
	assert.False(t, ed.Reorder(ctx, "2030-01-01", 0, 1))

	assert.Equal(t, before, itemIDs(ed.Store().Items(date)))
	assert.Equal(t, saves, blobs.saves, "no-op reorders must not write")
}

func TestEditor_ReorderPreservesMultiset(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()
	date := "2024-07-06"

	for i := 0; i < 7; i++ {
		ed.Add(ctx, date, PlanItem{ActivityType: "Stop"})
	}
	want := itemIDs(ed.Store().Items(date))

	for _, mv := range [][2]int{{6, 0}, {2, 5}, {3, 3}, {0, 6}, {1, 4}} {
		ed.Reorder(ctx, date, mv[0], mv[1])
		got := itemIDs(ed.Store().Items(date))
		require.Len(t, got, len(want))
		sorted := append([]int64(nil), got...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		assert.Equal(t, want, sorted)
	}
}

func TestEditor_Clear(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()

	ed.Add(ctx, "2024-07-07", PlanItem{ActivityType: "Stop"})
	ed.Add(ctx, "2024-07-08", PlanItem{ActivityType: "Stop"})

	assert.True(t, ed.Clear(ctx, "2024-07-07"))
	assert.False(t, ed.Clear(ctx, "2024-07-07"))
	assert.Equal(t, []string{"2024-07-08"}, ed.Store().Dates())
}

func TestEditor_ToggleVenueScenario(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()
	date := "2024-07-01"
	item := PlanItem{ActivityType: "Dinner", VenueID: venueRef(42), Time: "20:00"}

	_, added := ed.ToggleVenue(ctx, date, item)
	require.True(t, added)
	items := ed.Store().Items(date)
	require.Len(t, items, 1)
	assert.Equal(t, 42, *items[0].VenueID)

	// Same venue at a different time still toggles off.
	item.Time = "13:00"
	removed, added := ed.ToggleVenue(ctx, date, item)
	assert.False(t, added)
	assert.Equal(t, items[0].ID, removed.ID)
	assert.Empty(t, ed.Store().Items(date))
	assert.NotContains(t, ed.Store().Snapshot(), date)
}

func TestEditor_ToggleResortsByTime(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()
	date := "2024-08-15"

	for _, tm := range []string{"22:00", AnyTime, "09:00"} {
		ed.Add(ctx, date, PlanItem{ActivityType: "Stop", Time: tm})
	}
	require.Equal(t, []string{"22:00", AnyTime, "09:00"}, itemTimes(ed.Store().Items(date)))

	ed.ToggleVenue(ctx, date, PlanItem{ActivityType: "Lunch", VenueID: venueRef(7), Time: "14:00"})
	assert.Equal(t, []string{"09:00", "14:00", "22:00", AnyTime}, itemTimes(ed.Store().Items(date)))

	ed.ToggleVenue(ctx, date, PlanItem{ActivityType: "Lunch", VenueID: venueRef(7), Time: "14:00"})
	assert.Equal(t, []string{"09:00", "22:00", AnyTime}, itemTimes(ed.Store().Items(date)))
}

func TestEditor_ToggleFreeformMatchesOnText(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()
	date := "2024-07-09"
	item := PlanItem{ActivityType: "Sightseeing", Notes: OldTownText, Time: "11:00"}

	_, added := ed.ToggleVenue(ctx, date, item)
	assert.True(t, added)
	_, added = ed.ToggleVenue(ctx, date, item)
	assert.False(t, added)
	assert.Empty(t, ed.Store().Items(date))
}

func TestEditor_ReplaceAssignsFreshIDs(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()

	local := ed.Add(ctx, "2024-07-10", PlanItem{ActivityType: "Stop"})
	got := ed.Replace(ctx, "2024-07-11", []PlanItem{
		{ID: local.ID, ActivityType: "Imported", Time: "10:00", Date: "1999-01-01"},
		{ID: local.ID, ActivityType: "Imported too"},
	})

	require.Len(t, got, 2)
	assert.NotEqual(t, local.ID, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.Equal(t, "2024-07-11", got[0].Date)

	assert.Empty(t, ed.Replace(ctx, "2024-07-11", nil))
	assert.NotContains(t, ed.Store().Snapshot(), "2024-07-11")
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	blobs := newFakeBlobs()
	ed := newTestEditor(t, blobs)
	ctx := context.Background()

	it := ed.Add(ctx, "2024-07-12", PlanItem{ActivityType: "Stop"})
	ed.Remove(ctx, "2024-07-12", it.ID)
	assert.Equal(t, 2, blobs.saves)

	var saved Plan
	require.NoError(t, json.Unmarshal(blobs.data[DefaultStorageKey], &saved))
	assert.Empty(t, saved)
}

func TestStore_ReloadsSavedPlan(t *testing.T) {
	blobs := newFakeBlobs()
	ctx := context.Background()
	first := newTestEditor(t, blobs)
	a := first.Add(ctx, "2024-07-13", PlanItem{ActivityType: "Stop", VenueID: venueRef(3)})

	second := newTestEditor(t, blobs)
	items := second.Store().Items("2024-07-13")
	require.Len(t, items, 1)
	assert.Equal(t, a, items[0])

	b := second.Add(ctx, "2024-07-13", PlanItem{ActivityType: "Next"})
	assert.Greater(t, b.ID, a.ID)
}

func TestStore_MalformedOrMissingBlobIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		blobs *fakeBlobs
	}{
		{"missing", newFakeBlobs()},
		{"garbage", &fakeBlobs{data: map[string][]byte{DefaultStorageKey: []byte("{not json")}}},
		{"wrong shape", &fakeBlobs{data: map[string][]byte{DefaultStorageKey: []byte(`[1,2,3]`)}}},
		{"null", &fakeBlobs{data: map[string][]byte{DefaultStorageKey: []byte(`null`)}}},
		{"load error", &fakeBlobs{data: map[string][]byte{}, loadErr: errors.New("disk gone")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(context.Background(), tt.blobs, "", nil)
			assert.Empty(t, s.Snapshot())
		})
	}
}

func TestStore_DropsEmptyListsOnLoad(t *testing.T) {
	blobs := &fakeBlobs{data: map[string][]byte{
		DefaultStorageKey: []byte(`{"2024-07-14":[],"2024-07-15":[{"id":5,"date":"2024-07-15","time":"Any time"}]}`),
	}}
	s := NewStore(context.Background(), blobs, "", nil)
	assert.Equal(t, []string{"2024-07-15"}, s.Dates())
}

func TestStore_SaveFailureKeepsState(t *testing.T) {
	blobs := newFakeBlobs()
	blobs.saveErr = errors.New("quota exceeded")
	ed := newTestEditor(t, blobs)

	ed.Add(context.Background(), "2024-07-16", PlanItem{ActivityType: "Stop"})

	assert.Len(t, ed.Store().Items("2024-07-16"), 1)
	assert.Equal(t, 1, blobs.saves)
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()
	ed.Add(ctx, "2024-07-17", PlanItem{ActivityType: "Stop", VenueID: venueRef(1)})

	items := ed.Store().Items("2024-07-17")
	items[0].ActivityType = "Changed"
	*items[0].VenueID = 99

	fresh := ed.Store().Items("2024-07-17")
	assert.Equal(t, "Stop", fresh[0].ActivityType)
	assert.Equal(t, 1, *fresh[0].VenueID)
}

func TestEditor_AddAndToggleDetachVenuePointer(t *testing.T) {
	ed := newTestEditor(t, newFakeBlobs())
	ctx := context.Background()

	in := venueRef(3)
	got := ed.Add(ctx, "2024-07-18", PlanItem{ActivityType: "Lunch", Time: "12:00", VenueID: in})
	*in = 55
	*got.VenueID = 777

	toggleIn := venueRef(4)
	toggled, added := ed.ToggleVenue(ctx, "2024-07-18", PlanItem{ActivityType: "Dinner", Time: "20:00", VenueID: toggleIn})
	require.True(t, added)
	*toggleIn = 66
	*toggled.VenueID = 888

	items := ed.Store().Items("2024-07-18")
	require.Len(t, items, 2)
	assert.Equal(t, 3, *items[0].VenueID)
	assert.Equal(t, 4, *items[1].VenueID)
}
