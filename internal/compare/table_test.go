package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/specs"
)

func TestScoreTier(t *testing.T) {
	tests := []struct {
		name  string
		score *int
		want  Tier
	}{
		{"absent", nil, TierNone},
		{"zero", catalog.Score(0), TierStandard},
		{"just below", catalog.Score(89), TierStandard},
		{"threshold", catalog.Score(90), TierHigh},
		{"max", catalog.Score(100), TierHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreTier(tt.score); got != tt.want {
				t.Fatalf("ScoreTier = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowLabels(t *testing.T) {
	want := []string{"Spec Score", "Processor", "RAM", "Storage", "Display", "Camera", "Battery", "OS"}
	if diff := cmp.Diff(want, RowLabels()); diff != "" {
		t.Fatalf("RowLabels mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable_RowsAlignWithSlots(t *testing.T) {
	a := catalog.Product{ID: "ab", Name: "Alpha", Price: 75999, SpecScore: catalog.Score(92), Category: catalog.CategoryMobile}
	b := catalog.Product{ID: "zz", Name: "Beta", Price: 17999, Category: catalog.CategoryMobile}
	set := Set{Items: []catalog.Product{a, b}}

	table := BuildTable(set, TableOptions{})

	if len(table.Slots) != 2 {
		t.Fatalf("len(Slots) = %d, want 2", len(table.Slots))
	}
	if !table.CompareEnabled {
		t.Fatalf("CompareEnabled = false, want true for two members")
	}
	if table.Slots[0].Product.ID != "ab" || table.Slots[1].Product.ID != "zz" {
		t.Fatalf("slot order = [%s %s], want [ab zz]", table.Slots[0].Product.ID, table.Slots[1].Product.ID)
	}
	if got := table.Slots[0].Price; got != "₹75,999" {
		t.Fatalf("Price = %q, want ₹75,999", got)
	}
	if table.Slots[0].Tier != TierHigh || table.Slots[1].Tier != TierNone {
		t.Fatalf("tiers = [%v %v], want [high none]", table.Slots[0].Tier, table.Slots[1].Tier)
	}

	var labels []string
	for _, r := range table.Rows {
		labels = append(labels, r.Label)
		if len(r.Cells) != len(table.Slots) {
			t.Fatalf("row %q has %d cells, want %d", r.Label, len(r.Cells), len(table.Slots))
		}
	}
	if diff := cmp.Diff(RowLabels(), labels); diff != "" {
		t.Fatalf("row labels mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"92", MissingScore}, table.Rows[0].Cells); diff != "" {
		t.Fatalf("score row mismatch (-want +got):\n%s", diff)
	}
	wantA := specs.Derive("ab")
	wantB := specs.Derive("zz")
	if diff := cmp.Diff([]string{wantA.Processor, wantB.Processor}, table.Rows[1].Cells); diff != "" {
		t.Fatalf("processor row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{wantA.OS, wantB.OS}, table.Rows[7].Cells); diff != "" {
		t.Fatalf("os row mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTable_FixedSlotsPadsToCapacity(t *testing.T) {
	set := Set{Items: []catalog.Product{{ID: "a", Name: "A", Category: catalog.CategoryTV}}}
	table := BuildTable(set, TableOptions{FixedSlots: true})

	if len(table.Slots) != Capacity {
		t.Fatalf("len(Slots) = %d, want %d", len(table.Slots), Capacity)
	}
	if table.Filled() != 1 {
		t.Fatalf("Filled() = %d, want 1", table.Filled())
	}
	if table.CompareEnabled {
		t.Fatalf("CompareEnabled = true, want false for one member")
	}
	for _, r := range table.Rows {
		for i := 1; i < Capacity; i++ {
			if r.Cells[i] != "" {
				t.Fatalf("row %q placeholder cell %d = %q, want empty", r.Label, i, r.Cells[i])
			}
		}
	}
}

func TestBuildTable_EmptySet(t *testing.T) {
	table := BuildTable(Set{}, TableOptions{})
	if len(table.Slots) != 0 || table.CompareEnabled {
		t.Fatalf("empty table = %+v, want no slots and compare disabled", table)
	}
	if len(table.Rows) != len(RowLabels()) {
		t.Fatalf("len(Rows) = %d, want %d", len(table.Rows), len(RowLabels()))
	}
}

func TestBuildTable_CustomPriceFormatter(t *testing.T) {
	set := Set{Items: []catalog.Product{{ID: "a", Name: "A", Price: 1234, Category: catalog.CategoryTV}}}
	table := BuildTable(set, TableOptions{FormatPrice: func(p catalog.Price) string {
		return catalog.FormatPrice(p, "$")
	}})
	if got := table.Slots[0].Price; got != "$1,234" {
		t.Fatalf("Price = %q, want $1,234", got)
	}
}

func TestBuildTable_DoesNotMutateSet(t *testing.T) {
	m := NewManager(nil)
	_, _ = m.Add(catalog.Product{ID: "a", Name: "A", Category: catalog.CategoryTV})
	_, _ = m.Add(catalog.Product{ID: "b", Name: "B", Category: catalog.CategoryTV})
	before := m.Snapshot()

	first := BuildTable(m.Snapshot(), TableOptions{FixedSlots: true})
	second := BuildTable(m.Snapshot(), TableOptions{FixedSlots: true})

	if diff := cmp.Diff(before, m.Snapshot()); diff != "" {
		t.Fatalf("set changed by BuildTable (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(first.Rows, second.Rows); diff != "" {
		t.Fatalf("BuildTable not idempotent (-first +second):\n%s", diff)
	}
}

func TestBuildStrip(t *testing.T) {
	if BuildStrip(Set{}, TableOptions{}).Visible() {
		t.Fatalf("empty strip should not be visible")
	}

	set := Set{Items: []catalog.Product{
		{ID: "a", Name: "A", Price: 100, SpecScore: catalog.Score(95), Category: catalog.CategoryTV},
	}}
	strip := BuildStrip(set, TableOptions{})
	want := Strip{
		Chips:        []Chip{{ID: "a", Name: "A", Price: "₹100", Score: "95", Tier: TierHigh}},
		Placeholders: 3,
	}
	if diff := cmp.Diff(want, strip); diff != "" {
		t.Fatalf("BuildStrip mismatch (-want +got):\n%s", diff)
	}

	set.Items = append(set.Items, catalog.Product{ID: "b", Name: "B", Category: catalog.CategoryTV})
	strip = BuildStrip(set, TableOptions{})
	if !strip.CompareEnabled {
		t.Fatalf("CompareEnabled = false, want true for two members")
	}
	if got := strip.Chips[1].Score; got != MissingScore {
		t.Fatalf("unscored chip Score = %q, want %q", got, MissingScore)
	}
}
