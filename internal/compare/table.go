package compare

import (
	"strconv"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/specs"
)

// HighScoreThreshold is the lowest score drawn in the high tier.
const HighScoreThreshold = 90

// MissingScore is shown in the score row for products without a score.
const MissingScore = "—"

// ScoreLabel is the label of the first comparison row.
const ScoreLabel = "Spec Score"

// Tier groups spec scores for badge styling.
type Tier int

const (
	TierNone Tier = iota
	TierStandard
	TierHigh
)

// ScoreTier returns the badge tier for an optional score.
func ScoreTier(score *int) Tier {
	if score == nil {
		return TierNone
	}
	if *score >= HighScoreThreshold {
		return TierHigh
	}
	return TierStandard
}

// TableOptions control how a set is laid out.
type TableOptions struct {
	// FixedSlots pads the table with empty slots up to Capacity.
	FixedSlots bool
	// FormatPrice renders prices; nil uses the default currency symbol.
	FormatPrice func(catalog.Price) string
}

func (o TableOptions) formatPrice(p catalog.Price) string {
	if o.FormatPrice != nil {
		return o.FormatPrice(p)
	}
	return catalog.FormatPrice(p, catalog.DefaultCurrencySymbol)
}

// Slot is one column of the comparison. Empty slots are placeholders.
type Slot struct {
	Filled  bool
	Product catalog.Product
	Price   string
	Score   string
	Tier    Tier
	Specs   specs.Bundle
}

// Row is one labelled line of the comparison with a cell per slot.
type Row struct {
	Label string
	Cells []string
}

// Table is the assembled comparison shared by every presenter.
type Table struct {
	Slots          []Slot
	Rows           []Row
	CompareEnabled bool
}

// Filled returns the number of non-placeholder slots.
func (t Table) Filled() int {
	n := 0
	for _, s := range t.Slots {
		if s.Filled {
			n++
		}
	}
	return n
}

// RowLabels returns the labels of the comparison rows in display order.
func RowLabels() []string {
	labels := make([]string, 0, len(specs.Fields)+1)
	labels = append(labels, ScoreLabel)
	for _, f := range specs.Fields {
		labels = append(labels, f.Label)
	}
	return labels
}

// BuildTable lays out set as slots and aligned rows. Specs are derived for
// every member on each call.
func BuildTable(set Set, opts TableOptions) Table {
	slots := make([]Slot, 0, Capacity)
	for _, p := range set.Items {
		slots = append(slots, newSlot(p, opts))
	}
	if opts.FixedSlots {
		for len(slots) < Capacity {
			slots = append(slots, Slot{})
		}
	}

	rows := make([]Row, 0, len(specs.Fields)+1)
	score := Row{Label: ScoreLabel, Cells: make([]string, len(slots))}
	for i, s := range slots {
		score.Cells[i] = s.Score
	}
	rows = append(rows, score)

	for _, f := range specs.Fields {
		row := Row{Label: f.Label, Cells: make([]string, len(slots))}
		for i, s := range slots {
			if s.Filled {
				row.Cells[i] = f.Value(s.Specs)
			}
		}
		rows = append(rows, row)
	}

	return Table{Slots: slots, Rows: rows, CompareEnabled: set.CanCompare()}
}

// Chip is a compact member entry in the floating bar.
type Chip struct {
	ID    string
	Name  string
	Price string
	Score string // MissingScore when unscored
	Tier  Tier
}

// Strip is the floating bar layout.
type Strip struct {
	Chips          []Chip
	Placeholders   int
	CompareEnabled bool
}

// Visible reports whether the bar should be drawn at all.
func (s Strip) Visible() bool {
	return len(s.Chips) > 0
}

// BuildStrip lays out set for the floating bar.
func BuildStrip(set Set, opts TableOptions) Strip {
	chips := make([]Chip, 0, set.Len())
	for _, p := range set.Items {
		chips = append(chips, Chip{
			ID:    p.ID,
			Name:  p.Name,
			Price: opts.formatPrice(p.Price),
			Score: scoreText(p),
			Tier:  ScoreTier(p.SpecScore),
		})
	}
	placeholders := Capacity - len(chips)
	if placeholders < 0 {
		placeholders = 0
	}
	return Strip{Chips: chips, Placeholders: placeholders, CompareEnabled: set.CanCompare()}
}

func scoreText(p catalog.Product) string {
	if !p.HasScore() {
		return MissingScore
	}
	return strconv.Itoa(*p.SpecScore)
}

func newSlot(p catalog.Product, opts TableOptions) Slot {
	score := scoreText(p)
	return Slot{
		Filled:  true,
		Product: p,
		Price:   opts.formatPrice(p.Price),
		Score:   score,
		Tier:    ScoreTier(p.SpecScore),
		Specs:   specs.Derive(p.ID),
	}
}
