package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFileSource_SaveWritesLoadableCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	lists := []List{
		{Name: "popular", Products: []Product{
			{
				ID: "fold-x", Name: "Fold X", Price: 154999, SpecScore: Score(93),
				Category: CategoryMobile,
				Details:  MobileSpecs{Network: "5G", SIM: "Dual SIM", Foldable: true},
			},
			{ID: "tba", Name: "Unannounced", Category: CategoryTablet},
		}},
		{Name: "tvs", Products: []Product{
			{
				ID: "oled-55", Name: "OLED 55", Price: 139990, Category: CategoryTV,
				Details: TVSpecs{ScreenInches: 55, Panel: "OLED", RefreshHz: 120, SmartPlatform: "webOS"},
			},
		}},
	}

	src := FileSource{Path: path}
	require.NoError(t, src.Save(lists))

	loaded, err := src.Load(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(lists, loaded); diff != "" {
		t.Fatalf("catalog changed across save/load (-want +got):\n%s", diff)
	}
}

func TestFileSource_SaveBuiltInIsReadOnly(t *testing.T) {
	err := FileSource{}.Save(Default())
	if !errors.Is(err, ErrReadOnlyCatalog) {
		t.Fatalf("Save() error = %v, want ErrReadOnlyCatalog", err)
	}
}

func TestRecord_ProductRejectsMultipleBlocks(t *testing.T) {
	rec := Record{
		ID: "x", Name: "Hybrid", Category: CategoryTablet,
		Tablet: &TabletSpecs{Stylus: true},
		Laptop: &LaptopSpecs{GPU: "iGPU"},
	}
	if _, err := rec.Product(); !errors.Is(err, ErrDetailsMismatch) {
		t.Fatalf("Product() error = %v, want ErrDetailsMismatch", err)
	}
}

func TestRecord_ProductNormalizesCategory(t *testing.T) {
	rec := Record{ID: " tv-1 ", Name: "Telly", Category: " TV ", TV: &TVSpecs{ScreenInches: 43}}
	p, err := rec.Product()
	require.NoError(t, err)
	if p.ID != "tv-1" || p.Category != CategoryTV {
		t.Fatalf("Product() = %+v, want trimmed id and tv category", p)
	}
}
