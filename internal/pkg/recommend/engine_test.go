package recommend

import (
	"reflect"
	"testing"

	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
	"github.com/sahanperera/lankatrails/app/repository"
)

// fakeCatalog serves combinations from memory, filtering the way the real
// store does: exact match on start location and day count, insertion order
// preserved.
type fakeCatalog struct {
	combinations []models.TravelCombination
	styles       []models.TravelStyle
	starts       []models.StartLocation
	ranges       []models.BudgetRange
}

func (f *fakeCatalog) FindCombinations(startLocation string, days int) ([]models.TravelCombination, error) {
	var matched []models.TravelCombination
	for _, c := range f.combinations {
		if c.StartLocation == startLocation && c.Days == days {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeCatalog) GetCombinationByID(id uint) (*models.TravelCombination, error) {
	for i := range f.combinations {
		if f.combinations[i].ID == id {
			return &f.combinations[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalog) GetTravelStyles() ([]models.TravelStyle, error) {
	return f.styles, nil
}

func (f *fakeCatalog) GetStartLocations() ([]models.StartLocation, error) {
	return f.starts, nil
}

func (f *fakeCatalog) GetBudgetRanges() ([]models.BudgetRange, error) {
	return f.ranges, nil
}

type fakeLocations struct {
	locations []models.Location
}

func (f *fakeLocations) Create(*models.Location) error { return nil }

func (f *fakeLocations) GetByID(uint) (*models.Location, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLocations) GetByStringID(string) (*models.Location, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLocations) List(repository.LocationFilter) ([]models.Location, int64, error) {
	return f.locations, int64(len(f.locations)), nil
}
func (f *fakeLocations) ListByCategory(category string) ([]models.Location, error) {
	if category == "" {
		return f.locations, nil
	}
	var matched []models.Location
	for _, l := range f.locations {
		if l.Category == category {
			matched = append(matched, l)
		}
	}
	return matched, nil
}
func (f *fakeLocations) Update(*models.Location) error { return nil }

func (f *fakeLocations) Delete(uint) error { return nil }

func (f *fakeLocations) Categories() ([]string, error) { return nil, nil }

func (f *fakeLocations) Districts() ([]string, error) { return nil, nil }

func styles(names ...string) []models.TravelStyle {
	result := make([]models.TravelStyle, 0, len(names))
	for i, n := range names {
		result = append(result, models.TravelStyle{ID: uint(i + 1), Name: n})
	}
	return result
}

func combo(id uint, days int, start string, budget int, styleNames ...string) models.TravelCombination {
	return models.TravelCombination{
		ID:            id,
		Days:          days,
		StartLocation: start,
		Budget:        budget,
		TravelStyles:  styles(styleNames...),
	}
}

func newTestEngine(combos ...models.TravelCombination) *Engine {
	return NewEngine(&fakeCatalog{combinations: combos}, &fakeLocations{})
}

func TestGetRecommendations_ExactFilterOnStartAndDays(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(
		combo(1, 3, "Colombo Port", 50000, "Cultural"),
		combo(2, 5, "Colombo Port", 50000, "Cultural"),
		combo(3, 3, "Kandy", 50000, "Cultural"),
	)

	recs, err := engine.GetRecommendations([]string{"Cultural"}, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != 1 {
		t.Fatalf("expected only combination 1, got %+v", recs)
	}
}

func TestGetRecommendations_RejectsCombosWithUnrequestedStyles(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(
		combo(1, 3, "Colombo Port", 50000, "Cultural"),
		combo(2, 3, "Colombo Port", 50000, "Cultural", "Adventure"),
	)

	// Combination 2 demands Adventure, which the user did not ask for. It must
	// be excluded entirely, not just scored lower.
	recs, err := engine.GetRecommendations([]string{"Cultural"}, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != 1 {
		t.Fatalf("expected only combination 1, got %+v", recs)
	}
}

func TestGetRecommendations_StyleAndBudgetScoring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userStyles []string
		comboStyle []string
		budget     int
		userBudget int
		wantScore  float64
	}{
		{
			name:       "full style match within budget",
			userStyles: []string{"Cultural"},
			comboStyle: []string{"Cultural"},
			budget:     90000,
			userBudget: 100000,
			wantScore:  100,
		},
		{
			name:       "half style coverage within budget",
			userStyles: []string{"Cultural", "Adventure"},
			comboStyle: []string{"Cultural"},
			budget:     90000,
			userBudget: 100000,
			wantScore:  65,
		},
		{
			name:       "budget within tolerance scores half",
			userStyles: []string{"Cultural"},
			comboStyle: []string{"Cultural"},
			budget:     115000,
			userBudget: 100000,
			wantScore:  85,
		},
		{
			name:       "tolerance boundary is inclusive",
			userStyles: []string{"Cultural"},
			comboStyle: []string{"Cultural"},
			budget:     120000,
			userBudget: 100000,
			wantScore:  85,
		},
		{
			name:       "over tolerance scores zero for budget",
			userStyles: []string{"Cultural"},
			comboStyle: []string{"Cultural"},
			budget:     120001,
			userBudget: 100000,
			wantScore:  70,
		},
		{
			name:       "third coverage rounds to two decimals",
			userStyles: []string{"Cultural", "Adventure", "Spiritual"},
			comboStyle: []string{"Cultural"},
			budget:     90000,
			userBudget: 100000,
			wantScore:  53.33,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := newTestEngine(combo(1, 3, "Colombo Port", tt.budget, tt.comboStyle...))
			recs, err := engine.GetRecommendations(tt.userStyles, 3, "Colombo Port", tt.userBudget, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(recs) != 1 {
				t.Fatalf("expected 1 recommendation, got %d", len(recs))
			}
			if recs[0].Score != tt.wantScore {
				t.Fatalf("score = %v, want %v", recs[0].Score, tt.wantScore)
			}
		})
	}
}

func TestGetRecommendations_EmptyUserStylesScoreZeroStyle(t *testing.T) {
	t.Parallel()

	// A combination with no styles passes the subset filter against an empty
	// user set; its style score is zero and only budget fit counts.
	engine := newTestEngine(combo(1, 3, "Colombo Port", 90000))

	recs, err := engine.GetRecommendations(nil, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Score != 30 {
		t.Fatalf("score = %v, want 30", recs[0].Score)
	}
}

func TestGetRecommendations_SortsByStyleScoreThenTotal(t *testing.T) {
	t.Parallel()

	// Combination 1: one of two styles (35) + in budget (30) = 65.
	// Combination 2: both styles (70) + over tolerance (0) = 70.
	// Combination 3: both styles (70) + in budget (30) = 100.
	// Style coverage ranks 2 above 1 even though 1's total beats some style
	// pairings; total only breaks ties within equal style scores.
	engine := newTestEngine(
		combo(1, 3, "Colombo Port", 90000, "Cultural"),
		combo(2, 3, "Colombo Port", 200000, "Cultural", "Adventure"),
		combo(3, 3, "Colombo Port", 90000, "Cultural", "Adventure"),
	)

	recs, err := engine.GetRecommendations([]string{"Cultural", "Adventure"}, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotIDs := []uint{recs[0].ID, recs[1].ID, recs[2].ID}
	wantIDs := []uint{3, 2, 1}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Fatalf("order = %v, want %v", gotIDs, wantIDs)
	}
}

func TestGetRecommendations_StableForEqualScores(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(
		combo(5, 3, "Colombo Port", 90000, "Cultural"),
		combo(2, 3, "Colombo Port", 90000, "Cultural"),
		combo(9, 3, "Colombo Port", 90000, "Cultural"),
	)

	recs, err := engine.GetRecommendations([]string{"Cultural"}, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotIDs := []uint{recs[0].ID, recs[1].ID, recs[2].ID}
	wantIDs := []uint{5, 2, 9}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Fatalf("equal scores must keep store order, got %v want %v", gotIDs, wantIDs)
	}
}

func TestGetRecommendations_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	var combos []models.TravelCombination
	for i := uint(1); i <= 15; i++ {
		combos = append(combos, combo(i, 3, "Colombo Port", 90000, "Cultural"))
	}
	engine := newTestEngine(combos...)

	recs, err := engine.GetRecommendations([]string{"Cultural"}, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != DefaultLimit {
		t.Fatalf("default limit: got %d results, want %d", len(recs), DefaultLimit)
	}

	recs, err = engine.GetRecommendations([]string{"Cultural"}, 3, "Colombo Port", 100000, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("explicit limit: got %d results, want 3", len(recs))
	}
}

func TestGetRecommendations_Deterministic(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(
		combo(1, 3, "Colombo Port", 90000, "Cultural"),
		combo(2, 3, "Colombo Port", 110000, "Cultural", "Adventure"),
		combo(3, 3, "Colombo Port", 200000, "Adventure"),
	)

	first, err := engine.GetRecommendations([]string{"Cultural", "Adventure"}, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.GetRecommendations([]string{"Cultural", "Adventure"}, 3, "Colombo Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs must produce identical output:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGetRecommendations_NoMatchesYieldsEmptyNotError(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(combo(1, 3, "Colombo Port", 90000, "Cultural"))

	recs, err := engine.GetRecommendations([]string{"Cultural"}, 7, "Galle Port", 100000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %d", len(recs))
	}
}

func TestGetCombinationByID(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(combo(7, 3, "Colombo Port", 90000, "Cultural"))

	rec, err := engine.GetCombinationByID(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != 7 {
		t.Fatalf("id = %d, want 7", rec.ID)
	}
	if rec.Score != 0 {
		t.Fatalf("a direct lookup has no user context, score must be 0, got %v", rec.Score)
	}

	if _, err := engine.GetCombinationByID(99); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestGetBudgetRanges_KeyedByRangeKey(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{ranges: []models.BudgetRange{
		{Key: "budget", MinValue: 0, MaxValue: 100000, Label: "Budget"},
		{Key: "moderate", MinValue: 100000, MaxValue: 250000, Label: "Moderate"},
	}}
	engine := NewEngine(catalog, &fakeLocations{})

	ranges, err := engine.GetBudgetRanges()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	if got := ranges["moderate"]; got.Min != 100000 || got.Max != 250000 || got.Label != "Moderate" {
		t.Fatalf("moderate range = %+v", got)
	}
}

func TestGetAllLocations_FiltersByNormalizedCategory(t *testing.T) {
	t.Parallel()

	locations := &fakeLocations{locations: []models.Location{
		{StringID: "yala-safari", Name: "Yala", Category: "nature_wildlife"},
		{StringID: "galle-fort", Name: "Galle Fort", Category: "cultural"},
	}}
	engine := NewEngine(&fakeCatalog{}, locations)

	infos, err := engine.GetAllLocations("Nature/Wildlife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 1 || infos[0].ID != "yala-safari" {
		t.Fatalf("expected only yala-safari, got %+v", infos)
	}

	infos, err = engine.GetAllLocations("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected all locations without a filter, got %d", len(infos))
	}
}

func TestNormalizeCategoryKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Nature/Wildlife", want: "nature_wildlife"},
		{in: "nature-wildlife", want: "nature_wildlife"},
		{in: "CULTURAL", want: "cultural"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeCategoryKey(tt.in); got != tt.want {
			t.Fatalf("NormalizeCategoryKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
