package mappers

import (
	"encoding/json"
	"testing"

	"github.com/ozzus/tours-gateway/internal/domain/models"
	"github.com/ozzus/tours-gateway/internal/infrastructures/provider/dto"
)

func decode(t *testing.T, raw string) dto.RawActivity {
	t.Helper()
	if !json.Valid([]byte(raw)) {
		t.Fatalf("fixture is not valid JSON: %s", raw)
	}
	return dto.DecodeActivity([]byte(raw))
}

func TestToTour_EmptyRecord(t *testing.T) {
	tour := ToTour(decode(t, `{}`))

	if !tour.ID.IsZero() {
		t.Fatalf("expected zero id, got %q", tour.ID.String())
	}
	if tour.Title != models.UntitledTour {
		t.Fatalf("expected placeholder title, got %q", tour.Title)
	}
	if tour.Currency != "USD" {
		t.Fatalf("expected USD default, got %q", tour.Currency)
	}
	if tour.Subtitle != nil || tour.Slug != nil || tour.Cover != nil || tour.Rating != nil ||
		tour.RatingCount != nil || tour.FromPrice != nil || tour.Duration != nil || tour.URL != nil {
		t.Fatalf("expected optional fields unset, got %+v", tour)
	}
}

func TestToTour_FullRecord(t *testing.T) {
	tour := ToTour(decode(t, `{
		"id": 42,
		"title": "Reef Tour",
		"excerpt": "Snorkel the outer reef",
		"slug": "reef-tour",
		"coverImageUrl": "https://cdn.test/cover.jpg",
		"feedback": {"average": 4.7, "count": 128},
		"priceFrom": {"amount": 99, "currency": "aud"},
		"duration": "4 hours",
		"url": "https://tours.test/reef"
	}`))

	if tour.ID.String() != "42" || !tour.ID.IsNumeric() {
		t.Fatalf("expected numeric id 42, got %q", tour.ID.String())
	}
	if tour.Title != "Reef Tour" {
		t.Fatalf("unexpected title %q", tour.Title)
	}
	if tour.Subtitle == nil || *tour.Subtitle != "Snorkel the outer reef" {
		t.Fatalf("unexpected subtitle %v", tour.Subtitle)
	}
	if tour.Cover == nil || *tour.Cover != "https://cdn.test/cover.jpg" {
		t.Fatalf("unexpected cover %v", tour.Cover)
	}
	if tour.Rating == nil || *tour.Rating != 4.7 || tour.RatingCount == nil || *tour.RatingCount != 128 {
		t.Fatalf("unexpected rating %v/%v", tour.Rating, tour.RatingCount)
	}
	if tour.FromPrice == nil || *tour.FromPrice != 99 || tour.Currency != "AUD" {
		t.Fatalf("unexpected price %v %s", tour.FromPrice, tour.Currency)
	}
	if tour.Duration == nil || *tour.Duration != "4 hours" {
		t.Fatalf("unexpected duration %v", tour.Duration)
	}
	if tour.URL == nil || *tour.URL != "https://tours.test/reef" {
		t.Fatalf("unexpected url %v", tour.URL)
	}
}

func TestToTour_IDChain(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantID      string
		wantNumeric bool
	}{
		{name: "id wins", raw: `{"id": "a", "activityId": 2, "productId": 3}`, wantID: "a"},
		{name: "activityId", raw: `{"id": "  ", "activityId": 2, "productId": 3}`, wantID: "2", wantNumeric: true},
		{name: "productId", raw: `{"productId": "p-3", "externalId": "x"}`, wantID: "p-3"},
		{name: "externalId", raw: `{"externalId": 9}`, wantID: "9", wantNumeric: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := ToTour(decode(t, tc.raw)).ID
			if id.String() != tc.wantID || id.IsNumeric() != tc.wantNumeric {
				t.Fatalf("expected %q numeric=%v, got %q numeric=%v", tc.wantID, tc.wantNumeric, id.String(), id.IsNumeric())
			}
		})
	}
}

func TestToTour_TitleAndSubtitleChains(t *testing.T) {
	tour := ToTour(decode(t, `{"title": "", "name": "Named", "summary": "S", "excerpt": "E"}`))
	if tour.Title != "Named" {
		t.Fatalf("expected name fallback, got %q", tour.Title)
	}
	if tour.Subtitle == nil || *tour.Subtitle != "E" {
		t.Fatalf("expected excerpt before summary, got %v", tour.Subtitle)
	}
}

func TestToTour_CoverChain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "explicit cover",
			raw:  `{"coverImage": "https://cdn.test/c.jpg", "images": [{"url": "https://cdn.test/i.jpg"}]}`,
			want: "https://cdn.test/c.jpg",
		},
		{
			name: "first image url",
			raw:  `{"images": [{"url": "https://cdn.test/i.jpg"}], "photos": [{"url": "https://cdn.test/p.jpg"}]}`,
			want: "https://cdn.test/i.jpg",
		},
		{
			name: "photos when images empty",
			raw:  `{"images": [], "photos": [{"originalUrl": "https://cdn.test/orig.jpg"}]}`,
			want: "https://cdn.test/orig.jpg",
		},
		{
			name: "bare string media",
			raw:  `{"media": ["https://cdn.test/m.jpg"]}`,
			want: "https://cdn.test/m.jpg",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cover := ToTour(decode(t, tc.raw)).Cover
			if cover == nil || *cover != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, cover)
			}
		})
	}
}

func TestToTour_RatingFallsBackToFlatFields(t *testing.T) {
	tour := ToTour(decode(t, `{"rating": "4.2", "reviewCount": 17.9}`))
	if tour.Rating == nil || *tour.Rating != 4.2 {
		t.Fatalf("unexpected rating %v", tour.Rating)
	}
	if tour.RatingCount == nil || *tour.RatingCount != 17 {
		t.Fatalf("unexpected rating count %v", tour.RatingCount)
	}
}

func TestToTour_FeedbackBeatsFlatRating(t *testing.T) {
	tour := ToTour(decode(t, `{"feedback": {"average": 4.7, "count": 3}, "rating": 2.1, "reviewCount": 9}`))
	if tour.Rating == nil || *tour.Rating != 4.7 {
		t.Fatalf("expected feedback average 4.7, got %v", tour.Rating)
	}
	if tour.RatingCount == nil || *tour.RatingCount != 3 {
		t.Fatalf("expected feedback count 3, got %v", tour.RatingCount)
	}
}

func TestToTour_PriceChain(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantAmount   *float64
		wantCurrency string
	}{
		{
			name:         "bare amount with top-level currency",
			raw:          `{"fromPrice": 50, "currency": "nzd"}`,
			wantAmount:   f(50),
			wantCurrency: "NZD",
		},
		{
			name:         "zero is a price",
			raw:          `{"priceFrom": 0, "price": 10}`,
			wantAmount:   f(0),
			wantCurrency: "USD",
		},
		{
			name:         "currency from a later block",
			raw:          `{"lowestPrice": {"amount": 30}, "pricing": {"value": 40, "currencyCode": "gbp"}}`,
			wantAmount:   f(30),
			wantCurrency: "GBP",
		},
		{
			name:         "priceFrom beats price",
			raw:          `{"price": {"amount": 120, "currency": "eur"}, "priceFrom": {"amount": 95, "currency": "aud"}}`,
			wantAmount:   f(95),
			wantCurrency: "AUD",
		},
		{
			name:         "no price",
			raw:          `{"price": "free"}`,
			wantCurrency: "USD",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tour := ToTour(decode(t, tc.raw))
			switch {
			case tc.wantAmount == nil && tour.FromPrice != nil:
				t.Fatalf("expected no price, got %v", *tour.FromPrice)
			case tc.wantAmount != nil && (tour.FromPrice == nil || *tour.FromPrice != *tc.wantAmount):
				t.Fatalf("expected price %v, got %v", *tc.wantAmount, tour.FromPrice)
			}
			if tour.Currency != tc.wantCurrency {
				t.Fatalf("expected currency %q, got %q", tc.wantCurrency, tour.Currency)
			}
		})
	}
}

func TestToTour_URLChain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "public url", raw: `{"publicUrl": "https://p.test", "canonicalUrl": "https://c.test", "slug": "x"}`, want: "https://p.test"},
		{name: "slug path", raw: `{"id": 7, "slug": "reef-tour"}`, want: "/tours/reef-tour"},
		{name: "escaped slug", raw: `{"slug": "a b/c"}`, want: "/tours/a%20b%2Fc"},
		{name: "id path", raw: `{"id": 7}`, want: "/tours/7"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToTour(decode(t, tc.raw)).URL
			if got == nil || *got != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, got)
			}
		})
	}
}

func f(v float64) *float64 { return &v }
