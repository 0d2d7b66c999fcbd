package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placehub-backend/internal/models"
)

func TestParseOpportunityQuery(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]string
		wantPage  int64
		wantLimit int64
		wantSort  string
	}{
		{"empty defaults", map[string]string{}, 1, 9, "recent"},
		{"normal values", map[string]string{"page": "3", "limit": "12", "sortBy": "closingSoon"}, 3, 12, "closingSoon"},
		{"limit clamped to 24", map[string]string{"limit": "100"}, 1, 24, "recent"},
		{"zero page falls back", map[string]string{"page": "0"}, 1, 9, "recent"},
		{"negative page falls back", map[string]string{"page": "-2"}, 1, 9, "recent"},
		{"non-numeric page falls back", map[string]string{"page": "abc"}, 1, 9, "recent"},
		{"non-numeric limit falls back", map[string]string{"limit": "lots"}, 1, 9, "recent"},
		{"unknown sort falls back", map[string]string{"sortBy": "alphabetical"}, 1, 9, "recent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseOpportunityQuery(tt.raw)
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit || q.SortBy != tt.wantSort {
				t.Errorf("got page=%d limit=%d sort=%q, want page=%d limit=%d sort=%q",
					q.Page, q.Limit, q.SortBy, tt.wantPage, tt.wantLimit, tt.wantSort)
			}
		})
	}
}

func TestSortFor(t *testing.T) {
	if s := SortFor("closingSoon"); s[0].Key != "deadline" || s[0].Value != 1 {
		t.Errorf("closingSoon should sort deadline ascending, got %v", s)
	}
	if s := SortFor("recent"); s[0].Key != "createdAt" || s[0].Value != -1 {
		t.Errorf("recent should sort createdAt descending, got %v", s)
	}
	if s := SortFor("bogus"); s[0].Key != "createdAt" || s[0].Value != -1 {
		t.Errorf("unknown sort should fall back to recent, got %v", s)
	}
}

func TestBuildOpportunityFilter(t *testing.T) {
	t.Run("defaults to active only", func(t *testing.T) {
		f := BuildOpportunityFilter(models.OpportunityQuery{})
		if f["status"] != "active" {
			t.Fatalf("default filter must gate on active, got %v", f)
		}
		if len(f) != 1 {
			t.Fatalf("no other keys expected, got %v", f)
		}
	})

	t.Run("sentinels mean no filter", func(t *testing.T) {
		f := BuildOpportunityFilter(models.OpportunityQuery{
			Category: "All", Type: "all", LocationType: "all", Experience: "all",
		})
		for _, key := range []string{"category", "opportunityType", "locationType", "experienceLevel"} {
			if _, ok := f[key]; ok {
				t.Errorf("sentinel should not produce a %s filter", key)
			}
		}
	})

	t.Run("explicit status overrides active gate", func(t *testing.T) {
		f := BuildOpportunityFilter(models.OpportunityQuery{Status: "draft"})
		if f["status"] != "draft" {
			t.Errorf("status override not applied, got %v", f["status"])
		}
	})

	t.Run("search is trimmed into a text query", func(t *testing.T) {
		f := BuildOpportunityFilter(models.OpportunityQuery{Search: "  golang intern  "})
		text, ok := f["$text"].(bson.M)
		if !ok || text["$search"] != "golang intern" {
			t.Errorf("expected trimmed $text search, got %v", f["$text"])
		}
	})

	t.Run("exact match dimensions", func(t *testing.T) {
		f := BuildOpportunityFilter(models.OpportunityQuery{
			Category: "Software", Type: "internship", LocationType: "remote",
			Experience: "fresher", Company: "Acme Corp",
		})
		if f["category"] != "Software" || f["opportunityType"] != "internship" ||
			f["locationType"] != "remote" || f["experienceLevel"] != "fresher" ||
			f["companyName"] != "Acme Corp" {
			t.Errorf("unexpected filter: %v", f)
		}
	})
}

func TestPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 9, 1},
		{1, 9, 1},
		{9, 9, 1},
		{10, 9, 2},
		{42, 9, 5},
		{48, 24, 2},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := Pages(tt.total, tt.limit); got != tt.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

// fakeIdentities serves canned profile/email maps and records how many
// queries each lookup cost.
type fakeIdentities struct {
	profiles     map[string]string
	emails       map[string]string
	profileCalls int
	emailCalls   int
	fail         bool
}

func (f *fakeIdentities) ProfileNamesByUserIDs(_ context.Context, ids []bson.ObjectID) (map[string]string, error) {
	f.profileCalls++
	if f.fail {
		return nil, errors.New("profiles unavailable")
	}
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := f.profiles[id.Hex()]; ok {
			out[id.Hex()] = name
		}
	}
	return out, nil
}

func (f *fakeIdentities) EmailsByUserIDs(_ context.Context, ids []bson.ObjectID) (map[string]string, error) {
	f.emailCalls++
	if f.fail {
		return nil, errors.New("users unavailable")
	}
	out := map[string]string{}
	for _, id := range ids {
		if email, ok := f.emails[id.Hex()]; ok {
			out[id.Hex()] = email
		}
	}
	return out, nil
}

func TestResolvePostedByNames(t *testing.T) {
	withProfile := bson.NewObjectID()
	withEmail := bson.NewObjectID()
	unknown := bson.NewObjectID()

	ids := &fakeIdentities{
		profiles: map[string]string{withProfile.Hex(): "Priya Sharma"},
		emails:   map[string]string{withEmail.Hex(): "jane.doe@x.edu"},
	}

	items := []models.Opportunity{
		{PostedBy: withProfile},
		{PostedBy: withEmail},
		{PostedBy: unknown},
		{PostedBy: withProfile, PostedByName: "Cached Name"},
		{}, // no poster at all
	}

	ResolvePostedByNames(context.Background(), ids, items)

	if items[0].PostedByName != "Priya Sharma" {
		t.Errorf("profile name not used: %q", items[0].PostedByName)
	}
	if items[1].PostedByName != "Jane Doe" {
		t.Errorf("email-derived name not used: %q", items[1].PostedByName)
	}
	if items[2].PostedByName != FallbackDisplayName {
		t.Errorf("fallback not used: %q", items[2].PostedByName)
	}
	if items[3].PostedByName != "Cached Name" {
		t.Errorf("pre-stored name must not be overwritten: %q", items[3].PostedByName)
	}
	if items[4].PostedByName != "" {
		t.Errorf("item without poster must stay nameless: %q", items[4].PostedByName)
	}

	// Bounded round-trips: one profiles query, one users query, regardless
	// of page size.
	if ids.profileCalls != 1 || ids.emailCalls != 1 {
		t.Errorf("expected 1 profile + 1 email query, got %d + %d", ids.profileCalls, ids.emailCalls)
	}
}

func TestResolvePostedByNamesLookupFailure(t *testing.T) {
	poster := bson.NewObjectID()
	ids := &fakeIdentities{fail: true}

	items := []models.Opportunity{{PostedBy: poster}}
	ResolvePostedByNames(context.Background(), ids, items)

	if items[0].PostedByName != FallbackDisplayName {
		t.Errorf("lookup failure must degrade to fallback, got %q", items[0].PostedByName)
	}
}

func TestResolvePostedByNamesSkipsQueriesWhenAllCached(t *testing.T) {
	ids := &fakeIdentities{}
	items := []models.Opportunity{{PostedBy: bson.NewObjectID(), PostedByName: "Known"}}

	ResolvePostedByNames(context.Background(), ids, items)

	if ids.profileCalls != 0 || ids.emailCalls != 0 {
		t.Errorf("no lookups expected when every item carries a name, got %d + %d",
			ids.profileCalls, ids.emailCalls)
	}
}
