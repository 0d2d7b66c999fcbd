package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"placehub-backend/dto"
	"placehub-backend/internal/middleware"
	"placehub-backend/internal/models"
	"placehub-backend/internal/repository"
	"placehub-backend/internal/routes"
	"placehub-backend/internal/services"
)

const testSecret = "test-secret"

// newTestApp mirrors the app wiring in main.go: envelope-preserving error
// handler plus the JWT middleware.
func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Something went wrong."
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
				msg = fe.Message
			}
			return c.Status(code).JSON(dto.Error(msg))
		},
	})
	app.Use(middleware.JWTUidOnly(testSecret))
	return app
}

func bearerFor(t *testing.T, userID bson.ObjectID) string {
	t.Helper()
	auth := services.NewAuthService(nil, testSecret)
	token, err := auth.IssueToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// ===== fakes =====

type fakeOpportunityRepo struct {
	items      []models.Opportunity
	stats      models.OpportunityStats
	byID       map[string]*models.Opportunity
	inserted   []*models.Opportunity
	lastFilter bson.M
	lastSort   bson.D
	lastSkip   int64
	lastLimit  int64
	distincts  map[string][]string
	// field -> filter it was queried with
	distinctFilters map[string]bson.M
}

func (f *fakeOpportunityRepo) List(_ context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Opportunity, error) {
	f.lastFilter = filter
	f.lastSort = sort
	f.lastSkip = skip
	f.lastLimit = limit
	return f.items, nil
}

func (f *fakeOpportunityRepo) Count(_ context.Context, filter bson.M) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeOpportunityRepo) Stats(context.Context) (models.OpportunityStats, error) {
	return f.stats, nil
}

func (f *fakeOpportunityRepo) Distinct(_ context.Context, field string, filter bson.M) ([]string, error) {
	if f.distinctFilters == nil {
		f.distinctFilters = map[string]bson.M{}
	}
	f.distinctFilters[field] = filter
	return f.distincts[field], nil
}

func (f *fakeOpportunityRepo) FindByID(_ context.Context, id bson.ObjectID) (*models.Opportunity, error) {
	if opp, ok := f.byID[id.Hex()]; ok {
		return opp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOpportunityRepo) Insert(_ context.Context, opp *models.Opportunity) (*models.Opportunity, error) {
	opp.ID = bson.NewObjectID()
	opp.CreatedAt = time.Now().UTC()
	opp.UpdatedAt = opp.CreatedAt
	f.inserted = append(f.inserted, opp)
	return opp, nil
}

type stubIdentities struct {
	profiles map[string]string
	emails   map[string]string
}

func (s *stubIdentities) ProfileNamesByUserIDs(_ context.Context, ids []bson.ObjectID) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := s.profiles[id.Hex()]; ok {
			out[id.Hex()] = name
		}
	}
	return out, nil
}

func (s *stubIdentities) EmailsByUserIDs(_ context.Context, ids []bson.ObjectID) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if email, ok := s.emails[id.Hex()]; ok {
			out[id.Hex()] = email
		}
	}
	return out, nil
}

func setupOpportunityApp(opps *fakeOpportunityRepo, ids repository.IdentityRepository) *fiber.App {
	app := newTestApp()
	if ids == nil {
		ids = &stubIdentities{}
	}
	routes.SetupOpportunityRoutes(app, opps, ids)
	return app
}

// ===== tests =====

func TestListClampsLimitAndComputesPages(t *testing.T) {
	opps := &fakeOpportunityRepo{}
	app := setupOpportunityApp(opps, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities?limit=100&page=0", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body dto.OpportunityListResponse
	decodeBody(t, resp, &body)

	assert.True(t, body.Success)
	assert.EqualValues(t, 24, body.Pagination.Limit)
	assert.EqualValues(t, 1, body.Pagination.Page)
	assert.EqualValues(t, 1, body.Pagination.Pages, "pages floor at 1 even when empty")
	assert.EqualValues(t, 24, opps.lastLimit, "clamped limit must reach the query")
	assert.EqualValues(t, 0, opps.lastSkip)
}

func TestListFilterNarrowsItemsNotStats(t *testing.T) {
	stats := models.OpportunityStats{
		CategoryCounts: []models.FacetCount{{ID: "Software", Count: 7}, {ID: "Design", Count: 2}},
		TypeCounts:     []models.FacetCount{{ID: "internship", Count: 9}},
		Locations:      []models.FacetCount{{ID: "remote", Count: 4}},
	}
	opps := &fakeOpportunityRepo{stats: stats}
	app := setupOpportunityApp(opps, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities?category=Design&sortBy=closingSoon", nil))
	require.NoError(t, err)

	var body dto.OpportunityListResponse
	decodeBody(t, resp, &body)

	assert.Equal(t, "Design", opps.lastFilter["category"])
	assert.Equal(t, "active", opps.lastFilter["status"])
	assert.Equal(t, "deadline", opps.lastSort[0].Key)
	// The stats block ignores the category filter entirely.
	assert.Equal(t, stats, body.Stats)
}

func TestListResolvesMissingPosterNames(t *testing.T) {
	poster := bson.NewObjectID()
	opps := &fakeOpportunityRepo{
		items: []models.Opportunity{{Title: "SDE Intern", PostedBy: poster}},
	}
	ids := &stubIdentities{emails: map[string]string{poster.Hex(): "a_b-c@x.edu"}}
	app := setupOpportunityApp(opps, ids)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities", nil))
	require.NoError(t, err)

	var body dto.OpportunityListResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Opportunities, 1)
	assert.Equal(t, "A B C", body.Opportunities[0].PostedByName)
}

func TestFilterOptionScoping(t *testing.T) {
	opps := &fakeOpportunityRepo{distincts: map[string][]string{
		"category":        {"Software"},
		"companyName":     {"Acme"},
		"opportunityType": {"internship", "full-time"},
		"locationType":    {"remote"},
		"experienceLevel": {"fresher"},
	}}
	app := setupOpportunityApp(opps, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities/filters", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body dto.OpportunityFiltersResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, []string{"internship", "full-time"}, body.Filters.Types)

	// Categories/companies over active records only; the rest over any
	// record with a status field.
	assert.Equal(t, bson.M{"status": "active"}, opps.distinctFilters["category"])
	assert.Equal(t, bson.M{"status": "active"}, opps.distinctFilters["companyName"])
	for _, field := range []string{"opportunityType", "locationType", "experienceLevel"} {
		assert.Equal(t, bson.M{"status": bson.M{"$exists": true}}, opps.distinctFilters[field], field)
	}
}

func TestGetByIDBypassesStatusGate(t *testing.T) {
	draft := &models.Opportunity{
		ID:           bson.NewObjectID(),
		Title:        "Unpublished",
		CompanyName:  "Acme",
		Status:       "draft",
		PostedByName: "Someone",
	}
	opps := &fakeOpportunityRepo{byID: map[string]*models.Opportunity{draft.ID.Hex(): draft}}
	app := setupOpportunityApp(opps, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities/"+draft.ID.Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body dto.OpportunityResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "draft", body.Opportunity.Status)
}

func TestGetByIDNotFound(t *testing.T) {
	opps := &fakeOpportunityRepo{byID: map[string]*models.Opportunity{}}
	app := setupOpportunityApp(opps, nil)

	for _, path := range []string{
		"/api/opportunities/" + bson.NewObjectID().Hex(),
		"/api/opportunities/not-a-hex-id",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode, path)
	}
}

func TestCreateRequiresAuth(t *testing.T) {
	opps := &fakeOpportunityRepo{}
	app := setupOpportunityApp(opps, nil)

	req := httptest.NewRequest("POST", "/api/opportunities",
		strings.NewReader(`{"title":"SDE Intern","companyName":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Empty(t, opps.inserted, "unauthorized create must not write")
}

func TestCreateStampsPostedByName(t *testing.T) {
	userID := bson.NewObjectID()
	opps := &fakeOpportunityRepo{}
	ids := &stubIdentities{profiles: map[string]string{userID.Hex(): "Priya Sharma"}}
	app := setupOpportunityApp(opps, ids)

	req := httptest.NewRequest("POST", "/api/opportunities",
		strings.NewReader(`{"title":"SDE Intern","companyName":"Acme","category":"Software","deadline":"2026-10-15"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, userID))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	require.Len(t, opps.inserted, 1)
	created := opps.inserted[0]
	assert.Equal(t, userID, created.PostedBy)
	assert.Equal(t, "Priya Sharma", created.PostedByName)
	assert.Equal(t, "active", created.Status, "status defaults to active")
	require.NotNil(t, created.Deadline)
	assert.Equal(t, 2026, created.Deadline.Year())
}

func TestCreateRejectsBadEnum(t *testing.T) {
	opps := &fakeOpportunityRepo{}
	app := setupOpportunityApp(opps, nil)

	req := httptest.NewRequest("POST", "/api/opportunities",
		strings.NewReader(`{"title":"X","companyName":"Acme","category":"Quantum"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, bson.NewObjectID()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Empty(t, opps.inserted)
}
