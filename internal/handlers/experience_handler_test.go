package handlers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"placehub-backend/dto"
	"placehub-backend/internal/models"
	"placehub-backend/internal/repository"
	"placehub-backend/internal/routes"
)

type fakeExperienceRepo struct {
	byID       map[string]*models.Experience
	browsed    []models.Experience
	lastFilter bson.M
	distincts  map[string][]string
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{byID: map[string]*models.Experience{}}
}

func (f *fakeExperienceRepo) Insert(_ context.Context, exp *models.Experience) (*models.Experience, error) {
	exp.ID = bson.NewObjectID()
	exp.CreatedAt = time.Now().UTC()
	exp.UpdatedAt = exp.CreatedAt
	if exp.Rounds == nil {
		exp.Rounds = []models.Round{}
	}
	if exp.Materials == nil {
		exp.Materials = []models.Material{}
	}
	f.byID[exp.ID.Hex()] = exp
	return exp, nil
}

func (f *fakeExperienceRepo) FindByID(_ context.Context, id bson.ObjectID) (*models.Experience, error) {
	if exp, ok := f.byID[id.Hex()]; ok {
		return exp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExperienceRepo) owned(id, userID bson.ObjectID) (*models.Experience, error) {
	exp, ok := f.byID[id.Hex()]
	if !ok || exp.UserID != userID {
		return nil, repository.ErrNotOwner
	}
	return exp, nil
}

func (f *fakeExperienceRepo) ReplaceRounds(_ context.Context, id, userID bson.ObjectID, rounds []models.Round) error {
	exp, err := f.owned(id, userID)
	if err != nil {
		return err
	}
	exp.Rounds = rounds
	exp.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeExperienceRepo) ReplaceMaterials(_ context.Context, id, userID bson.ObjectID, materials []models.Material) error {
	exp, err := f.owned(id, userID)
	if err != nil {
		return err
	}
	exp.Materials = materials
	exp.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeExperienceRepo) Submit(_ context.Context, id, userID bson.ObjectID) error {
	exp, err := f.owned(id, userID)
	if err != nil {
		return err
	}
	if exp.Status != "draft" {
		return repository.ErrNotDraft
	}
	exp.Status = "pending"
	return nil
}

func (f *fakeExperienceRepo) LatestDraft(_ context.Context, userID bson.ObjectID) (*models.Experience, error) {
	var latest *models.Experience
	for _, exp := range f.byID {
		if exp.UserID != userID || exp.Status != "draft" {
			continue
		}
		if latest == nil || exp.UpdatedAt.After(latest.UpdatedAt) {
			latest = exp
		}
	}
	return latest, nil
}

func (f *fakeExperienceRepo) Browse(_ context.Context, filter bson.M, skip, limit int64) ([]models.Experience, error) {
	f.lastFilter = filter
	return f.browsed, nil
}

func (f *fakeExperienceRepo) Count(_ context.Context, filter bson.M) (int64, error) {
	return int64(len(f.browsed)), nil
}

func (f *fakeExperienceRepo) Distinct(_ context.Context, field string, _ bson.M) ([]string, error) {
	return f.distincts[field], nil
}

func setupExperienceApp(exps repository.ExperienceRepository) *fiber.App {
	app := newTestApp()
	routes.SetupExperienceRoutes(app, exps)
	return app
}

func seedDraft(exps *fakeExperienceRepo, userID bson.ObjectID, status string) *models.Experience {
	exp := &models.Experience{
		ID:             bson.NewObjectID(),
		UserID:         userID,
		CompanyName:    "Acme",
		RoleAppliedFor: "SDE",
		Outcome:        "selected",
		Status:         status,
		Rounds:         []models.Round{},
		Materials:      []models.Material{},
		UpdatedAt:      time.Now().UTC(),
	}
	exps.byID[exp.ID.Hex()] = exp
	return exp
}

func TestExperienceWizardFlow(t *testing.T) {
	userID := bson.NewObjectID()
	exps := newFakeExperienceRepo()
	app := setupExperienceApp(exps)
	token := bearerFor(t, userID)

	// Phase 1: metadata creates a draft.
	req := httptest.NewRequest("POST", "/api/experiences",
		strings.NewReader(`{"companyName":"Acme","roleAppliedFor":"SDE","outcome":"selected","difficultyRating":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created dto.ExperienceResponse
	decodeBody(t, resp, &created)
	assert.Equal(t, "draft", created.Experience.Status)
	id := created.Experience.ID.Hex()

	// Phase 2: rounds overwrite.
	req = httptest.NewRequest("PUT", "/api/experiences/"+id+"/rounds",
		strings.NewReader(`{"rounds":[{"title":"Online Test","type":"online-assessment"},{"title":"HR","type":"hr-interview"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, exps.byID[id].Rounds, 2)

	// Phase 3: materials overwrite.
	req = httptest.NewRequest("PUT", "/api/experiences/"+id+"/materials",
		strings.NewReader(`{"materials":[{"id":1,"title":"DSA sheet","type":"link","url":"https://example.com"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, exps.byID[id].Materials, 1)

	// Submit: draft -> pending.
	req = httptest.NewRequest("POST", "/api/experiences/"+id+"/submit", nil)
	req.Header.Set("Authorization", token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "pending", exps.byID[id].Status)

	// Submitting again conflicts.
	req = httptest.NewRequest("POST", "/api/experiences/"+id+"/submit", nil)
	req.Header.Set("Authorization", token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestPhaseWritesRequireOwnership(t *testing.T) {
	owner := bson.NewObjectID()
	exps := newFakeExperienceRepo()
	exp := seedDraft(exps, owner, "draft")
	app := setupExperienceApp(exps)

	// A different authenticated user gets 404, never 403.
	req := httptest.NewRequest("PUT", "/api/experiences/"+exp.ID.Hex()+"/rounds",
		strings.NewReader(`{"rounds":[]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, bson.NewObjectID()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Empty(t, exps.byID[exp.ID.Hex()].Rounds)
}

func TestWizardRequiresAuth(t *testing.T) {
	exps := newFakeExperienceRepo()
	app := setupExperienceApp(exps)

	req := httptest.NewRequest("POST", "/api/experiences",
		strings.NewReader(`{"companyName":"Acme","roleAppliedFor":"SDE"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Empty(t, exps.byID)
}

func TestDraftRecovery(t *testing.T) {
	userID := bson.NewObjectID()
	exps := newFakeExperienceRepo()

	older := seedDraft(exps, userID, "draft")
	older.UpdatedAt = time.Now().UTC().Add(-time.Hour)
	newest := seedDraft(exps, userID, "draft")
	seedDraft(exps, userID, "pending")
	seedDraft(exps, bson.NewObjectID(), "draft")

	app := setupExperienceApp(exps)

	req := httptest.NewRequest("GET", "/api/experiences/draft", nil)
	req.Header.Set("Authorization", bearerFor(t, userID))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body dto.DraftResponse
	decodeBody(t, resp, &body)
	require.NotNil(t, body.Draft)
	assert.Equal(t, newest.ID, body.Draft.ID)
}

func TestDraftRecoveryEmpty(t *testing.T) {
	app := setupExperienceApp(newFakeExperienceRepo())

	req := httptest.NewRequest("GET", "/api/experiences/draft", nil)
	req.Header.Set("Authorization", bearerFor(t, bson.NewObjectID()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body dto.DraftResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Nil(t, body.Draft)
}

func TestBrowseBuildsCards(t *testing.T) {
	exps := newFakeExperienceRepo()
	exps.browsed = []models.Experience{{
		ID:               bson.NewObjectID(),
		CompanyName:      "Acme",
		RoleAppliedFor:   "SDE",
		Outcome:          "selected",
		DifficultyRating: 4,
		Rounds:           []models.Round{{Title: "OT"}, {Title: "Tech"}, {Title: "HR"}},
		Materials:        []models.Material{{ID: 1, Title: "Sheet"}},
		CreatedAt:        time.Now().UTC(),
	}}
	app := setupExperienceApp(exps)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/experiences?company=Acme,Globex&batch=2026", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body dto.ExperienceListResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Experiences, 1)
	card := body.Experiences[0]
	assert.Equal(t, 3, card.RoundsCount)
	assert.Equal(t, 1, card.MaterialsCount)

	// Browsing is always gated to approved records; CSV filters become $in.
	assert.Equal(t, "approved", exps.lastFilter["status"])
	assert.Equal(t, bson.M{"$in": []string{"Acme", "Globex"}}, exps.lastFilter["companyName"])
	assert.Equal(t, bson.M{"$in": []string{"2026"}}, exps.lastFilter["batch"])
}

func TestExperienceOptions(t *testing.T) {
	exps := newFakeExperienceRepo()
	exps.distincts = map[string][]string{
		"companyName":    {"Acme", "Globex"},
		"roleAppliedFor": {"SDE"},
	}
	app := setupExperienceApp(exps)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/experiences/options", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body dto.ExperienceOptionsResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, []string{"Acme", "Globex"}, body.Companies)
	assert.Equal(t, []string{"SDE"}, body.Roles)
}
