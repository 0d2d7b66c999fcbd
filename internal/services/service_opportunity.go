package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placehub-backend/internal/models"
	"placehub-backend/internal/repository"
)

const (
	DefaultPageLimit = 9
	MaxPageLimit     = 24
)

var sortMap = map[string]bson.D{
	"recent":      {{Key: "createdAt", Value: -1}},
	"closingSoon": {{Key: "deadline", Value: 1}},
}

// ParseOpportunityQuery coerces the raw listing parameters. Bad pages fall
// back to 1, the limit is clamped at MaxPageLimit and unknown sort keys fall
// back to recent.
func ParseOpportunityQuery(raw map[string]string) models.OpportunityQuery {
	q := models.OpportunityQuery{
		Page:   1,
		Limit:  DefaultPageLimit,
		SortBy: "recent",
	}

	if n, err := strconv.ParseInt(raw["page"], 10, 64); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.ParseInt(raw["limit"], 10, 64); err == nil && n > 0 {
		q.Limit = n
		if q.Limit > MaxPageLimit {
			q.Limit = MaxPageLimit
		}
	}
	if _, ok := sortMap[raw["sortBy"]]; ok {
		q.SortBy = raw["sortBy"]
	}

	q.Category = raw["category"]
	q.Type = raw["type"]
	q.LocationType = raw["locationType"]
	q.Experience = raw["experience"]
	q.Company = raw["company"]
	q.Status = raw["status"]
	q.Search = raw["search"]
	return q
}

// SortFor maps a validated sortBy key to a Mongo sort document.
func SortFor(sortBy string) bson.D {
	if s, ok := sortMap[sortBy]; ok {
		return s
	}
	return sortMap["recent"]
}

// BuildOpportunityFilter turns coerced parameters into a find filter.
// "All"/"all" sentinels mean no filter on that dimension, and an explicit
// status overrides the default active-only gate.
func BuildOpportunityFilter(q models.OpportunityQuery) bson.M {
	filter := bson.M{"status": "active"}

	if q.Category != "" && q.Category != "All" {
		filter["category"] = q.Category
	}
	if q.Type != "" && q.Type != "all" {
		filter["opportunityType"] = q.Type
	}
	if q.LocationType != "" && q.LocationType != "all" {
		filter["locationType"] = q.LocationType
	}
	if q.Experience != "" && q.Experience != "all" {
		filter["experienceLevel"] = q.Experience
	}
	if q.Company != "" {
		filter["companyName"] = q.Company
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		filter["$text"] = bson.M{"$search": search}
	}
	return filter
}

// Pages computes the page count with a floor of 1, even for an empty result.
func Pages(total, limit int64) int64 {
	if limit <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// ResolvePostedByNames fills postedByName on every listed item that lacks
// one. One batched profiles query over the distinct poster ids, then one
// users query for the ids a profile did not cover. Lookup failures degrade
// to the fallback name instead of failing the listing.
func ResolvePostedByNames(ctx context.Context, identities repository.IdentityRepository, items []models.Opportunity) {
	seen := map[string]bool{}
	var posterIDs []bson.ObjectID
	for _, item := range items {
		if item.PostedByName != "" || item.PostedBy.IsZero() {
			continue
		}
		if key := item.PostedBy.Hex(); !seen[key] {
			seen[key] = true
			posterIDs = append(posterIDs, item.PostedBy)
		}
	}
	if len(posterIDs) == 0 {
		return
	}

	profileNames, err := identities.ProfileNamesByUserIDs(ctx, posterIDs)
	if err != nil {
		log.Printf("resolve poster profiles: %v", err)
		profileNames = map[string]string{}
	}

	var missing []bson.ObjectID
	for _, id := range posterIDs {
		if strings.TrimSpace(profileNames[id.Hex()]) == "" {
			missing = append(missing, id)
		}
	}
	emails := map[string]string{}
	if len(missing) > 0 {
		emails, err = identities.EmailsByUserIDs(ctx, missing)
		if err != nil {
			log.Printf("resolve poster emails: %v", err)
			emails = map[string]string{}
		}
	}

	for i := range items {
		if items[i].PostedByName != "" || items[i].PostedBy.IsZero() {
			continue
		}
		key := items[i].PostedBy.Hex()
		items[i].PostedByName = DeriveDisplayName(profileNames[key], emails[key])
	}
}

// ResolveSingleName is the single-fetch variant: used by getById and by the
// create path (which stamps the name eagerly at write time).
func ResolveSingleName(ctx context.Context, identities repository.IdentityRepository, userID bson.ObjectID) string {
	ids := []bson.ObjectID{userID}

	profileNames, err := identities.ProfileNamesByUserIDs(ctx, ids)
	if err != nil {
		log.Printf("resolve poster profile: %v", err)
	}
	emails, err := identities.EmailsByUserIDs(ctx, ids)
	if err != nil {
		log.Printf("resolve poster email: %v", err)
	}

	key := userID.Hex()
	return DeriveDisplayName(profileNames[key], emails[key])
}

// ValidateCreateOpportunity checks required fields and enum membership.
func ValidateCreateOpportunity(opp *models.Opportunity) string {
	if strings.TrimSpace(opp.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(opp.CompanyName) == "" {
		return "companyName is required"
	}
	if opp.Category != "" && !contains(models.OpportunityCategories, opp.Category) {
		return "invalid category"
	}
	if opp.OpportunityType != "" && !contains(models.OpportunityTypes, opp.OpportunityType) {
		return "invalid opportunityType"
	}
	if opp.ExperienceLevel != "" && !contains(models.ExperienceLevels, opp.ExperienceLevel) {
		return "invalid experienceLevel"
	}
	if opp.LocationType != "" && !contains(models.LocationTypes, opp.LocationType) {
		return "invalid locationType"
	}
	if opp.Status != "" && !contains(models.OpportunityStatuses, opp.Status) {
		return "invalid status"
	}
	return ""
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
