package services

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placehub-backend/internal/models"
)

// ParseExperienceQuery coerces the browse parameters. batch/company/outcome
// are CSV multi-selects.
func ParseExperienceQuery(raw map[string]string) models.ExperienceQuery {
	q := models.ExperienceQuery{
		Page:  1,
		Limit: DefaultPageLimit,
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
	if n, err := strconv.Atoi(raw["difficulty"]); err == nil && n >= 1 && n <= 5 {
		q.Difficulty = n
	}

	q.Batches = splitCSV(raw["batch"])
	q.Companies = splitCSV(raw["company"])
	q.Outcomes = splitCSV(raw["outcome"])
	q.Search = raw["search"]
	return q
}

// BuildExperienceFilter scopes browsing to approved submissions.
func BuildExperienceFilter(q models.ExperienceQuery) bson.M {
	filter := bson.M{"status": "approved"}

	if len(q.Batches) > 0 {
		filter["batch"] = bson.M{"$in": q.Batches}
	}
	if len(q.Companies) > 0 {
		filter["companyName"] = bson.M{"$in": q.Companies}
	}
	if len(q.Outcomes) > 0 {
		filter["outcome"] = bson.M{"$in": q.Outcomes}
	}
	if q.Difficulty > 0 {
		filter["difficultyRating"] = q.Difficulty
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		filter["$text"] = bson.M{"$search": search}
	}
	return filter
}

// ValidateCreateExperience checks the metadata phase.
func ValidateCreateExperience(exp *models.Experience) string {
	if strings.TrimSpace(exp.CompanyName) == "" {
		return "companyName is required"
	}
	if strings.TrimSpace(exp.RoleAppliedFor) == "" {
		return "roleAppliedFor is required"
	}
	if exp.Outcome != "" && !contains(models.ExperienceOutcomes, exp.Outcome) {
		return "invalid outcome"
	}
	if exp.PlacementSeason != "" && !contains(models.PlacementSeasons, exp.PlacementSeason) {
		return "invalid placementSeason"
	}
	if exp.DifficultyRating < 0 || exp.DifficultyRating > 5 {
		return "difficultyRating must be between 1 and 5"
	}
	if exp.OverallExperienceRating < 0 || exp.OverallExperienceRating > 5 {
		return "overallExperienceRating must be between 1 and 5"
	}
	return ""
}

// ValidateRounds rejects unknown round types before persisting a phase.
func ValidateRounds(rounds []models.Round) string {
	for _, round := range rounds {
		if !contains(models.RoundTypes, round.Type) {
			return "invalid round type: " + round.Type
		}
	}
	return ""
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
