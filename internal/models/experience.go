package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ExperienceOutcomes = []string{"selected", "not-selected", "in-process"}
	PlacementSeasons   = []string{"on-campus", "off-campus"}
	RoundTypes         = []string{"online-assessment", "technical-interview", "hr-interview", "group-discussion", "case-study", "other"}
	ExperienceStatuses = []string{"draft", "pending", "approved", "rejected"}
)

// Round is a single interview phase. Details is schemaless on purpose: each
// round type captures a different field set (platform/duration for online
// assessments, topics/questions for technical rounds, ...).
type Round struct {
	Title   string `json:"title" bson:"title"`
	Type    string `json:"type" bson:"type"`
	Details bson.M `json:"details,omitempty" bson:"details,omitempty"`
}

type Material struct {
	ID          int64  `json:"id" bson:"id"`
	Type        string `json:"type" bson:"type"` // link, pdf, video, notes
	Title       string `json:"title" bson:"title"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type Experience struct {
	ID                      bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID                  bson.ObjectID `json:"userId" bson:"userId"`
	CompanyName             string        `json:"companyName" bson:"companyName"`
	RoleAppliedFor          string        `json:"roleAppliedFor" bson:"roleAppliedFor"`
	Batch                   string        `json:"batch,omitempty" bson:"batch,omitempty"`
	Outcome                 string        `json:"outcome" bson:"outcome"`
	DifficultyRating        int           `json:"difficultyRating,omitempty" bson:"difficultyRating,omitempty"`
	OverallExperienceRating int           `json:"overallExperienceRating,omitempty" bson:"overallExperienceRating,omitempty"`
	Package                 string        `json:"package,omitempty" bson:"package,omitempty"`
	PlacementSeason         string        `json:"placementSeason,omitempty" bson:"placementSeason,omitempty"`
	InterviewMonth          string        `json:"interviewMonth,omitempty" bson:"interviewMonth,omitempty"`
	InterviewYear           int           `json:"interviewYear,omitempty" bson:"interviewYear,omitempty"`
	PreparationTime         int           `json:"preparationTime,omitempty" bson:"preparationTime,omitempty"`
	Rounds                  []Round       `json:"rounds" bson:"rounds"`
	Materials               []Material    `json:"materials" bson:"materials"`
	Status                  string        `json:"status" bson:"status"` // draft, pending, approved, rejected
	CreatedAt               time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt               time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// ExperienceQuery carries the coerced browse parameters.
type ExperienceQuery struct {
	Page       int64
	Limit      int64
	Batches    []string
	Companies  []string
	Outcomes   []string
	Difficulty int
	Search     string
}
