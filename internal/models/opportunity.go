package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	OpportunityCategories = []string{"Software", "Hardware", "Design", "Content", "Business", "Others"}
	OpportunityTypes      = []string{"internship", "full-time", "contract", "fellowship"}
	ExperienceLevels      = []string{"fresher", "0-1 years", "1-3 years", "3+ years"}
	LocationTypes         = []string{"on-site", "hybrid", "remote"}
	OpportunityStatuses   = []string{"draft", "active", "closed"}
)

type Opportunity struct {
	ID               bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title            string        `json:"title" bson:"title"`
	CompanyName      string        `json:"companyName" bson:"companyName"`
	Category         string        `json:"category" bson:"category"`
	OpportunityType  string        `json:"opportunityType" bson:"opportunityType"`
	ExperienceLevel  string        `json:"experienceLevel" bson:"experienceLevel"`
	Location         string        `json:"location,omitempty" bson:"location,omitempty"`
	LocationType     string        `json:"locationType" bson:"locationType"`
	ApplicationURL   string        `json:"applicationUrl,omitempty" bson:"applicationUrl,omitempty"`
	Deadline         *time.Time    `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Skills           []string      `json:"skills" bson:"skills"`
	Responsibilities string        `json:"responsibilities,omitempty" bson:"responsibilities,omitempty"`
	Perks            []string      `json:"perks" bson:"perks"`
	Status           string        `json:"status" bson:"status"` // draft, active, closed
	PostedBy         bson.ObjectID `json:"postedBy,omitempty" bson:"postedBy,omitempty"`
	PostedByName     string        `json:"postedByName,omitempty" bson:"postedByName,omitempty"`
	Source           string        `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt        time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// FacetCount is one bucket of the listing stats facet, e.g. {_id: "Software", count: 12}.
type FacetCount struct {
	ID    string `json:"_id" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// OpportunityStats summarizes all active opportunities, independent of any
// listing filter.
type OpportunityStats struct {
	CategoryCounts []FacetCount `json:"categoryCounts" bson:"categoryCounts"`
	TypeCounts     []FacetCount `json:"typeCounts" bson:"typeCounts"`
	Locations      []FacetCount `json:"locations" bson:"locations"`
}

// OpportunityQuery carries the coerced listing parameters after validation.
type OpportunityQuery struct {
	Page         int64
	Limit        int64
	SortBy       string // recent, closingSoon
	Category     string
	Type         string
	LocationType string
	Experience   string
	Company      string
	Status       string
	Search       string
}
