package models

import (
	"time"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
)

// EngagementFilters narrows engagement listings.
type EngagementFilters struct {
	Status         string     `json:"status,omitempty"`
	ObjectiveType  string     `json:"objective_type,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// EngagementListResponse contains a paginated engagement list.
type EngagementListResponse struct {
	Engagements []*ent.Engagement `json:"engagements"`
	TotalCount  int               `json:"total_count"`
	Limit       int               `json:"limit"`
	Offset      int               `json:"offset"`
}
