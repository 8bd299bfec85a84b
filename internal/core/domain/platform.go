package domain

import "time"

// Platform is a subscription platform owning zero or more services.
// Deleting a platform deletes its services.
type Platform struct {
	PlatformID    int64     `json:"id"`
	Name          string    `json:"name"`
	Category      *string   `json:"category"`
	CreatedBy     int64     `json:"createdBy"`
	CreatedByName *string   `json:"createdByName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	Services      []Service `json:"services"`
}

// Service is a subscription owned by exactly one platform, tracked by
// its start and (optional) end date for expiry.
type Service struct {
	ServiceID      int64     `json:"id"`
	PlatformID     int64     `json:"platformId"`
	Name           string    `json:"name"`
	StartDate      *string   `json:"startDate"`
	EndDate        *string   `json:"endDate"`
	AttachmentPath *string   `json:"attachmentPath"`
	CreatedBy      int64     `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}
