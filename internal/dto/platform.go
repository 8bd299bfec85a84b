package dto

import (
	"time"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// CreatePlatformRequest creates one subscription platform.
type CreatePlatformRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// CreateServiceRequest carries the multipart form fields of a new
// service under a platform.
type CreateServiceRequest struct {
	PlatformID     int64  `form:"platform_id"`
	Name           string `form:"name"`
	StartDate      string `form:"start_date"`
	EndDate        string `form:"end_date"`
	AttachmentPath string `form:"-"`
}

// ServiceResponse is the JSON shape of a service.
type ServiceResponse struct {
	ID             int64     `json:"id"`
	PlatformID     int64     `json:"platform_id"`
	Name           string    `json:"name"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	AttachmentPath *string   `json:"attachment_path"`
	CreatedBy      int64     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// PlatformResponse is the JSON shape of a platform with its services
// embedded.
type PlatformResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Category      *string           `json:"category"`
	CreatedBy     int64             `json:"created_by"`
	CreatedByName *string           `json:"created_by_name"`
	CreatedAt     time.Time         `json:"created_at"`
	Services      []ServiceResponse `json:"services"`
}

// ToServiceResponse converts a domain service.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ServiceID,
		PlatformID:     s.PlatformID,
		Name:           s.Name,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		AttachmentPath: s.AttachmentPath,
		CreatedBy:      s.CreatedBy,
		CreatedAt:      s.CreatedAt,
	}
}

// ToPlatformResponse converts a domain platform with its services.
func ToPlatformResponse(p *domain.Platform) PlatformResponse {
	services := make([]ServiceResponse, len(p.Services))
	for i := range p.Services {
		services[i] = ToServiceResponse(&p.Services[i])
	}
	return PlatformResponse{
		ID:            p.PlatformID,
		Name:          p.Name,
		Category:      p.Category,
		CreatedBy:     p.CreatedBy,
		CreatedByName: p.CreatedByName,
		CreatedAt:     p.CreatedAt,
		Services:      services,
	}
}

// ToListPlatformsResponse converts a slice of domain platforms.
func ToListPlatformsResponse(platforms []domain.Platform) []PlatformResponse {
	out := make([]PlatformResponse, len(platforms))
	for i := range platforms {
		out[i] = ToPlatformResponse(&platforms[i])
	}
	return out
}
