package dto

import (
	"anoa.com/casetrack/internal/entity"
	"anoa.com/casetrack/pkg/timeutil"
)

type CreateOrganizationRequest struct {
	Name        string  `json:"name" binding:"notblank,max=255"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=64"`
	Email       *string `json:"email" binding:"omitempty,contains=@,max=255"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
}

type ListOrganizationsQuery struct {
	Q string `form:"q"`
}

type OrganizationResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	CreatedAt   string  `json:"created_at"`
}

func ToOrganizationResponse(o *entity.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		ContactName: o.ContactName,
		Phone:       o.Phone,
		Email:       o.Email,
		Address:     o.Address,
		CreatedAt:   timeutil.FormatDateTime(o.CreatedAt),
	}
}
