package public

import (
	publicdomain "github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

type serviceResponse = publicdomain.Service

type serviceListResponse struct {
	Data       []serviceResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}
