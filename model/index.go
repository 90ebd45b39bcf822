package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Pagination struct {
	Limit *int `query:"limit" json:"limit"`
	Page  *int `query:"page" json:"page"`
}

// PaginatedResponse คือ envelope สำหรับรายการที่แบ่งหน้า
type PaginatedResponse struct {
	Rows       any   `json:"rows"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNextPage"`
	HasPrev    bool  `json:"hasPrevPage"`
}
