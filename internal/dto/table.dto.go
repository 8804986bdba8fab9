package dto

import "github.com/BruksfildServices01/table-booking/internal/models"

// CreateTableRequest uses pointers so a missing field can be told apart
// from a zero value.
type CreateTableRequest struct {
	ID       *FlexInt `json:"id" binding:"required"`
	Number   *FlexInt `json:"number" binding:"required"`
	Places   *FlexInt `json:"places" binding:"required"`
	IsVip    *bool    `json:"isVip" binding:"required"`
	MinOrder *FlexInt `json:"minOrder"`
}

type CreateTableResponse struct {
	ID int `json:"id"`
}

type TableListResponse struct {
	Tables []models.Table `json:"tables"`
}
