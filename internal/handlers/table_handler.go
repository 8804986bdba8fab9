package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/table-booking/internal/dto"
	"github.com/BruksfildServices01/table-booking/internal/httperr"
	"github.com/BruksfildServices01/table-booking/internal/httpresp"
	ucTable "github.com/BruksfildServices01/table-booking/internal/usecase/table"
)

type TableHandler struct {
	directory *ucTable.Directory
	log       logrus.FieldLogger
}

func NewTableHandler(directory *ucTable.Directory, log logrus.FieldLogger) *TableHandler {
	return &TableHandler{directory: directory, log: log}
}

func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.directory.ListTables(c.Request.Context())
	if err != nil {
		httperr.Fail(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.TableListResponse{Tables: tables})
}

func (h *TableHandler) Create(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Fail(c, h.log, httperr.Validation("body", err.Error()))
		return
	}

	id, err := h.directory.CreateTable(c.Request.Context(), ucTable.CreateTableInput{
		ID:       req.ID.Int(),
		Number:   req.Number.Int(),
		Places:   req.Places.Int(),
		IsVip:    *req.IsVip,
		MinOrder: dto.OptionalInt(req.MinOrder),
	})
	if err != nil {
		httperr.Fail(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.CreateTableResponse{ID: id})
}

// Get only matches all-digit ids; anything else is an unknown route.
func (h *TableHandler) Get(c *gin.Context) {
	raw := c.Param("id")
	if !isDigits(raw) {
		httperr.NotFound(c)
		return
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		httperr.NotFound(c)
		return
	}

	table, err := h.directory.GetTable(c.Request.Context(), id)
	if err != nil {
		httperr.Fail(c, h.log, err)
		return
	}

	httpresp.OK(c, table)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
