package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"gamesales/backend/internal/database"
	"gamesales/backend/internal/models"
	"gamesales/backend/internal/sales"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ReportInput names a top-field report to snapshot.
type ReportInput struct {
	Name     string `json:"name" binding:"required"`
	Field    string `json:"field"`
	SaleType string `json:"sale_type"`
	N        int    `json:"n"`
}

// ReportResponse is a saved analysis snapshot.
type ReportResponse struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Params    string          `json:"params"`
	Result    json.RawMessage `json:"result"`
}

func newReportResponse(report models.Report) ReportResponse {
	return ReportResponse{
		ID:        report.ID,
		CreatedAt: report.CreatedAt,
		Name:      report.Name,
		Kind:      report.Kind,
		Params:    report.Params,
		Result:    json.RawMessage(report.Result),
	}
}

// endregion

// GetReports godoc
// @Summary      List reports
// @Description  Retrieves the authenticated user's saved reports, newest first.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ReportResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /reports [get]
func GetReports(c *gin.Context) {
	userID, _ := c.Get("userID")

	var reports []models.Report
	err := database.DB.
		Where("requested_by_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reports"})
		return
	}

	response := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		response = append(response, newReportResponse(report))
	}
	c.JSON(http.StatusOK, response)
}

// CreateReport godoc
// @Summary      Create a report
// @Description  Runs a top-field breakdown over the current (optionally filtered) data and saves the result.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ReportInput true "Report Info"
// @Success      201  {object}  ReportResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /reports [post]
func CreateReport(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Field == "" {
		input.Field = "genre"
	}
	if input.SaleType == "" {
		input.SaleType = "global_sales"
	}
	if input.N == 0 {
		input.N = 10
	}

	records, ok := queryRecords(c, "")
	if !ok {
		return
	}

	top, err := sales.TopNFieldsForSaleType(records, input.Field, input.SaleType, input.N)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := json.Marshal(top)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode report"})
		return
	}

	report := models.Report{
		Name:          input.Name,
		Kind:          "top-field",
		Params:        c.Request.URL.RawQuery,
		Result:        string(result),
		RequestedByID: userID.(uint),
	}
	if err := database.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusCreated, newReportResponse(report))
}
