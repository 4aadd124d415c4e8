package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gamesales/backend/internal/cache"
	"gamesales/backend/internal/sales"

	"github.com/gin-gonic/gin"
)

// AnalysisCache is the optional redis-backed response cache for the
// analysis endpoints. It is set at startup and may stay nil.
var AnalysisCache *cache.Cache

// region --- DTOs ---

// AnalysisSummaryResponse is the overview of a filtered record set.
type AnalysisSummaryResponse struct {
	Count  int                `json:"count"`
	Totals map[string]float64 `json:"totals"`
}

// ScoreResponse summarizes one rating column over the filtered set.
type ScoreResponse struct {
	ScoreType string            `json:"score_type"`
	Stats     sales.ColumnStats `json:"stats"`
}

// endregion

// cachedJSON serves the response for this request URI from the cache when
// possible; otherwise it runs compute and stores the marshaled result.
// compute returning false means it already wrote an error response.
func cachedJSON(c *gin.Context, compute func() (any, bool)) {
	key := "analysis:" + c.Request.URL.RequestURI()
	if payload, ok := AnalysisCache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	result, ok := compute()
	if !ok {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode analysis result"})
		return
	}

	AnalysisCache.Set(c.Request.Context(), key, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GetSaleAnalysis godoc
// @Summary      Summarize the filtered record set
// @Description  Returns the record count and the per-region sales totals for the filtered set.
// @Tags         analysis
// @Produce      json
// @Param        genre   query  string  false  "Genre substring filter"
// @Param        search  query  string  false  "Free-text search"
// @Success      200  {object}  AnalysisSummaryResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /sale-analysis [get]
func GetSaleAnalysis(c *gin.Context) {
	cachedJSON(c, func() (any, bool) {
		records, ok := queryRecords(c, "")
		if !ok {
			return nil, false
		}

		return AnalysisSummaryResponse{
			Count:  len(records),
			Totals: sales.SaleTotals(records),
		}, true
	})
}

// GetTopField godoc
// @Summary      Top-N breakdown by field
// @Description  Groups the filtered records by a game field, sums a sales column per group and returns the N largest groups.
// @Tags         analysis
// @Produce      json
// @Param        field      query  string  false  "Game field to group by"    default(genre)
// @Param        sale_type  query  string  false  "Sales column to sum"       default(global_sales)
// @Param        n          query  int     false  "Number of groups to keep"  default(10)
// @Success      200  {array}   object
// @Failure      400  {object}  ErrorResponse
// @Router       /sale-analysis/top-field [get]
func GetTopField(c *gin.Context) {
	cachedJSON(c, func() (any, bool) {
		field := c.DefaultQuery("field", "genre")
		saleType := c.DefaultQuery("sale_type", "global_sales")

		n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid n"})
			return nil, false
		}

		records, ok := queryRecords(c, "")
		if !ok {
			return nil, false
		}

		top, err := sales.TopNFieldsForSaleType(records, field, saleType, n)
		if err != nil {
			// Negative n, unknown field and unknown sale type are all client errors.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}

		return top, true
	})
}

// GetDescribe godoc
// @Summary      Descriptive statistics
// @Description  Computes count, mean, std, min, quartiles and max per numeric column over the filtered record set.
// @Tags         analysis
// @Produce      json
// @Success      200  {object}  map[string]sales.ColumnStats
// @Failure      400  {object}  ErrorResponse
// @Router       /sale-analysis/describe [get]
func GetDescribe(c *gin.Context) {
	cachedJSON(c, func() (any, bool) {
		records, ok := queryRecords(c, "")
		if !ok {
			return nil, false
		}
		return sales.Describe(records), true
	})
}

// GetScore godoc
// @Summary      Score summary
// @Description  Summarizes one rating column (critic/user score or count) over the filtered record set.
// @Tags         analysis
// @Produce      json
// @Param        score_type  query  string  false  "Rating column"  default(critic_score)
// @Success      200  {object}  ScoreResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /sale-analysis/score [get]
func GetScore(c *gin.Context) {
	cachedJSON(c, func() (any, bool) {
		scoreType := c.DefaultQuery("score_type", "critic_score")

		known := false
		for _, f := range sales.ScoreFields {
			if scoreType == f {
				known = true
				break
			}
		}
		if !known {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown score type"})
			return nil, false
		}

		records, ok := queryRecords(c, "")
		if !ok {
			return nil, false
		}

		stats, err := sales.ColumnSummary(records, scoreType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}

		return ScoreResponse{ScoreType: scoreType, Stats: stats}, true
	})
}

// GetGamesAnnually godoc
// @Summary      Releases per year
// @Description  Counts the filtered records per year of release, ascending.
// @Tags         analysis
// @Produce      json
// @Success      200  {array}   sales.YearCount
// @Failure      400  {object}  ErrorResponse
// @Router       /sale-analysis/games-annually [get]
func GetGamesAnnually(c *gin.Context) {
	cachedJSON(c, func() (any, bool) {
		records, ok := queryRecords(c, "")
		if !ok {
			return nil, false
		}
		return sales.GamesAnnually(records), true
	})
}

// GetGamesByField godoc
// @Summary      Record counts per field value
// @Description  Counts the filtered records per value of a game field, descending.
// @Tags         analysis
// @Produce      json
// @Param        field  query  string  false  "Game field to group by"  default(genre)
// @Success      200  {array}   object
// @Failure      400  {object}  ErrorResponse
// @Router       /sale-analysis/games-by-field [get]
func GetGamesByField(c *gin.Context) {
	cachedJSON(c, func() (any, bool) {
		records, ok := queryRecords(c, "")
		if !ok {
			return nil, false
		}

		counts, err := sales.GamesByField(records, c.DefaultQuery("field", "genre"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}

		return counts, true
	})
}
