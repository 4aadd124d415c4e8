package handler

import (
	"errors"
	"net/http"
	"strings"

	"gamesales/backend/internal/database"
	"gamesales/backend/internal/models"
	"gamesales/backend/internal/sales"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// RatingResponse carries a game's review figures. Absent figures are null.
type RatingResponse struct {
	CriticScore *float64 `json:"critic_score"`
	CriticCount *float64 `json:"critic_count"`
	UserScore   *float64 `json:"user_score"`
	UserCount   *float64 `json:"user_count"`
}

// SaleResponse is the public shape of one sale record with its game and
// rating flattened in.
type SaleResponse struct {
	ID            uint            `json:"id"`
	Slug          string          `json:"slug"`
	Name          string          `json:"name"`
	Platform      string          `json:"platform"`
	Publisher     string          `json:"publisher"`
	Developer     string          `json:"developer"`
	Genre         string          `json:"genre"`
	YearOfRelease *int            `json:"year_of_release"`
	ESRBRating    string          `json:"esrb_rating"`
	Rating        *RatingResponse `json:"rating"`
	NASales       *float64        `json:"na_sales"`
	EUSales       *float64        `json:"eu_sales"`
	JPSales       *float64        `json:"jp_sales"`
	OtherSales    *float64        `json:"other_sales"`
	GlobalSales   *float64        `json:"global_sales"`
}

func newSaleResponse(sale models.Sale) SaleResponse {
	resp := SaleResponse{
		ID:            sale.ID,
		Slug:          sale.Slug,
		Name:          sale.Game.Name,
		Platform:      sale.Game.Platform,
		Publisher:     sale.Game.Publisher,
		Developer:     sale.Game.Developer,
		Genre:         sale.Game.Genre,
		YearOfRelease: sale.Game.YearOfRelease,
		ESRBRating:    sale.Game.ESRBRating,
		NASales:       sale.NASales,
		EUSales:       sale.EUSales,
		JPSales:       sale.JPSales,
		OtherSales:    sale.OtherSales,
		GlobalSales:   sale.GlobalSales,
	}

	if sale.Game.Rating != nil {
		resp.Rating = &RatingResponse{
			CriticScore: sale.Game.Rating.CriticScore,
			CriticCount: sale.Game.Rating.CriticCount,
			UserScore:   sale.Game.Rating.UserScore,
			UserCount:   sale.Game.Rating.UserCount,
		}
	}

	return resp
}

// PaginatedSaleResponse defines the structure for a paginated list of sales.
type PaginatedSaleResponse struct {
	Data []SaleResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// SaleFiltersResponse lists the values the listing can be filtered and
// ordered by.
type SaleFiltersResponse struct {
	Filters       []string `json:"filters"`
	Genres        []string `json:"genres"`
	ESRBRatings   []string `json:"esrb_ratings"`
	OrderByFields []string `json:"order_by_fields"`
}

// endregion

// region --- Query helpers ---

// fetchSales loads the sale catalog with game and rating sub-records,
// sorted by orderKey (a mapped storage sort key) when one is given.
func fetchSales(orderKey string) ([]models.Sale, error) {
	q := database.DB.Model(&models.Sale{}).
		Joins("JOIN games ON games.id = sales.game_id").
		Joins("LEFT JOIN ratings ON ratings.id = games.rating_id").
		Preload("Game.Rating")

	if orderKey != "" {
		q = q.Order(sales.OrderClause(orderKey))
	}

	var records []models.Sale
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// filterParams picks the recognized filter names out of the query string.
func filterParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for _, name := range sales.FilterNames {
		if value, ok := c.GetQuery(name); ok {
			params[name] = value
		}
	}
	return params
}

// queryRecords fetches the catalog and applies the request's filters and
// free-text search. Integer parse failures surface as client errors.
func queryRecords(c *gin.Context, orderKey string) ([]models.Sale, bool) {
	records, err := fetchSales(orderKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sales"})
		return nil, false
	}

	records, err = sales.FilterByParams(records, filterParams(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	if text := c.Query("search"); text != "" {
		records = sales.SearchByText(records, text)
	}

	return records, true
}

// endregion

// region --- Handlers ---

// ListSales godoc
// @Summary      List sale records
// @Description  Retrieves a paginated list of sale records with optional filtering, search and ordering.
// @Tags         sales
// @Produce      json
// @Param        genre            query  string  false  "Genre substring filter (case-sensitive)"
// @Param        esrb_rating      query  string  false  "ESRB rating substring filter"
// @Param        yor_lt           query  int     false  "Year of release strictly before"
// @Param        yor_gt           query  int     false  "Year of release strictly after"
// @Param        year_of_release  query  int     false  "Exact year of release"
// @Param        search           query  string  false  "Free-text search (an integer searches the year instead)"
// @Param        order_by         query  string  false  "Sort field, prefix with - for descending"
// @Param        page             query  int     false  "Page number" default(1)
// @Param        limit            query  int     false  "Items per page" default(10)
// @Success      200  {object}  PaginatedSaleResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /sales [get]
func ListSales(c *gin.Context) {
	page, limit := pageParams(c)

	// The sort key reaches SQL, so anything outside the orderable
	// vocabulary is rejected before it can touch the query.
	orderBy := c.Query("order_by")
	if orderBy != "" && !sales.IsOrderable(strings.TrimPrefix(orderBy, "-")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order_by field"})
		return
	}
	orderKey := sales.OrderByMapping(orderBy, "sales.id")

	records, ok := queryRecords(c, orderKey)
	if !ok {
		return
	}

	response := make([]SaleResponse, 0, limit)
	for _, sale := range paginate(records, page, limit) {
		response = append(response, newSaleResponse(sale))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, int64(len(records)), page, limit))
}

// GetSaleBySlug godoc
// @Summary      Get a single sale record
// @Description  Retrieves one sale record by its slug, including the game and rating.
// @Tags         sales
// @Produce      json
// @Param        slug path string true "Sale slug"
// @Success      200  {object}  SaleResponse
// @Failure      404  {object}  ErrorResponse "Sale not found"
// @Router       /sales/{slug} [get]
func GetSaleBySlug(c *gin.Context) {
	var sale models.Sale
	err := database.DB.Preload("Game.Rating").
		Where("slug = ?", c.Param("slug")).
		First(&sale).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	c.JSON(http.StatusOK, newSaleResponse(sale))
}

// CreateSale godoc
// @Summary      Create a sale record
// @Description  Creates the rating, game and sale records in one transaction.
// @Tags         admin-sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body models.SaleInput true "Sale Info"
// @Success      201  {object}  SaleResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Sale already exists"
// @Router       /sales [post]
func CreateSale(c *gin.Context) {
	var input models.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := models.CreateSale(database.DB, input)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Sale already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newSaleResponse(*sale))
}

// DeleteSale godoc
// @Summary      Delete a sale record
// @Description  Deletes a sale's game; the sale row goes with it by cascade.
// @Tags         admin-sales
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Sale slug"
// @Success      200 {object} map[string]string "{"message": "Sale deleted"}"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Sale not found"
// @Router       /sales/{slug} [delete]
func DeleteSale(c *gin.Context) {
	var sale models.Sale
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&sale).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	// Deleting the game cascades to the sale row.
	if err := database.DB.Unscoped().Delete(&models.Game{}, sale.GameID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
}

// GetSaleFilters godoc
// @Summary      List filterable values
// @Description  Retrieves the recognized filter names, the distinct genres, the ESRB rating codes and the orderable fields.
// @Tags         sales
// @Produce      json
// @Success      200  {object}  SaleFiltersResponse
// @Router       /sale-filters [get]
func GetSaleFilters(c *gin.Context) {
	var genres []string
	err := database.DB.Model(&models.Game{}).
		Distinct("genre").
		Where("genre <> ''").
		Order("genre").
		Pluck("genre", &genres).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve genres"})
		return
	}

	c.JSON(http.StatusOK, SaleFiltersResponse{
		Filters:       sales.FilterNames,
		Genres:        genres,
		ESRBRatings:   models.ESRBRatingChoices,
		OrderByFields: sales.OrderableFields,
	})
}

// endregion
