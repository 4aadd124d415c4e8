package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The order_by parameter ends up in a SQL ORDER BY, so anything outside
// the orderable vocabulary has to be rejected before a query is built.
// No database is connected here; a 400 proves the request never got
// that far.
func TestListSalesRejectsUnknownOrderBy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/sales", ListSales)

	for _, orderBy := range []string{
		"not_a_field",
		"-not_a_field",
		"(SELECT CASE WHEN id > 0 THEN id ELSE game_id END)",
		"id; DROP TABLE sales",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sales?order_by="+url.QueryEscape(orderBy), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, orderBy)
		assert.Contains(t, w.Body.String(), "order_by")
	}
}
