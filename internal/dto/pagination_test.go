package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, query string) (BookingListQuery, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/bookings?"+query, nil)
	return ParseBookingListQuery(c)
}

func TestParseBookingListQuery(t *testing.T) {
	t.Run("happy: defaults", func(t *testing.T) {
		q, err := parseQuery(t, "")
		require.NoError(t, err)
		assert.Equal(t, BookingListQuery{Page: 1, PageSize: 20}, q)
		assert.Zero(t, q.Offset())
	})

	t.Run("happy: explicit page and status", func(t *testing.T) {
		q, err := parseQuery(t, "status=CONFIRMED&page=3&page_size=10")
		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", q.Status)
		assert.Equal(t, 20, q.Offset())
	})

	t.Run("edge: clamps page size", func(t *testing.T) {
		q, _ := parseQuery(t, "page_size=1000")
		assert.Equal(t, 100, q.PageSize)
		q, _ = parseQuery(t, "page_size=-1")
		assert.Equal(t, 20, q.PageSize)
	})

	t.Run("edge: huge page cannot overflow the offset", func(t *testing.T) {
		q, err := parseQuery(t, "page=922337203685477580&page_size=100")
		require.NoError(t, err)
		assert.Equal(t, 10000, q.Page)
		assert.Equal(t, 999900, q.Offset())
	})

	t.Run("edge: garbage page resets to first", func(t *testing.T) {
		q, _ := parseQuery(t, "page=abc")
		assert.Equal(t, 1, q.Page)
	})

	t.Run("bad: unknown status", func(t *testing.T) {
		_, err := parseQuery(t, "status=pending")
		assert.Error(t, err)
		_, err = parseQuery(t, "status=PENDING'%3B+DROP+TABLE+bookings%3B+--")
		assert.Error(t, err)
	})
}

func TestNewPagination(t *testing.T) {
	q := BookingListQuery{Page: 1, PageSize: 20}
	assert.Equal(t, Pagination{Page: 1, PageSize: 20}, NewPagination(q, 0))
	assert.Equal(t, 3, NewPagination(q, 41).TotalPages)
	assert.Equal(t, 2, NewPagination(q, 40).TotalPages)
}
