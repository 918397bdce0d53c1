package dto

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/park-booking-service/internal/model"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 10000
)

var bookingStatuses = map[string]bool{
	model.BookingStatusPending:   true,
	model.BookingStatusConfirmed: true,
	model.BookingStatusCancelled: true,
}

// BookingListQuery is the parsed query string of GET /bookings.
type BookingListQuery struct {
	Status   string
	Page     int
	PageSize int
}

func (q BookingListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ParseBookingListQuery reads status, page and page_size. Out of range paging
// values are clamped; an unknown status is an error.
func ParseBookingListQuery(c *gin.Context) (BookingListQuery, error) {
	q := BookingListQuery{
		Status:   c.Query("status"),
		Page:     atoiOr(c.Query("page"), 1),
		PageSize: atoiOr(c.Query("page_size"), defaultPageSize),
	}
	if q.Status != "" && !bookingStatuses[q.Status] {
		return BookingListQuery{}, fmt.Errorf("invalid status filter '%s'", q.Status)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > maxPage {
		q.Page = maxPage
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q, nil
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func NewPagination(q BookingListQuery, totalItems int) Pagination {
	return Pagination{
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalItems: totalItems,
		TotalPages: (totalItems + q.PageSize - 1) / q.PageSize,
	}
}
