package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/appointment"
	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/timezone"
)

type CalendarHandler struct {
	tz string
}

func NewCalendarHandler(tz string) *CalendarHandler {
	return &CalendarHandler{tz: tz}
}

// Month returns the grid the booking screen renders: week rows with leading
// blanks, which days are disabled, and the selectable hours. Defaults to the
// current month in the shop's timezone.
func (h *CalendarHandler) Month(c *gin.Context) {
	now := timezone.NowIn(h.tz)

	year := now.Year()
	month := now.Month()

	if q := c.Query("year"); q != "" {
		y, err := strconv.Atoi(q)
		if err != nil {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		year = y
	}
	if q := c.Query("month"); q != "" {
		m, err := strconv.Atoi(q)
		if err != nil || m < 1 || m > 12 {
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
			return
		}
		month = time.Month(m)
	}

	grid := domain.BuildMonthGrid(year, month)

	disabled := []int{}
	for _, week := range grid.Weeks {
		for _, day := range week {
			if day == 0 {
				continue
			}
			if domain.DayDisabled(year, month, day, now) {
				disabled = append(disabled, day)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"calendar":      grid,
		"disabled_days": disabled,
		"hours":         domain.BookingHours,
	})
}
