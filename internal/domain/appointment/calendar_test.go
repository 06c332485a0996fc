package appointment

import (
	"testing"
	"time"
)

func TestBuildMonthGridFebruary2021(t *testing.T) {
	// February 2021 starts on a Monday: one leading blank, 28 days,
	// 29 cells, so the fifth row holds a single cell.
	grid := BuildMonthGrid(2021, time.February)

	if len(grid.Weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(grid.Weeks))
	}

	first := grid.Weeks[0]
	if first[0] != 0 {
		t.Errorf("expected leading blank, got %d", first[0])
	}
	if first[1] != 1 {
		t.Errorf("expected day 1 in the Monday column, got %d", first[1])
	}

	last := grid.Weeks[len(grid.Weeks)-1]
	if len(last) != 1 {
		t.Errorf("expected last row of length 1, got %d", len(last))
	}
	if last[0] != 28 {
		t.Errorf("expected 28 in last cell, got %d", last[0])
	}

	total := 0
	for _, week := range grid.Weeks {
		total += len(week)
	}
	if total != 29 {
		t.Errorf("expected 29 cells (1 blank + 28 days), got %d", total)
	}
}

func TestBuildMonthGridCellSequence(t *testing.T) {
	// June 2024 starts on a Saturday: six leading blanks.
	grid := BuildMonthGrid(2024, time.June)

	day := 0
	seenBlanks := 0
	for _, week := range grid.Weeks {
		if len(week) > 7 {
			t.Fatalf("week longer than 7 cells: %v", week)
		}
		for _, cell := range week {
			if cell == 0 {
				if day != 0 {
					t.Fatalf("blank after day %d", day)
				}
				seenBlanks++
				continue
			}
			day++
			if cell != day {
				t.Fatalf("expected day %d, got %d", day, cell)
			}
		}
	}

	if seenBlanks != 6 {
		t.Errorf("expected 6 leading blanks, got %d", seenBlanks)
	}
	if day != 30 {
		t.Errorf("expected 30 days, got %d", day)
	}
}

func TestDaysInMonthLeapYear(t *testing.T) {
	if got := daysInMonth(2024, time.February); got != 29 {
		t.Errorf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := daysInMonth(2023, time.February); got != 28 {
		t.Errorf("expected 28 days in Feb 2023, got %d", got)
	}
}

func TestDayDisabled(t *testing.T) {
	// Time of day must not matter: late on the 15th, the 15th stays open.
	today := time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)

	if !DayDisabled(2024, time.June, 14, today) {
		t.Error("yesterday should be disabled")
	}
	if DayDisabled(2024, time.June, 15, today) {
		t.Error("today should not be disabled")
	}
	if DayDisabled(2024, time.June, 16, today) {
		t.Error("tomorrow should not be disabled")
	}
	if !DayDisabled(2024, time.May, 31, today) {
		t.Error("last month should be disabled")
	}
	if DayDisabled(2024, time.July, 1, today) {
		t.Error("next month should not be disabled")
	}
}

func TestMonthNavigationRollsYear(t *testing.T) {
	y, m := NextMonth(2024, time.December)
	if y != 2025 || m != time.January {
		t.Errorf("expected 2025 January, got %d %v", y, m)
	}

	y, m = PrevMonth(2025, time.January)
	if y != 2024 || m != time.December {
		t.Errorf("expected 2024 December, got %d %v", y, m)
	}

	y, m = NextMonth(2024, time.June)
	if y != 2024 || m != time.July {
		t.Errorf("expected 2024 July, got %d %v", y, m)
	}
}
