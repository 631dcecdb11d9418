package app

import (
	"fmt"
	"time"

	"fitdiary/internal/domain"
)

// WeekdayHeaders are the Sunday-first column headings of the month view.
var WeekdayHeaders = []string{"日", "一", "二", "三", "四", "五", "六"}

// CalendarCell is one cell of the month view. Padding cells have Day 0 and
// no date.
type CalendarCell struct {
	Day         int    `json:"day"`
	Date        string `json:"date,omitempty"`
	IsToday     bool   `json:"isToday"`
	IsSelected  bool   `json:"isSelected"`
	HasDiary    bool   `json:"hasDiary"`
	GoalMet     bool   `json:"goalMet"`
	HasTraining bool   `json:"hasTraining"`
}

// MonthRef identifies a month for navigation.
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthView is the decorated month grid.
type MonthView struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Title    string            `json:"title"`
	Weekdays []string          `json:"weekdays"`
	Cells    []CalendarCell    `json:"cells"`
	Prev     MonthRef          `json:"prev"`
	Next     MonthRef          `json:"next"`
	Selected string            `json:"selected"`
	Entry    domain.DiaryEntry `json:"entry"`
}

// CalendarService builds the calendar tab.
type CalendarService struct {
	diary    *Record[domain.Diary]
	training *Record[domain.TrainingLogs]
	clock    domain.Clock
}

// NewCalendarService creates a CalendarService.
func NewCalendarService(diary *Record[domain.Diary], training *Record[domain.TrainingLogs], clock domain.Clock) *CalendarService {
	return &CalendarService{diary: diary, training: training, clock: clock}
}

// Month returns the view for year/month with selected highlighted. A zero
// year or month means the current one; an empty selected means today.
// Months outside 1..12 are normalized into the neighbouring year.
func (s *CalendarService) Month(year, month int, selected string) (MonthView, error) {
	now := s.clock.Time()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	y, m := domain.ShiftMonth(year, time.January, month-1)

	today := s.clock.Today()
	if selected == "" {
		selected = today
	}
	if !domain.ValidDate(selected) {
		return MonthView{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, selected)
	}

	diary := s.diary.Get()
	logs := s.training.Get()

	grid := domain.MonthGrid(y, m)
	cells := make([]CalendarCell, len(grid))
	for i, day := range grid {
		if day == 0 {
			continue
		}
		date := domain.DateKey(y, m, day)
		entry, hasDiary := diary[date]
		log, hasTraining := logs[date]
		cells[i] = CalendarCell{
			Day:         day,
			Date:        date,
			IsToday:     date == today,
			IsSelected:  date == selected,
			HasDiary:    hasDiary && !entry.IsZero(),
			GoalMet:     hasDiary && entry.GoalMet,
			HasTraining: hasTraining && len(log.Exercises) > 0,
		}
	}

	py, pm := domain.ShiftMonth(y, m, -1)
	ny, nm := domain.ShiftMonth(y, m, 1)
	return MonthView{
		Year:     y,
		Month:    int(m),
		Title:    MonthTitle(y, m),
		Weekdays: WeekdayHeaders,
		Cells:    cells,
		Prev:     MonthRef{Year: py, Month: int(pm)},
		Next:     MonthRef{Year: ny, Month: int(nm)},
		Selected: selected,
		Entry:    diary[selected],
	}, nil
}

// MonthTitle formats the month the way zh-HK long dates do, e.g. 2026年10月.
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%d年%d月", year, int(month))
}
