package handlers

import (
	"time"

	"github.com/pkg/errors"

	"github.com/jjc6676/holiday-optimizer/internal/engine"
)

// HolidayRequest is one public holiday entry in an optimize request body.
type HolidayRequest struct {
	Date string `json:"date" binding:"required,daterange"`
	Name string `json:"name"`
}

// CompanyDayOffRequest is one company-provided day off, either a single date
// or a recurring weekday rule, discriminated by IsRecurring.
type CompanyDayOffRequest struct {
	IsRecurring bool   `json:"is_recurring"`
	Date        string `json:"date,omitempty" binding:"required_without=IsRecurring,omitempty,daterange"`
	Weekday     *int   `json:"weekday,omitempty" binding:"omitempty,min=0,max=6"`
	StartDate   string `json:"start_date,omitempty" binding:"omitempty,daterange"`
	EndDate     string `json:"end_date,omitempty" binding:"omitempty,daterange"`
	Name        string `json:"name"`
}

// OptimizeRequest is the POST /api/v1/optimize request body.
type OptimizeRequest struct {
	NumberOfDays   int                    `json:"number_of_days" binding:"min=0"`
	Strategy       string                 `json:"strategy" binding:"required,oneof=balanced longWeekends miniBreaks weekLongBreaks extendedVacations"`
	Year           int                    `json:"year,omitempty" binding:"omitempty,min=1900,max=3000"`
	Holidays       []HolidayRequest       `json:"holidays,omitempty"`
	CompanyDaysOff []CompanyDayOffRequest `json:"company_days_off,omitempty"`
}

// toParams converts a validated request body into engine.OptimizeParams,
// parsing every date string as YYYY-MM-DD. The first parse failure aborts
// conversion — engine.Optimize itself performs no date validation (the
// engine always returns a result, per its error-handling design), so this is
// the one place malformed dates are caught.
func (r OptimizeRequest) toParams(today time.Time) (engine.OptimizeParams, error) {
	holidays := make([]engine.Holiday, 0, len(r.Holidays))
	for _, h := range r.Holidays {
		d, err := parseDate(h.Date)
		if err != nil {
			return engine.OptimizeParams{}, errors.Wrapf(err, "holiday date %q", h.Date)
		}
		holidays = append(holidays, engine.Holiday{Date: d, Name: h.Name})
	}

	companyDaysOff := make([]engine.CompanyOffRule, 0, len(r.CompanyDaysOff))
	for _, c := range r.CompanyDaysOff {
		rule, err := c.toRule()
		if err != nil {
			return engine.OptimizeParams{}, err
		}
		companyDaysOff = append(companyDaysOff, rule)
	}

	return engine.OptimizeParams{
		NumberOfDays:   r.NumberOfDays,
		Strategy:       engine.Style(r.Strategy),
		Year:           r.Year,
		Holidays:       holidays,
		CompanyDaysOff: companyDaysOff,
		Today:          today,
	}, nil
}

func (c CompanyDayOffRequest) toRule() (engine.CompanyOffRule, error) {
	if !c.IsRecurring {
		d, err := parseDate(c.Date)
		if err != nil {
			return engine.CompanyOffRule{}, errors.Wrapf(err, "company day off date %q", c.Date)
		}
		return engine.CompanyOffRule{Date: d, Name: c.Name}, nil
	}

	if c.Weekday == nil {
		return engine.CompanyOffRule{}, errors.New("recurring company day off requires weekday")
	}
	start, err := parseDate(c.StartDate)
	if err != nil {
		return engine.CompanyOffRule{}, errors.Wrapf(err, "company day off start_date %q", c.StartDate)
	}
	end, err := parseDate(c.EndDate)
	if err != nil {
		return engine.CompanyOffRule{}, errors.Wrapf(err, "company day off end_date %q", c.EndDate)
	}
	return engine.CompanyOffRule{
		IsRecurring: true,
		Weekday:     time.Weekday(*c.Weekday),
		StartDate:   start,
		EndDate:     end,
		Name:        c.Name,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DayResponse mirrors engine.Day for JSON output.
type DayResponse struct {
	Date            string `json:"date"`
	IsWeekend       bool   `json:"is_weekend"`
	IsPublicHoliday bool   `json:"is_public_holiday"`
	HolidayName     string `json:"holiday_name,omitempty"`
	IsCompanyOff    bool   `json:"is_company_off"`
	CompanyName     string `json:"company_name,omitempty"`
	IsCTO           bool   `json:"is_cto"`
	InBreak         bool   `json:"in_break"`
}

// BreakResponse mirrors engine.Break for JSON output.
type BreakResponse struct {
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	Days           []DayResponse `json:"days"`
	TotalDays      int           `json:"total_days"`
	CTODays        int           `json:"cto_days"`
	PublicHolidays int           `json:"public_holidays"`
	Weekends       int           `json:"weekends"`
	CompanyDaysOff int           `json:"company_days_off"`
}

// StatsResponse mirrors engine.Stats for JSON output.
type StatsResponse struct {
	TotalCTODays          int `json:"total_cto_days"`
	TotalPublicHolidays   int `json:"total_public_holidays"`
	TotalWeekends         int `json:"total_weekends"`
	TotalCompanyDaysOff   int `json:"total_company_days_off"`
	TotalDaysOff          int `json:"total_days_off"`
	TotalExtendedWeekends int `json:"total_extended_weekends"`
}

// OptimizeResponse is the POST /api/v1/optimize response body.
type OptimizeResponse struct {
	Days   []DayResponse   `json:"days"`
	Breaks []BreakResponse `json:"breaks"`
	Stats  StatsResponse   `json:"stats"`
}

func toResponse(result engine.OptimizeResult) OptimizeResponse {
	days := make([]DayResponse, 0, len(result.Days))
	for _, d := range result.Days {
		days = append(days, dayToResponse(d))
	}

	breaks := make([]BreakResponse, 0, len(result.Breaks))
	for _, b := range result.Breaks {
		breakDays := make([]DayResponse, 0, len(b.Days))
		for _, d := range b.Days {
			breakDays = append(breakDays, dayToResponse(d))
		}
		breaks = append(breaks, BreakResponse{
			StartDate:      b.StartDate.Format("2006-01-02"),
			EndDate:        b.EndDate.Format("2006-01-02"),
			Days:           breakDays,
			TotalDays:      b.TotalDays,
			CTODays:        b.CTODays,
			PublicHolidays: b.PublicHolidays,
			Weekends:       b.Weekends,
			CompanyDaysOff: b.CompanyDaysOff,
		})
	}

	return OptimizeResponse{
		Days:   days,
		Breaks: breaks,
		Stats: StatsResponse{
			TotalCTODays:          result.Stats.TotalCTODays,
			TotalPublicHolidays:   result.Stats.TotalPublicHolidays,
			TotalWeekends:         result.Stats.TotalWeekends,
			TotalCompanyDaysOff:   result.Stats.TotalCompanyDaysOff,
			TotalDaysOff:          result.Stats.TotalDaysOff,
			TotalExtendedWeekends: result.Stats.TotalExtendedWeekends,
		},
	}
}

func dayToResponse(d engine.Day) DayResponse {
	return DayResponse{
		Date:            d.DateString(),
		IsWeekend:       d.IsWeekend,
		IsPublicHoliday: d.IsPublicHoliday,
		HolidayName:     d.HolidayName,
		IsCompanyOff:    d.IsCompanyOff,
		CompanyName:     d.CompanyName,
		IsCTO:           d.IsCTO,
		InBreak:         d.InBreak,
	}
}
