package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/zapponejosh/luach-api/internal/calendar"
	"github.com/zapponejosh/luach-api/internal/config"
	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/logger"
	"github.com/zapponejosh/luach-api/internal/years"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	years  *years.Resolver
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		years:  years.NewResolver(db, log),
		cfg:    cfg,
		logger: log,
		now:    time.Now,
	}
}

// =============================================================================
// Response Types
// =============================================================================

// DateResponse describes one day on both calendars.
type DateResponse struct {
	Gregorian   calendar.GregorianDate `json:"gregorian"`
	Hebrew      calendar.HebrewDate    `json:"hebrew"`
	HebrewText  string                 `json:"hebrew_text"`
	Absolute    int                    `json:"absolute"`
	Weekday     string                 `json:"weekday"`
	RoshChodesh bool                   `json:"rosh_chodesh"`
	Omer        int                    `json:"omer,omitempty"`

	Holiday         string `json:"holiday,omitempty"`
	YomTov          bool   `json:"yom_tov"`
	CholHamoed      bool   `json:"chol_hamoed"`
	ErevYomTov      bool   `json:"erev_yom_tov"`
	Taanis          bool   `json:"taanis"`
	ErevRoshChodesh bool   `json:"erev_rosh_chodesh"`
	Chanukah        int    `json:"chanukah,omitempty"`
}

// TodayResponse is today's date together with the year it falls in.
type TodayResponse struct {
	DateResponse
	Year *database.YearRecord `json:"year,omitempty"`
}

// MonthResponse describes one month of a Hebrew year.
type MonthResponse struct {
	Year     int                    `json:"year"`
	Month    calendar.HebrewMonth   `json:"month"`
	Name     string                 `json:"name"`
	Days     int                    `json:"days"`
	FirstDay calendar.GregorianDate `json:"first_day"`
	LastDay  calendar.GregorianDate `json:"last_day"`
	Weekday  string                 `json:"weekday"`
}

// RangeResponse lists consecutive days.
type RangeResponse struct {
	Start string         `json:"start"`
	End   string         `json:"end"`
	Days  []DateResponse `json:"days"`
}

func newDateResponse(abs int, opts calendar.HolidayOptions) (DateResponse, error) {
	g, err := calendar.AbsoluteToGregorian(abs)
	if err != nil {
		return DateResponse{}, err
	}
	h, err := calendar.AbsoluteToHebrew(abs)
	if err != nil {
		return DateResponse{}, err
	}

	return DateResponse{
		Gregorian:   g,
		Hebrew:      h,
		HebrewText:  h.String(),
		Absolute:    abs,
		Weekday:     calendar.Weekday(abs).String(),
		RoshChodesh: h.IsRoshChodesh(),
		Omer:        h.DayOfOmer(),

		Holiday:         h.Holiday(opts).String(),
		YomTov:          h.IsYomTov(opts),
		CholHamoed:      h.IsCholHamoed(opts),
		ErevYomTov:      h.IsErevYomTov(),
		Taanis:          h.IsTaanis(),
		ErevRoshChodesh: h.IsErevRoshChodesh(),
		Chanukah:        h.DayOfChanukah(),
	}, nil
}

// holidayOptions reads the holiday scheme from the israel and modern query
// parameters. Anything other than a true value leaves a flag off.
func holidayOptions(r *http.Request) calendar.HolidayOptions {
	q := r.URL.Query()
	israel, _ := strconv.ParseBool(q.Get("israel"))
	modern, _ := strconv.ParseBool(q.Get("modern"))
	return calendar.HolidayOptions{Israel: israel, Modern: modern}
}

// =============================================================================
// Handlers
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	abs := calendar.GregorianFromTime(h.now()).Absolute()
	date, err := newDateResponse(abs, holidayOptions(r))
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	resp := TodayResponse{DateResponse: date}

	// The year summary is optional; a storage failure still returns the date
	rec, err := h.years.Containing(ctx, abs)
	if err != nil {
		h.log(r).Warn("failed to resolve current year", slog.Any("error", err))
	} else {
		resp.Year = rec
	}

	WriteSuccess(w, resp)
}

// ConvertGregorian handles GET /api/v1/convert/gregorian/{date}
func (h *Handlers) ConvertGregorian(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	abs, err := parseGregorian(dateStr)
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	date, err := newDateResponse(abs, holidayOptions(r))
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	WriteSuccess(w, date)
}

// ConvertHebrew handles GET /api/v1/convert/hebrew/{year}/{month}/{day}
//
// The month may be a number (Nissan = 1) or a name such as "kislev" or "adar-ii".
func (h *Handlers) ConvertHebrew(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Year must be an integer", CodeInvalidYear)
		return
	}

	month, err := calendar.ParseHebrewMonth(chi.URLParam(r, "month"))
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Day must be an integer", CodeInvalidDay)
		return
	}

	hd, err := calendar.NewHebrewDate(year, month, day)
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	date, err := newDateResponse(hd.Absolute(), holidayOptions(r))
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	WriteSuccess(w, date)
}

// ConvertAbsolute handles GET /api/v1/convert/absolute/{day}
func (h *Handlers) ConvertAbsolute(w http.ResponseWriter, r *http.Request) {
	abs, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		WriteBadRequest(w, "Absolute day must be an integer")
		return
	}

	date, err := newDateResponse(abs, holidayOptions(r))
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	WriteSuccess(w, date)
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// rangeQuery holds the query parameters of the range endpoint.
type rangeQuery struct {
	Start string
	End   string
}

func (q rangeQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Start, validation.Required, validation.Match(isoDate).Error("must be YYYY-MM-DD")),
		validation.Field(&q.End, validation.Required, validation.Match(isoDate).Error("must be YYYY-MM-DD")),
	)
}

// ConvertRange handles GET /api/v1/convert/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) ConvertRange(w http.ResponseWriter, r *http.Request) {
	q := rangeQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}
	if err := q.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
		return
	}

	start, err := parseGregorian(q.Start)
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}
	end, err := parseGregorian(q.End)
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	if start > end {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if end-start+1 > h.cfg.MaxRangeDays {
		WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays),
			"RANGE_TOO_LARGE")
		return
	}

	opts := holidayOptions(r)
	days := make([]DateResponse, 0, end-start+1)
	for abs := start; abs <= end; abs++ {
		date, err := newDateResponse(abs, opts)
		if err != nil {
			h.writeDateError(w, r, err)
			return
		}
		days = append(days, date)
	}

	WriteSuccess(w, RangeResponse{
		Start: q.Start,
		End:   q.End,
		Days:  days,
	})
}

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Year must be an integer", CodeInvalidYear)
		return
	}

	rec, err := h.years.Get(r.Context(), year)
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	WriteSuccess(w, rec)
}

// GetMonth handles GET /api/v1/years/{year}/months/{month}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Year must be an integer", CodeInvalidYear)
		return
	}

	month, err := calendar.ParseHebrewMonth(chi.URLParam(r, "month"))
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	summary, err := calendar.SummarizeMonth(year, month)
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	last, err := calendar.AbsoluteToGregorian(summary.FirstDay.Absolute() + summary.Days - 1)
	if err != nil {
		h.writeDateError(w, r, err)
		return
	}

	WriteSuccess(w, MonthResponse{
		Year:     year,
		Month:    summary.Month,
		Name:     summary.Name,
		Days:     summary.Days,
		FirstDay: summary.FirstDay,
		LastDay:  last,
		Weekday:  summary.Weekday.String(),
	})
}

// =============================================================================
// Admin Handlers
// =============================================================================

// seedRequest is the body of POST /api/v1/admin/years/seed.
type seedRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (s seedRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.From, validation.Required, validation.Min(1)),
		validation.Field(&s.To, validation.Required,
			validation.Min(s.From),
			validation.Max(s.From+years.MaxSeedSpan-1),
		),
	)
}

// SeedYears handles POST /api/v1/admin/years/seed
func (h *Handlers) SeedYears(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req seedRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
		return
	}

	count, err := h.years.Seed(ctx, req.From, req.To)
	if err != nil {
		if errors.Is(err, years.ErrInvalidRange) {
			WriteBadRequest(w, err.Error())
			return
		}
		h.writeDateError(w, r, err)
		return
	}

	stats, err := h.db.GetYearStats(ctx)
	if err != nil {
		h.log(r).Error("failed to get year stats", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve year statistics")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"from":   req.From,
		"to":     req.To,
		"seeded": count,
		"stats":  stats,
	})
}

// GetYearStats handles GET /api/v1/admin/years/stats
func (h *Handlers) GetYearStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetYearStats(r.Context())
	if err != nil {
		h.log(r).Error("failed to get year stats", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve year statistics")
		return
	}

	WriteSuccess(w, stats)
}

// DeleteYear handles DELETE /api/v1/admin/years/{year}
func (h *Handlers) DeleteYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Year must be an integer", CodeInvalidYear)
		return
	}

	if err := h.db.DeleteYear(r.Context(), year); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("Year %d is not stored", year))
			return
		}
		h.log(r).Error("failed to delete year", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Failed to delete year")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Year deleted"})
}

// =============================================================================
// Helpers
// =============================================================================

// writeDateError answers 400 for rejected calendar dates and 500 otherwise.
func (h *Handlers) writeDateError(w http.ResponseWriter, r *http.Request, err error) {
	if code := dateErrorCode(err); code != "" {
		WriteError(w, http.StatusBadRequest, err.Error(), code)
		return
	}
	if errors.Is(err, errBadDateFormat) {
		WriteBadRequest(w, err.Error())
		return
	}

	h.log(r).Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	WriteInternalError(w, "Internal server error")
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

var errBadDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

// parseGregorian parses YYYY-MM-DD into an absolute day. Field values are not
// range-checked here so that calendar validation reports which one is wrong.
func parseGregorian(s string) (int, error) {
	if !isoDate.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", errBadDateFormat, s)
	}

	parts := strings.Split(s, "-")
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	return calendar.GregorianToAbsolute(year, time.Month(month), day)
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
