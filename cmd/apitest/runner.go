package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type DateResponse struct {
	Gregorian struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	} `json:"gregorian"`
	HebrewText string `json:"hebrew_text"`
	Absolute   int    `json:"absolute"`
	Weekday    string `json:"weekday"`
	Holiday    string `json:"holiday"`
	Chanukah   int    `json:"chanukah"`
}

func (d DateResponse) GregorianString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Gregorian.Year, d.Gregorian.Month, d.Gregorian.Day)
}

type YearResponse struct {
	Year            int    `json:"year"`
	Leap            bool   `json:"leap"`
	Days            int    `json:"days"`
	Kviah           string `json:"kviah"`
	RoshHashanaDate string `json:"rosh_hashana_date"`
}

type RangeResponse struct {
	Days []DateResponse `json:"days"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	out          io.Writer
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool, out io.Writer) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
		out:     out,
	}
}

// Failed returns the number of failed checks.
func (tr *TestRunner) Failed() int {
	return tr.errorCount
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Luach API Checks")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testToday()
	tr.testGregorianToHebrew()
	tr.testHebrewToGregorian()
	tr.testHolidays()
	tr.testYears()
	tr.testRange()
	tr.testRejectedDates()
	if tr.apiKey != "" {
		tr.testAdmin()
	}

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	var today DateResponse
	if err := tr.getData("/api/v1/today", &today); err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	// Round trip today's absolute day back through the API
	var back DateResponse
	if err := tr.getData(fmt.Sprintf("/api/v1/convert/absolute/%d", today.Absolute), &back); err != nil {
		tr.recordError("Today", err.Error())
		return
	}
	if back.HebrewText != today.HebrewText {
		tr.recordError("Today", fmt.Sprintf("absolute %d gives %q, today says %q",
			today.Absolute, back.HebrewText, today.HebrewText))
		return
	}

	tr.recordSuccess(fmt.Sprintf("Today: %s = %s (%s)", today.GregorianString(), today.HebrewText, today.Weekday))
}

func (tr *TestRunner) testGregorianToHebrew() {
	tr.printSection("Gregorian to Hebrew")

	testCases := []struct {
		date     string
		hebrew   string
		absolute int
	}{
		{"0001-01-01", "18 Teves 3761", 1},
		{"2017-11-27", "9 Kislev 5778", 736660},
		{"2017-09-21", "1 Tishrei 5778", 736593},
		{"2023-09-16", "1 Tishrei 5784", 0},
		{"2024-10-03", "1 Tishrei 5785", 0},
		{"2025-09-23", "1 Tishrei 5786", 0},
	}

	for _, tc := range testCases {
		var date DateResponse
		if err := tr.getData("/api/v1/convert/gregorian/"+tc.date, &date); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		switch {
		case date.HebrewText != tc.hebrew:
			tr.recordError(tc.date, fmt.Sprintf("Expected %q, got %q", tc.hebrew, date.HebrewText))
		case tc.absolute != 0 && date.Absolute != tc.absolute:
			tr.recordError(tc.date, fmt.Sprintf("Expected absolute day %d, got %d", tc.absolute, date.Absolute))
		default:
			tr.recordSuccess(fmt.Sprintf("%s = %s", tc.date, date.HebrewText))
		}

		if tr.verbose {
			fmt.Fprintf(tr.out, "    absolute %d, %s\n", date.Absolute, date.Weekday)
		}
	}
}

func (tr *TestRunner) testHolidays() {
	tr.printSection("Holidays")

	testCases := []struct {
		path     string
		holiday  string
		chanukah int
	}{
		{"/api/v1/convert/gregorian/2024-10-12", "Yom Kippur", 0},
		{"/api/v1/convert/hebrew/5784/teves/3", "Chanukah", 8},
		{"/api/v1/convert/hebrew/5778/teves/3", "", 0},
		{"/api/v1/convert/hebrew/5778/tamuz/18", "Seventeenth of Tamuz", 0},
		{"/api/v1/convert/hebrew/5779/adar/14", "Purim Katan", 0},
		{"/api/v1/convert/hebrew/5779/adar-ii/14", "Purim", 0},
		{"/api/v1/convert/hebrew/5778/nissan/22?israel=true", "", 0},
	}

	for _, tc := range testCases {
		var date DateResponse
		if err := tr.getData(tc.path, &date); err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}

		switch {
		case date.Holiday != tc.holiday:
			tr.recordError(tc.path, fmt.Sprintf("Expected holiday %q, got %q", tc.holiday, date.Holiday))
		case date.Chanukah != tc.chanukah:
			tr.recordError(tc.path, fmt.Sprintf("Expected Chanukah day %d, got %d", tc.chanukah, date.Chanukah))
		default:
			tr.recordSuccess(fmt.Sprintf("%s: %q", date.HebrewText, date.Holiday))
		}
	}
}

func (tr *TestRunner) testHebrewToGregorian() {
	tr.printSection("Hebrew to Gregorian")

	testCases := []struct {
		path string
		want string
	}{
		{"5778/kislev/10", "2017-11-28"},
		{"5778/9/10", "2017-11-28"},
		{"5779/tishrei/1", "2018-09-10"},
		{"5780/7/1", "2019-09-30"},
	}

	for _, tc := range testCases {
		var date DateResponse
		if err := tr.getData("/api/v1/convert/hebrew/"+tc.path, &date); err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}

		if got := date.GregorianString(); got != tc.want {
			tr.recordError(tc.path, fmt.Sprintf("Expected %s, got %s", tc.want, got))
		} else {
			tr.recordSuccess(fmt.Sprintf("%s = %s", date.HebrewText, got))
		}
	}
}

func (tr *TestRunner) testYears() {
	tr.printSection("Year Structure")

	testCases := []struct {
		year  int
		leap  bool
		days  int
		kviah string
	}{
		{5778, false, 354, "kesidran"},
		{5779, true, 385, "shelaimim"},
		{5784, true, 383, "chaseirim"},
		{5785, false, 355, "shelaimim"},
	}

	for _, tc := range testCases {
		var year YearResponse
		name := fmt.Sprintf("Year %d", tc.year)
		if err := tr.getData(fmt.Sprintf("/api/v1/years/%d", tc.year), &year); err != nil {
			tr.recordError(name, err.Error())
			continue
		}

		if year.Leap != tc.leap || year.Days != tc.days || year.Kviah != tc.kviah {
			tr.recordError(name, fmt.Sprintf("Expected leap=%v %d days %s, got leap=%v %d days %s",
				tc.leap, tc.days, tc.kviah, year.Leap, year.Days, year.Kviah))
		} else {
			tr.recordSuccess(fmt.Sprintf("%s: %d days, %s, starts %s", name, year.Days, year.Kviah, year.RoshHashanaDate))
		}
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Date Range")

	var week RangeResponse
	if err := tr.getData("/api/v1/convert/range?start=2017-11-27&end=2017-12-03", &week); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	if len(week.Days) == 7 {
		tr.recordSuccess(fmt.Sprintf("Week range returned %d days", len(week.Days)))
	} else {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days, got %d", len(week.Days)))
	}

	tr.expectStatus("Reversed range", "/api/v1/convert/range?start=2017-12-03&end=2017-11-27", http.StatusBadRequest, "BAD_REQUEST")
	tr.expectStatus("Missing end", "/api/v1/convert/range?start=2017-11-27", http.StatusBadRequest, "VALIDATION_FAILED")
}

func (tr *TestRunner) testRejectedDates() {
	tr.printSection("Rejected Dates")

	tr.expectStatus("Adar II in a common year", "/api/v1/convert/hebrew/5777/13/1", http.StatusBadRequest, "INVALID_MONTH")
	tr.expectStatus("30 Kislev in a short year", "/api/v1/convert/hebrew/5784/kislev/30", http.StatusBadRequest, "INVALID_DAY")
	tr.expectStatus("February 30", "/api/v1/convert/gregorian/2017-02-30", http.StatusBadRequest, "INVALID_DAY")
	tr.expectStatus("Year zero", "/api/v1/years/0", http.StatusBadRequest, "INVALID_YEAR")
	tr.expectStatus("Before day one", "/api/v1/convert/absolute/0", http.StatusBadRequest, "OUT_OF_RANGE")
	tr.expectStatus("Bad format", "/api/v1/convert/gregorian/2017/11/27", http.StatusNotFound, "NOT_FOUND")
}

func (tr *TestRunner) testAdmin() {
	tr.printSection("Admin")

	body, _ := json.Marshal(map[string]int{"from": 5776, "to": 5785})
	req, _ := http.NewRequest("POST", tr.baseURL+"/api/v1/admin/years/seed", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", tr.apiKey)

	var seeded struct {
		Seeded int `json:"seeded"`
	}
	if err := tr.doData(req, &seeded); err != nil {
		tr.recordError("Seed", err.Error())
		return
	}

	if seeded.Seeded == 10 {
		tr.recordSuccess("Seeded 5776-5785")
	} else {
		tr.recordError("Seed", fmt.Sprintf("Expected 10 years, got %d", seeded.Seeded))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

// getData fetches path and decodes the data of a successful envelope.
func (tr *TestRunner) getData(path string, target interface{}) error {
	req, err := http.NewRequest("GET", tr.baseURL+path, nil)
	if err != nil {
		return err
	}
	return tr.doData(req, target)
}

func (tr *TestRunner) doData(req *http.Request, target interface{}) error {
	apiResp, _, err := tr.do(req)
	if err != nil {
		return err
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}

	if err := json.Unmarshal(apiResp.Data, target); err != nil {
		return fmt.Errorf("parse data: %w", err)
	}
	return nil
}

func (tr *TestRunner) do(req *http.Request) (*APIResponse, int, error) {
	resp, err := tr.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("parse error: %w", err)
	}

	return &apiResp, resp.StatusCode, nil
}

// expectStatus checks that path fails with the given status and error code.
func (tr *TestRunner) expectStatus(name, path string, status int, code string) {
	req, err := http.NewRequest("GET", tr.baseURL+path, nil)
	if err != nil {
		tr.recordError(name, err.Error())
		return
	}

	apiResp, got, err := tr.do(req)
	if err != nil {
		tr.recordError(name, err.Error())
		return
	}

	gotCode := ""
	if apiResp.Error != nil {
		gotCode = apiResp.Error.Code
	}

	if got == status && gotCode == code {
		tr.recordSuccess(fmt.Sprintf("%s rejected with %s", name, code))
	} else {
		tr.recordError(name, fmt.Sprintf("Expected HTTP %d %s, got HTTP %d %s", status, code, got, gotCode))
	}
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintln(tr.out)
	fmt.Fprintf(tr.out, "--- %s ---\n", name)
	fmt.Fprintln(tr.out)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Summary")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)
	fmt.Fprintln(tr.out)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "Failures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		fmt.Fprintln(tr.out)
		fmt.Fprintf(tr.out, "Checks completed with %d failure(s)\n", tr.errorCount)
		return
	}

	fmt.Fprintln(tr.out, "All checks passed! ✓")
}
