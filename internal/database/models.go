package database

import (
	"encoding/json"
	"time"
)

// YearRecord is one cached row of the hebrew_years table.
type YearRecord struct {
	Year                int           `json:"year" yaml:"year"`
	Leap                bool          `json:"leap" yaml:"leap"`
	Days                int           `json:"days" yaml:"days"`
	Kviah               string        `json:"kviah" yaml:"kviah"`
	RoshHashanaAbsolute int           `json:"rosh_hashana_absolute" yaml:"rosh_hashana_absolute"`
	RoshHashanaDate     string        `json:"rosh_hashana_date" yaml:"rosh_hashana_date"` // YYYY-MM-DD
	Months              []MonthRecord `json:"months" yaml:"months"`
	CreatedAt           time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" yaml:"updated_at"`
}

// MonthRecord is one month of a cached year, stored inside the months column.
type MonthRecord struct {
	Month    int    `json:"month" yaml:"month"` // Nissan = 1 ... Adar II = 13
	Name     string `json:"name" yaml:"name"`
	Days     int    `json:"days" yaml:"days"`
	FirstDay string `json:"first_day" yaml:"first_day"` // YYYY-MM-DD
}

// YearStats summarizes the contents of the year table.
type YearStats struct {
	Count     int `json:"count" yaml:"count"`
	FirstYear int `json:"first_year,omitempty" yaml:"first_year,omitempty"`
	LastYear  int `json:"last_year,omitempty" yaml:"last_year,omitempty"`
	LeapYears int `json:"leap_years" yaml:"leap_years"`
}

// MarshalMonths converts months to the JSON stored in the months column.
func MarshalMonths(months []MonthRecord) (string, error) {
	if months == nil {
		return "[]", nil
	}
	data, err := json.Marshal(months)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UnmarshalMonths parses the months column.
func UnmarshalMonths(data string) ([]MonthRecord, error) {
	if data == "" {
		return []MonthRecord{}, nil
	}
	var months []MonthRecord
	if err := json.Unmarshal([]byte(data), &months); err != nil {
		return nil, err
	}
	return months, nil
}
