package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
var migrationsSQL = map[int]string{
	1: migrationV1HebrewYears,
	2: migrationV2RoshHashanaIndex,
}

// migrationV1HebrewYears creates the year table.
//
// Each row caches the structure of one Hebrew year: whether it is leap, its
// length, its kviah and where Rosh Hashana falls on both axes. The months
// column holds a JSON array of {month, name, days, first_day} objects in
// calendar order starting at Tishrei. Rows are derived data; they can be
// dropped and recomputed at any time.
const migrationV1HebrewYears = `
CREATE TABLE IF NOT EXISTS hebrew_years (
    year INTEGER PRIMARY KEY CHECK (year >= 1),

    is_leap INTEGER NOT NULL CHECK (is_leap IN (0, 1)),

    -- 353/354/355 for common years, 383/384/385 for leap years
    days INTEGER NOT NULL CHECK (days IN (353, 354, 355, 383, 384, 385)),

    kviah TEXT NOT NULL CHECK (kviah IN ('chaseirim', 'kesidran', 'shelaimim')),

    -- Absolute day of Tishrei 1 (day 1 = January 1, year 1)
    rosh_hashana_abs INTEGER NOT NULL,

    -- Gregorian date of Tishrei 1, YYYY-MM-DD
    rosh_hashana_date TEXT NOT NULL,

    months TEXT NOT NULL DEFAULT '[]',

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// migrationV2RoshHashanaIndex supports lookups by absolute day, used to find
// the year containing a given date.
const migrationV2RoshHashanaIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_hebrew_years_rosh_hashana_abs
    ON hebrew_years(rosh_hashana_abs);
`
