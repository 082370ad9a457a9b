package calendar

import "time"

// Hebrew calendar arithmetic on fixed day numbers (day 1 = 0001-01-01 Gregorian).
// Months are numbered from Nisan (1) through Adar II (13); the year starts at Tishrei (7).

const (
	hebrewEpoch = -1373427

	nisan   = 1
	elul    = 6
	tishrei = 7
	adar    = 12
	adarII  = 13
)

var hebrewMonthNames = map[int]string{
	1:  "Nisan",
	2:  "Iyar",
	3:  "Sivan",
	4:  "Tammuz",
	5:  "Av",
	6:  "Elul",
	7:  "Tishrei",
	8:  "Cheshvan",
	9:  "Kislev",
	10: "Tevet",
	11: "Shevat",
	12: "Adar",
	13: "Adar II",
}

// RoshChodesh reports whether the date is Rosh Chodesh and for which month.
// This is an alerting policy only; staffing extras use the Gregorian month start.
func RoshChodesh(date time.Time) (bool, string) {
	year, month, day := hebrewFromFixed(fixedFromGregorian(date))

	if day == 1 && month != tishrei {
		return true, monthName(month, year)
	}

	if day == 30 {
		next := month + 1
		if month == lastMonthOfHebrewYear(year) {
			next = nisan
		}
		return true, monthName(next, year)
	}

	return false, ""
}

func monthName(month, year int) string {
	if month == adar && hebrewLeapYear(year) {
		return "Adar I"
	}
	return hebrewMonthNames[month]
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return a - b*floorDiv(a, b)
}

func gregorianLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func fixedFromGregorian(t time.Time) int {
	y, m, d := t.Year(), int(t.Month()), t.Day()
	prior := y - 1

	fixed := 365*prior + floorDiv(prior, 4) - floorDiv(prior, 100) + floorDiv(prior, 400) + floorDiv(367*m-362, 12) + d
	if m > 2 {
		if gregorianLeapYear(y) {
			fixed--
		} else {
			fixed -= 2
		}
	}
	return fixed
}

func hebrewLeapYear(y int) bool {
	return mod(7*y+1, 19) < 7
}

func lastMonthOfHebrewYear(y int) int {
	if hebrewLeapYear(y) {
		return adarII
	}
	return adar
}

func hebrewCalendarElapsedDays(y int) int {
	monthsElapsed := floorDiv(235*y-234, 19)
	partsElapsed := 12084 + 13753*monthsElapsed
	days := 29*monthsElapsed + floorDiv(partsElapsed, 25920)
	if mod(3*(days+1), 7) < 3 {
		return days + 1
	}
	return days
}

func hebrewYearLengthCorrection(y int) int {
	ny0 := hebrewCalendarElapsedDays(y - 1)
	ny1 := hebrewCalendarElapsedDays(y)
	ny2 := hebrewCalendarElapsedDays(y + 1)

	switch {
	case ny2-ny1 == 356:
		return 2
	case ny1-ny0 == 382:
		return 1
	default:
		return 0
	}
}

func hebrewNewYear(y int) int {
	return hebrewEpoch + hebrewCalendarElapsedDays(y) + hebrewYearLengthCorrection(y)
}

func daysInHebrewYear(y int) int {
	return hebrewNewYear(y+1) - hebrewNewYear(y)
}

func lastDayOfHebrewMonth(month, year int) int {
	switch {
	case month == 2 || month == 4 || month == elul || month == 10 || month == adarII:
		return 29
	case month == adar && !hebrewLeapYear(year):
		return 29
	case month == 8 && mod(daysInHebrewYear(year), 10) != 5:
		// Cheshvan is long only in complete years (355/385 days)
		return 29
	case month == 9 && mod(daysInHebrewYear(year), 10) == 3:
		// Kislev is short in deficient years (353/383 days)
		return 29
	default:
		return 30
	}
}

func fixedFromHebrew(year, month, day int) int {
	fixed := hebrewNewYear(year) + day - 1

	if month < tishrei {
		for m := tishrei; m <= lastMonthOfHebrewYear(year); m++ {
			fixed += lastDayOfHebrewMonth(m, year)
		}
		for m := nisan; m < month; m++ {
			fixed += lastDayOfHebrewMonth(m, year)
		}
	} else {
		for m := tishrei; m < month; m++ {
			fixed += lastDayOfHebrewMonth(m, year)
		}
	}

	return fixed
}

func hebrewFromFixed(fixed int) (year, month, day int) {
	approx := floorDiv((fixed-hebrewEpoch)*98496, 35975351) + 1

	year = approx - 1
	for hebrewNewYear(year+1) <= fixed {
		year++
	}

	month = tishrei
	if fixed >= fixedFromHebrew(year, nisan, 1) {
		month = nisan
	}
	for fixed > fixedFromHebrew(year, month, lastDayOfHebrewMonth(month, year)) {
		month++
	}

	day = fixed - fixedFromHebrew(year, month, 1) + 1
	return year, month, day
}
