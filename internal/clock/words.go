package clock

// onesWords covers 1-19; index 0 is unused.
var onesWords = [20]string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT",
	"NINE", "TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN",
	"SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

// tensWords is indexed by n/10 for n in [20,59].
var tensWords = [6]string{"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY"}

// numberWord spells n for 1 <= n <= 59 ("FIVE", "TWENTY-TWO"). Out-of-range
// values yield an empty string; callers never pass them for valid times.
func numberWord(n int) string {
	switch {
	case n <= 0 || n > 59:
		return ""
	case n < 20:
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + "-" + onesWords[n%10]
}

// spokenHour converts a 24-hour value to its 12-hour spoken word; both
// 0 and 12 are spoken as TWELVE.
func spokenHour(h int) string {
	h %= 12
	if h == 0 {
		h = 12
	}
	return onesWords[h]
}

// RenderWords draws the time as two lines of spoken English. Total over all
// valid (hour, minute) pairs: both lines are always non-empty.
func RenderWords(t TimeOfDay) []string {
	switch t.Minute {
	case 0:
		return []string{spokenHour(t.Hour), "O'CLOCK"}
	case 15:
		return []string{spokenHour(t.Hour), "QUARTER PAST"}
	case 30:
		return []string{spokenHour(t.Hour), "HALF PAST"}
	case 45:
		// Spoken English runs "quarter to <next hour>", so the idiom
		// comes first and the hour word second.
		return []string{"QUARTER TO", spokenHour(t.Hour + 1)}
	}

	minute := numberWord(t.Minute)
	if t.Minute < 10 {
		// "nine oh five"
		minute = "OH " + minute
	}
	return []string{spokenHour(t.Hour), minute}
}
