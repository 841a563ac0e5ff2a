package plan

import "time"

// NextBillingDate projects the next invoice date from the given date using
// the plan's default price tier. Returns nil when the plan has no prices.
//
// Month and year arithmetic is calendar-aware and clamps to the last day of
// the target month instead of letting the date normalize into the following
// month (Jan 31 + 1 month = Feb 29 in a leap year, not Mar 2).
func (p *RecurringPlan) NextBillingDate(from time.Time) *time.Time {
	price := p.DefaultPrice()
	if price == nil {
		return nil
	}
	next := addBillingPeriod(from, price.BillingPeriodValue, price.BillingPeriodUnit)
	return &next
}

func addBillingPeriod(from time.Time, value int, unit BillingPeriodUnit) time.Time {
	switch unit {
	case PeriodDay:
		return from.AddDate(0, 0, value)
	case PeriodMonth:
		return addMonthsClamped(from, value)
	case PeriodYear:
		return addMonthsClamped(from, value*12)
	default:
		return from
	}
}

// addMonthsClamped adds months keeping the day of month, clamping to the
// last day of the target month when the source day does not exist there.
func addMonthsClamped(from time.Time, months int) time.Time {
	year, month, day := from.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, from.Hour(), from.Minute(), from.Second(), from.Nanosecond(), from.Location())
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, from.Hour(), from.Minute(), from.Second(), from.Nanosecond(), from.Location())
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
