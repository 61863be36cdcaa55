// Package filter applies faceted predicates to event collections and
// derives the legal option values for each facet. All functions are pure:
// they read the snapshot they are given and return new slices.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/kaixianglim/event-recommender/internal/model"
)

// All is the pass-through value for both filter types and filter values.
const All = "All"

// Supported filter types.
const (
	TypeCategory   = "Category"
	TypeLocation   = "Location"
	TypePriceRange = "Price Range"
	TypeTags       = "Tags"
	TypeDate       = "Date"
)

// Price bands. The band edges are inclusive as written, which leaves
// prices in (0,1) and (50,51) matching no band.
const (
	PriceFree    = "Free"
	PriceLow     = "$1 - $50"
	PriceMid     = "$51 - $100"
	PricePremium = "$100+"
)

// Date buckets, all relative to the caller-supplied "now".
const (
	DateToday     = "Today"
	DateThisWeek  = "This Week"
	DateThisMonth = "This Month"
	DateFuture    = "Future"
)

const dateLayout = "2006-01-02"

// Apply narrows events to those matching the given facet. It is the
// identity when either the type or the value is "All". Unknown filter
// types also pass everything through.
func Apply(events []model.Event, filterType, filterValue string, now time.Time) []model.Event {
	if filterType == All || filterValue == All {
		return events
	}

	var keep func(model.Event) bool
	switch filterType {
	case TypeCategory:
		keep = func(e model.Event) bool {
			return strings.EqualFold(e.Category, filterValue)
		}
	case TypeLocation:
		keep = func(e model.Event) bool {
			return strings.EqualFold(e.Location, filterValue)
		}
	case TypePriceRange:
		keep = func(e model.Event) bool {
			return matchesPriceBand(e, filterValue)
		}
	case TypeTags:
		keep = func(e model.Event) bool {
			for _, tag := range e.Tags {
				if strings.EqualFold(tag, filterValue) {
					return true
				}
			}
			return false
		}
	case TypeDate:
		keep = func(e model.Event) bool {
			return matchesDateBucket(e.Date, filterValue, now)
		}
	default:
		return events
	}

	filtered := make([]model.Event, 0, len(events))
	for _, e := range events {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func matchesPriceBand(e model.Event, band string) bool {
	switch band {
	case PriceFree:
		return e.IsFree()
	case PriceLow:
		return e.Price >= 1 && e.Price <= 50
	case PriceMid:
		return e.Price >= 51 && e.Price <= 100
	case PricePremium:
		return e.Price > 100
	}
	return false
}

// matchesDateBucket places an event date in a bucket relative to now.
// Unparsable dates are included regardless of bucket: a record with a bad
// date must never disappear from every view.
func matchesDateBucket(date, bucket string, now time.Time) bool {
	eventDate, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch bucket {
	case DateToday:
		return eventDate.Equal(today)
	case DateThisWeek:
		days := daysBetween(today, eventDate)
		return days >= 0 && days <= 7
	case DateThisMonth:
		return eventDate.Year() == now.Year() && eventDate.Month() == now.Month()
	case DateFuture:
		return eventDate.After(now)
	}
	return false
}

// daysBetween returns the calendar-day difference between two dates.
// Both are re-anchored to UTC midnight first, so a DST transition
// shortening a day inside the window cannot shift the count.
func daysBetween(from, to time.Time) int {
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toUTC.Sub(fromUTC).Hours() / 24)
}

// Options derives the legal values for a filter type from the live event
// collection, always prefixed with "All". Category, Location and Tags
// options come from the events themselves; price bands and date buckets
// are fixed vocabularies.
func Options(events []model.Event, filterType string) []string {
	switch filterType {
	case TypeCategory:
		return withAll(distinct(events, func(e model.Event) []string {
			return []string{e.Category}
		}))
	case TypeLocation:
		return withAll(distinct(events, func(e model.Event) []string {
			return []string{e.Location}
		}))
	case TypeTags:
		return withAll(distinct(events, func(e model.Event) []string {
			return e.Tags
		}))
	case TypePriceRange:
		return []string{All, PriceFree, PriceLow, PriceMid, PricePremium}
	case TypeDate:
		return []string{All, DateToday, DateThisWeek, DateThisMonth, DateFuture}
	}
	return []string{All}
}

func distinct(events []model.Event, extract func(model.Event) []string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, e := range events {
		for _, v := range extract(e) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				values = append(values, v)
			}
		}
	}
	sort.Strings(values)
	return values
}

func withAll(values []string) []string {
	return append([]string{All}, values...)
}
