// Package analytics computes preference distributions over the user base.
package analytics

import (
	"strings"

	"github.com/kaixianglim/event-recommender/internal/model"
)

// AggregateByInterest builds, for each queried interest, the frequency
// distribution of preferred weekdays and office locations among users who
// hold that interest. Matching is case-folded, consistent with the
// similarity engine's treatment of the same vocabulary.
//
// A user with three preferred days contributes three day increments but
// exactly one office-location increment. Users whose stored day list was
// malformed decode to an empty list upstream and contribute no day counts;
// users without an office location are skipped in the location counts.
func AggregateByInterest(users []model.User, interests []string) map[string]model.InterestProfile {
	result := make(map[string]model.InterestProfile, len(interests))

	for _, interest := range interests {
		profile := model.InterestProfile{
			PreferredDay:   make(map[string]int),
			OfficeLocation: make(map[string]int),
		}
		folded := strings.ToLower(interest)

		for _, user := range users {
			if !hasInterest(user.Interests, folded) {
				continue
			}
			for _, day := range user.PreferredDays {
				profile.PreferredDay[day]++
			}
			if user.OfficeLocation != "" {
				profile.OfficeLocation[user.OfficeLocation]++
			}
		}

		result[interest] = profile
	}
	return result
}

func hasInterest(interests []string, folded string) bool {
	for _, have := range interests {
		if strings.ToLower(have) == folded {
			return true
		}
	}
	return false
}
