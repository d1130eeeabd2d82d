package search

import (
	"strings"
	"time"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

// Relevance bonuses shared across entity types.
const (
	recentWeekBonus    = 15 // created within 7 days
	recentMonthBonus   = 10 // created within 30 days
	highRatingBonus    = 10 // rating above 4.0
	completenessBonus  = 10 // profile completeness above 80%
	wellConnectedBonus = 5  // more than 100 connections
	largeFundBonus     = 15 // fund size of 100M USD or more
)

const largeFundThresholdUSD = 100_000_000

// scoreFunc computes a non-negative relevance score for one record.
// Scores are additive over field matches and bonuses; matching is
// plain case-insensitive substring containment, no tokenization.
// The scale is local to the entity type.
type scoreFunc func(rec entity.Record, term string, filters map[string]string, now time.Time) float64

// fieldWeight holds the additive weights for one scored field.
// prefix and exact stack on top of contains.
type fieldWeight struct {
	contains float64
	prefix   float64
	exact    float64
}

// matchScore scores a single field value against the term.
func matchScore(value, term string, w fieldWeight) float64 {
	if value == "" {
		return 0
	}
	v := strings.ToLower(value)
	if !strings.Contains(v, term) {
		return 0
	}
	score := w.contains
	if strings.HasPrefix(v, term) {
		score += w.prefix
	}
	if v == term {
		score += w.exact
	}
	return score
}

// listScore adds per once for every matching list element.
func listScore(values []string, term string, per float64) float64 {
	var score float64
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			score += per
		}
	}
	return score
}

// recencyBonus rewards recently created records.
func recencyBonus(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt)
	switch {
	case age < 0:
		return 0
	case age <= 7*24*time.Hour:
		return recentWeekBonus
	case age <= 30*24*time.Hour:
		return recentMonthBonus
	}
	return 0
}

// scorerFor returns the scoring function for one entity type.
func scorerFor(t entity.Type) scoreFunc {
	switch t {
	case entity.TypeUser:
		return scoreUser
	case entity.TypeJob:
		return scoreJob
	case entity.TypeEvent:
		return scoreEvent
	case entity.TypeService:
		return scoreService
	case entity.TypeInvestor:
		return scoreInvestor
	case entity.TypeProject:
		return scoreProject
	}
	return func(entity.Record, string, map[string]string, time.Time) float64 { return 0 }
}

func scoreUser(rec entity.Record, term string, _ map[string]string, _ time.Time) float64 {
	u, ok := rec.(entity.User)
	if !ok {
		return 0
	}
	term = strings.ToLower(term)

	score := matchScore(u.FullName, term, fieldWeight{contains: 50, prefix: 25, exact: 25})
	score += matchScore(u.Headline, term, fieldWeight{contains: 30, prefix: 15})
	score += matchScore(u.Bio, term, fieldWeight{contains: 15, prefix: 5})
	score += matchScore(u.Industry, term, fieldWeight{contains: 10, prefix: 5})
	score += matchScore(u.Location, term, fieldWeight{contains: 10, prefix: 5})
	score += listScore(u.Skills, term, 20)

	if u.ProfileCompleteness > 80 {
		score += completenessBonus
	}
	if u.ConnectionCount > 100 {
		score += wellConnectedBonus
	}
	return score
}

func scoreJob(rec entity.Record, term string, _ map[string]string, now time.Time) float64 {
	j, ok := rec.(entity.Job)
	if !ok {
		return 0
	}
	term = strings.ToLower(term)

	score := matchScore(j.Title, term, fieldWeight{contains: 50, prefix: 25, exact: 25})
	score += matchScore(j.Company, term, fieldWeight{contains: 30, prefix: 15})
	score += matchScore(j.Description, term, fieldWeight{contains: 20, prefix: 10})
	score += matchScore(j.Location, term, fieldWeight{contains: 10, prefix: 5})
	score += listScore(j.RequiredSkills, term, 15)

	score += recencyBonus(j.PostedAt, now)
	return score
}

func scoreEvent(rec entity.Record, term string, _ map[string]string, now time.Time) float64 {
	e, ok := rec.(entity.Event)
	if !ok {
		return 0
	}
	term = strings.ToLower(term)

	score := matchScore(e.Title, term, fieldWeight{contains: 50, prefix: 25, exact: 25})
	score += matchScore(e.Organizer, term, fieldWeight{contains: 25, prefix: 10})
	score += matchScore(e.Description, term, fieldWeight{contains: 20, prefix: 10})
	score += matchScore(e.Category, term, fieldWeight{contains: 15, prefix: 5})
	score += matchScore(e.Location, term, fieldWeight{contains: 10, prefix: 5})

	score += recencyBonus(e.Created, now)
	return score
}

func scoreService(rec entity.Record, term string, _ map[string]string, now time.Time) float64 {
	s, ok := rec.(entity.Service)
	if !ok {
		return 0
	}
	term = strings.ToLower(term)

	score := matchScore(s.Name, term, fieldWeight{contains: 50, prefix: 25, exact: 25})
	score += matchScore(s.Provider, term, fieldWeight{contains: 25, prefix: 10})
	score += matchScore(s.Description, term, fieldWeight{contains: 20, prefix: 10})
	score += matchScore(s.Category, term, fieldWeight{contains: 15, prefix: 5})
	score += matchScore(s.Location, term, fieldWeight{contains: 10, prefix: 5})

	if s.Rating > 4.0 {
		score += highRatingBonus
	}
	score += recencyBonus(s.Created, now)
	return score
}

func scoreInvestor(rec entity.Record, term string, _ map[string]string, _ time.Time) float64 {
	inv, ok := rec.(entity.Investor)
	if !ok {
		return 0
	}
	term = strings.ToLower(term)

	score := matchScore(inv.Name, term, fieldWeight{contains: 50, prefix: 25, exact: 25})
	score += matchScore(inv.FirmName, term, fieldWeight{contains: 30, prefix: 15})
	score += matchScore(inv.Thesis, term, fieldWeight{contains: 20, prefix: 10})
	score += matchScore(inv.Location, term, fieldWeight{contains: 10, prefix: 5})
	score += listScore(inv.InvestmentFocus, term, 20)

	if inv.FundSizeUSD >= largeFundThresholdUSD {
		score += largeFundBonus
	}
	return score
}

func scoreProject(rec entity.Record, term string, _ map[string]string, now time.Time) float64 {
	p, ok := rec.(entity.Project)
	if !ok {
		return 0
	}
	term = strings.ToLower(term)

	score := matchScore(p.Title, term, fieldWeight{contains: 50, prefix: 25, exact: 25})
	score += matchScore(p.Owner, term, fieldWeight{contains: 20, prefix: 10})
	score += matchScore(p.Description, term, fieldWeight{contains: 20, prefix: 10})
	score += matchScore(p.Category, term, fieldWeight{contains: 15, prefix: 5})
	score += listScore(p.Technologies, term, 15)

	score += recencyBonus(p.Created, now)
	return score
}
