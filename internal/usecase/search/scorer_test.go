package search

import (
	"testing"
	"time"

	"github.com/connecthub/omnisearch/internal/domain/entity"
)

var scorerNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func scoreOf(t *testing.T, rec entity.Record, term string) float64 {
	t.Helper()
	return scorerFor(rec.Type())(rec, term, nil, scorerNow)
}

func TestScoreJob_ExactTitleOutranksPrefixAndContains(t *testing.T) {
	// All three titles contain the term; only the first two are prefixes,
	// and only the first is an exact match.
	exact := entity.Job{Title: "Software Engineer"}
	prefix := entity.Job{Title: "Software Engineering Intern"}
	contains := entity.Job{Title: "Senior Software Engineer"}

	term := "Software Engineer"
	se := scoreOf(t, exact, term)
	sp := scoreOf(t, prefix, term)
	sc := scoreOf(t, contains, term)

	if !(se > sp && sp > sc) {
		t.Errorf("want exact > prefix > contains, got %.0f, %.0f, %.0f", se, sp, sc)
	}
	if sc == 0 {
		t.Error("contains match must still score")
	}
}

func TestScoreJob_NoMatchScoresZero(t *testing.T) {
	j := entity.Job{Title: "Accountant", Company: "Ledger Inc"}
	if got := scoreOf(t, j, "engineer"); got != 0 {
		t.Errorf("score = %.0f, want 0", got)
	}
}

func TestScoreJob_SkillMatchesCompound(t *testing.T) {
	one := entity.Job{Title: "Backend Developer", RequiredSkills: []string{"Go"}}
	two := entity.Job{Title: "Backend Developer", RequiredSkills: []string{"Go", "Golang"}}

	s1 := scoreOf(t, one, "go")
	s2 := scoreOf(t, two, "go")
	if s2 <= s1 {
		t.Errorf("two matching skills (%.0f) must outscore one (%.0f)", s2, s1)
	}
}

func TestScoreJob_RecencyBonus(t *testing.T) {
	cases := []struct {
		name   string
		posted time.Time
		bonus  float64
	}{
		{"this week", scorerNow.Add(-3 * 24 * time.Hour), 15},
		{"this month", scorerNow.Add(-20 * 24 * time.Hour), 10},
		{"older", scorerNow.Add(-90 * 24 * time.Hour), 0},
	}

	base := scoreOf(t, entity.Job{Title: "Go Developer", PostedAt: scorerNow.Add(-90 * 24 * time.Hour)}, "go")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := entity.Job{Title: "Go Developer", PostedAt: tc.posted}
			if got := scoreOf(t, j, "go"); got != base+tc.bonus {
				t.Errorf("score = %.0f, want %.0f", got, base+tc.bonus)
			}
		})
	}
}

func TestScoreUser_QualityAndPopularityBonuses(t *testing.T) {
	plain := entity.User{FullName: "Ada Devlin"}
	complete := entity.User{FullName: "Ada Devlin", ProfileCompleteness: 90}
	connected := entity.User{FullName: "Ada Devlin", ProfileCompleteness: 90, ConnectionCount: 250}

	sPlain := scoreOf(t, plain, "devlin")
	sComplete := scoreOf(t, complete, "devlin")
	sConnected := scoreOf(t, connected, "devlin")

	if sComplete != sPlain+completenessBonus {
		t.Errorf("completeness bonus: got %.0f, want %.0f", sComplete, sPlain+completenessBonus)
	}
	if sConnected != sComplete+wellConnectedBonus {
		t.Errorf("connection bonus: got %.0f, want %.0f", sConnected, sComplete+wellConnectedBonus)
	}
}

func TestScoreUser_BonusesRequireThresholds(t *testing.T) {
	u := entity.User{FullName: "Ada Devlin", ProfileCompleteness: 80, ConnectionCount: 100}
	base := entity.User{FullName: "Ada Devlin"}
	if scoreOf(t, u, "devlin") != scoreOf(t, base, "devlin") {
		t.Error("thresholds are strict: 80% completeness and 100 connections earn nothing")
	}
}

func TestScoreService_RatingBonus(t *testing.T) {
	low := entity.Service{Name: "Design Studio", Rating: 4.0, Created: scorerNow.Add(-90 * 24 * time.Hour)}
	high := entity.Service{Name: "Design Studio", Rating: 4.5, Created: scorerNow.Add(-90 * 24 * time.Hour)}

	if scoreOf(t, high, "design") != scoreOf(t, low, "design")+highRatingBonus {
		t.Error("rating above 4.0 must add the rating bonus")
	}
}

func TestScoreInvestor_LargeFundBonus(t *testing.T) {
	small := entity.Investor{Name: "Horizon Capital", FundSizeUSD: 50_000_000}
	large := entity.Investor{Name: "Horizon Capital", FundSizeUSD: 250_000_000}

	if scoreOf(t, large, "horizon") != scoreOf(t, small, "horizon")+largeFundBonus {
		t.Error("fund of 100M or more must add the large-fund bonus")
	}
}

func TestScoreInvestor_FocusMatchesCompound(t *testing.T) {
	inv := entity.Investor{
		Name:            "Horizon Capital",
		InvestmentFocus: []string{"fintech", "fintech infrastructure", "climate"},
	}

	// Two focus elements contain "fintech" at 20 each; no other field matches.
	if got := scoreOf(t, inv, "fintech"); got != 40 {
		t.Errorf("focus score = %.0f, want 40", got)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	p := entity.Project{Title: "OpenMesh Gateway"}
	if scoreOf(t, p, "OPENMESH") != scoreOf(t, p, "openmesh") {
		t.Error("matching must ignore case")
	}
}

func TestScore_MismatchedRecordTypeScoresZero(t *testing.T) {
	// A record routed to the wrong scorer contributes nothing rather than panicking.
	if got := scorerFor(entity.TypeJob)(entity.User{FullName: "Go"}, "go", nil, scorerNow); got != 0 {
		t.Errorf("score = %.0f, want 0", got)
	}
}

func TestScore_NeverNegative(t *testing.T) {
	types := []entity.Record{
		entity.User{}, entity.Job{}, entity.Event{}, entity.Service{}, entity.Investor{}, entity.Project{},
	}
	for _, rec := range types {
		if got := scoreOf(t, rec, "anything"); got < 0 {
			t.Errorf("%s score = %.0f, want >= 0", rec.Type(), got)
		}
	}
}
