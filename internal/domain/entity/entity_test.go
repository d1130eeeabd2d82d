package entity

import (
	"errors"
	"reflect"
	"testing"

	"github.com/connecthub/omnisearch/internal/domain"
)

func TestAll_EnumerationOrder(t *testing.T) {
	want := []Type{TypeUser, TypeJob, TypeEvent, TypeService, TypeInvestor, TypeProject}
	if got := All(); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	for _, typ := range All() {
		got, err := Parse(typ.String())
		if err != nil {
			t.Errorf("Parse(%q): %v", typ, err)
		}
		if got != typ {
			t.Errorf("Parse(%q) = %q", typ, got)
		}
	}

	for _, s := range []string{"", "users", "JOB", "company"} {
		if _, err := Parse(s); !errors.Is(err, domain.ErrUnknownEntityType) {
			t.Errorf("Parse(%q) err = %v, want ErrUnknownEntityType", s, err)
		}
	}
}

func TestFacetValues(t *testing.T) {
	u := User{Location: "Berlin", Skills: []string{"Go", "SQL"}}
	if got := u.FacetValues(DimLocation); !reflect.DeepEqual(got, []string{"Berlin"}) {
		t.Errorf("user location facet = %v", got)
	}
	if got := u.FacetValues(DimSkills); !reflect.DeepEqual(got, []string{"Go", "SQL"}) {
		t.Errorf("user skills facet = %v", got)
	}
	if got := u.FacetValues(DimSalaryRange); got != nil {
		t.Errorf("user has no salaryRange, got %v", got)
	}

	j := Job{Company: ""}
	if got := j.FacetValues(DimCompany); got != nil {
		t.Errorf("empty company must contribute no bucket, got %v", got)
	}
}

func TestInvestorFundSizeBand(t *testing.T) {
	cases := []struct {
		usd  int64
		want string
	}{
		{0, ""},
		{-5, ""},
		{9_999_999, "<10M"},
		{10_000_000, "10M-100M"},
		{99_999_999, "10M-100M"},
		{100_000_000, "100M-1B"},
		{999_999_999, "100M-1B"},
		{1_000_000_000, ">1B"},
	}
	for _, tc := range cases {
		inv := Investor{FundSizeUSD: tc.usd}
		if got := inv.FundSizeBand(); got != tc.want {
			t.Errorf("FundSizeBand(%d) = %q, want %q", tc.usd, got, tc.want)
		}
	}

	funded := Investor{FundSizeUSD: 250_000_000}
	if got := funded.FacetValues(DimFundSize); !reflect.DeepEqual(got, []string{"100M-1B"}) {
		t.Errorf("fundSize facet = %v", got)
	}
	unfunded := Investor{}
	if got := unfunded.FacetValues(DimFundSize); got != nil {
		t.Errorf("zero fund size must contribute no bucket, got %v", got)
	}
}
