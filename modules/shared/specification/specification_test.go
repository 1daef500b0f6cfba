package specification

import (
	"testing"
	"testing/quick"
)

type item struct {
	name  string
	score int
}

func projectName(i item) string { return i.name }

func greaterThan(n int) Specification[item] {
	return Func[item](func(i item) bool { return i.score > n })
}

func ptr(s string) *string { return &s }

func TestCombinators(t *testing.T) {
	acme := item{name: "Acme", score: 10}
	beta := item{name: "Beta", score: 3}

	startsA := StartsWith(projectName, "A")

	tests := []struct {
		name string
		spec Specification[item]
		want map[string]bool
	}{
		{"and", And(startsA, greaterThan(5)), map[string]bool{"Acme": true, "Beta": false}},
		{"or", Or(startsA, greaterThan(1)), map[string]bool{"Acme": true, "Beta": true}},
		{"not", Not(startsA), map[string]bool{"Acme": false, "Beta": true}},
		{"allow all", AllowAll[item](), map[string]bool{"Acme": true, "Beta": true}},
		{"fluent", Of(startsA).Or(greaterThan(2)).Not(), map[string]bool{"Acme": false, "Beta": false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range []item{acme, beta} {
				if got := tt.spec.IsSatisfiedBy(c); got != tt.want[c.name] {
					t.Errorf("IsSatisfiedBy(%s) = %v, want %v", c.name, got, tt.want[c.name])
				}
			}
		})
	}
}

func TestAnd_ShortCircuits(t *testing.T) {
	called := false
	right := Func[item](func(item) bool {
		called = true
		return true
	})
	never := Func[item](func(item) bool { return false })

	if And[item](never, right).IsSatisfiedBy(item{}) {
		t.Fatal("expected false")
	}
	if called {
		t.Error("right side evaluated after left side failed")
	}
}

func TestOr_ShortCircuits(t *testing.T) {
	called := false
	right := Func[item](func(item) bool {
		called = true
		return false
	})

	if !Or[item](AllowAll[item](), right).IsSatisfiedBy(item{}) {
		t.Fatal("expected true")
	}
	if called {
		t.Error("right side evaluated after left side held")
	}
}

func TestStringLeaves(t *testing.T) {
	c := item{name: "Acme Hardware"}

	tests := []struct {
		name string
		spec Specification[item]
		want bool
	}{
		{"equals match", Equals(projectName, "Acme Hardware"), true},
		{"equals is case sensitive", Equals(projectName, "acme hardware"), false},
		{"contains", Contains(projectName, "Hard"), true},
		{"contains miss", Contains(projectName, "Soft"), false},
		{"starts with", StartsWith(projectName, "Acme"), true},
		{"starts with miss", StartsWith(projectName, "Hard"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsSatisfiedBy(c); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString_CompilesFilter(t *testing.T) {
	if !IsAllowAll(String[item](nil, projectName)) {
		t.Error("nil filter should compile to AllowAll")
	}
	if !IsAllowAll(String(&StringFilter{}, projectName)) {
		t.Error("empty filter should compile to AllowAll")
	}

	spec := String(&StringFilter{StartsWith: ptr("Ac"), Contains: ptr("me")}, projectName)
	if !spec.IsSatisfiedBy(item{name: "Acme"}) {
		t.Error("expected Acme to match")
	}
	if spec.IsSatisfiedBy(item{name: "Acorn"}) {
		t.Error("expected Acorn to fail the contains clause")
	}
}

func TestValue_CompilesFilter(t *testing.T) {
	score := func(i item) int { return i.score }
	seven := 7

	if !IsAllowAll(Value[item, int](nil, score)) {
		t.Error("nil filter should compile to AllowAll")
	}
	spec := Value(&ValueFilter[int]{Equals: &seven}, score)
	if !spec.IsSatisfiedBy(item{score: 7}) || spec.IsSatisfiedBy(item{score: 8}) {
		t.Error("value filter should match on equality only")
	}
}

func TestAllAndAny_Empty(t *testing.T) {
	if !IsAllowAll(All[item]()) {
		t.Error("All() should be AllowAll")
	}
	if !IsAllowAll(Any[item]()) {
		t.Error("Any() should be AllowAll")
	}
	if !IsAllowAll(All(AllowAll[item](), nil)) {
		t.Error("All of identities should be AllowAll")
	}
}

// The combinators must agree with the boolean operators for any pair of
// predicates and any candidate.
func TestCombinators_AgreeWithBooleanLogic(t *testing.T) {
	property := func(a, b int8, score int8) bool {
		p := greaterThan(int(a))
		q := greaterThan(int(b))
		c := item{score: int(score)}

		pv, qv := p.IsSatisfiedBy(c), q.IsSatisfiedBy(c)

		return And(p, q).IsSatisfiedBy(c) == (pv && qv) &&
			Or(p, q).IsSatisfiedBy(c) == (pv || qv) &&
			Not(p).IsSatisfiedBy(c) == !pv &&
			All(p, q).IsSatisfiedBy(c) == (pv && qv) &&
			Any(p, q).IsSatisfiedBy(c) == (pv || qv)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
