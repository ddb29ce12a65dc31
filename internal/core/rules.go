package core

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the largest possible Moore-neighborhood count.
const MaxNeighbors = 8

// RuleSet describes a life-like rule as two sets of neighbor counts,
// packed into 9-bit masks over counts 0..8. A live cell survives when its
// neighbor count is in the survive set; a dead cell is born when its count
// is in the birth set. Duplicate counts collapse by construction.
type RuleSet struct {
	survive uint16
	birth   uint16
}

func countBit(n int) (uint16, error) {
	if n < 0 || n > MaxNeighbors {
		return 0, errors.Errorf("neighbor count %d outside [0, %d]", n, MaxNeighbors)
	}
	return 1 << uint(n), nil
}

// NewRuleSet builds a RuleSet from explicit survive and birth counts.
// Counts outside [0, 8] are rejected here so the engine never sees them.
func NewRuleSet(survive, birth []int) (RuleSet, error) {
	var rs RuleSet
	for _, n := range survive {
		bit, err := countBit(n)
		if err != nil {
			return RuleSet{}, errors.Wrap(err, "survive set")
		}
		rs.survive |= bit
	}
	for _, n := range birth {
		bit, err := countBit(n)
		if err != nil {
			return RuleSet{}, errors.Wrap(err, "birth set")
		}
		rs.birth |= bit
	}
	return rs, nil
}

// DefaultRules returns Conway's B3/S23.
func DefaultRules() RuleSet {
	rs, _ := NewRuleSet([]int{2, 3}, []int{3})
	return rs
}

// Survives reports whether a live cell with n neighbors stays alive.
func (r RuleSet) Survives(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.survive&(1<<uint(n)) != 0
}

// Born reports whether a dead cell with n neighbors becomes alive.
func (r RuleSet) Born(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.birth&(1<<uint(n)) != 0
}

// ToggleSurvive flips membership of n in the survive set, returning the
// updated rule. Counts outside [0, 8] are rejected at this boundary.
func (r RuleSet) ToggleSurvive(n int) (RuleSet, error) {
	bit, err := countBit(n)
	if err != nil {
		return r, errors.Wrap(err, "toggle survive")
	}
	r.survive ^= bit
	return r, nil
}

// ToggleBirth flips membership of n in the birth set.
func (r RuleSet) ToggleBirth(n int) (RuleSet, error) {
	bit, err := countBit(n)
	if err != nil {
		return r, errors.Wrap(err, "toggle birth")
	}
	r.birth ^= bit
	return r, nil
}

// SurviveCounts returns the survive set in ascending order.
func (r RuleSet) SurviveCounts() []int { return maskCounts(r.survive) }

// BirthCounts returns the birth set in ascending order.
func (r RuleSet) BirthCounts() []int { return maskCounts(r.birth) }

func maskCounts(mask uint16) []int {
	var counts []int
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<uint(n)) != 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

func maskDigits(mask uint16) string {
	var b strings.Builder
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<uint(n)) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r RuleSet) String() string {
	return "B" + maskDigits(r.birth) + "/S" + maskDigits(r.survive)
}

// ParseRule parses B/S notation ("B3/S23", case-insensitive). Empty digit
// runs are allowed on either side, as in the Seeds rule "B2/S".
func ParseRule(s string) (RuleSet, error) {
	parts := strings.SplitN(strings.ToUpper(strings.TrimSpace(s)), "/", 2)
	if len(parts) != 2 {
		return RuleSet{}, errors.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	var rs RuleSet
	for _, part := range parts {
		if part == "" {
			return RuleSet{}, errors.Errorf("rule %q: empty segment", s)
		}
		digits := part[1:]
		mask := uint16(0)
		for _, d := range digits {
			if d < '0' || d > '8' {
				return RuleSet{}, errors.Errorf("rule %q: neighbor count %q outside [0, 8]", s, d)
			}
			mask |= 1 << uint(d-'0')
		}
		switch part[0] {
		case 'B':
			rs.birth = mask
		case 'S':
			rs.survive = mask
		default:
			return RuleSet{}, errors.Errorf("rule %q: segment %q must start with B or S", s, part)
		}
	}
	return rs, nil
}

var presets = map[string]RuleSet{}

// RegisterRule adds a named rule preset.
func RegisterRule(name string, rs RuleSet) {
	if name == "" {
		return
	}
	presets[name] = rs
}

// LookupRule returns a registered preset by name.
func LookupRule(name string) (RuleSet, bool) {
	rs, ok := presets[name]
	return rs, ok
}

// RuleNames lists the registered presets in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustRule(s string) RuleSet {
	rs, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return rs
}

func init() {
	RegisterRule("conway", mustRule("B3/S23"))
	RegisterRule("highlife", mustRule("B36/S23"))
	RegisterRule("seeds", mustRule("B2/S"))
	RegisterRule("daynight", mustRule("B3678/S34678"))
	RegisterRule("maze", mustRule("B3/S12345"))
	RegisterRule("replicator", mustRule("B1357/S1357"))
}
