package division

import "fmt"

// Division is one of the two independently configured fantasy leagues.
type Division string

const (
	Green Division = "green"
	White Division = "white"
)

// All lists divisions in presentation order.
func All() []Division {
	return []Division{Green, White}
}

// Parse accepts exactly "green" or "white". Case and whitespace are not normalized.
func Parse(raw string) (Division, error) {
	switch Division(raw) {
	case Green, White:
		return Division(raw), nil
	default:
		return "", fmt.Errorf("unknown division %q", raw)
	}
}

func (d Division) Valid() bool {
	return d == Green || d == White
}

func (d Division) String() string {
	return string(d)
}
