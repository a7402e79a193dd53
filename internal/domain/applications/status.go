package applications

import "strings"

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to Status) bool {
	return from == StatusPending && (to == StatusAccepted || to == StatusRejected)
}

// ParseStatus accepts any casing; an empty string parses to "" with ok=true so
// listings can treat it as "any status".
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "" {
		return "", true
	}
	return s, s.Valid()
}
