package domain

// DraftStatus is the state of a daily menu draft.
type DraftStatus string

const (
	DraftStatusDraft  DraftStatus = "draft"
	DraftStatusLocked DraftStatus = "locked"
)

func (s DraftStatus) String() string { return string(s) }

func (s DraftStatus) IsValid() bool {
	switch s {
	case DraftStatusDraft, DraftStatusLocked:
		return true
	}
	return false
}

// MoveDirection tells MoveLine which neighbour to swap with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

func (d MoveDirection) String() string { return string(d) }

func (d MoveDirection) IsValid() bool {
	switch d {
	case MoveUp, MoveDown:
		return true
	}
	return false
}

// ComplianceStatus is the verdict of a compliance assessment.
type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "compliant"
	ComplianceStatusNonCompliant ComplianceStatus = "non-compliant"
)

func (s ComplianceStatus) String() string { return string(s) }

func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceStatusCompliant, ComplianceStatusNonCompliant:
		return true
	}
	return false
}
