package mastermind

// WorkingRow is the guess being composed. NoColor marks an empty slot.
type WorkingRow []Color

// NewWorkingRow returns an empty row with the given number of slots.
func NewWorkingRow(slots int) WorkingRow {
	return make(WorkingRow, slots)
}

// Set fills slot i. Out-of-range indexes are ignored.
func (r WorkingRow) Set(i int, c Color) bool {
	if i < 0 || i >= len(r) || !c.Valid() {
		return false
	}
	r[i] = c
	return true
}

// Clear empties slot i. Out-of-range indexes are ignored.
func (r WorkingRow) Clear(i int) bool {
	if i < 0 || i >= len(r) {
		return false
	}
	r[i] = NoColor
	return true
}

// IsEmpty reports whether no slot is filled.
func (r WorkingRow) IsEmpty() bool {
	for _, c := range r {
		if c != NoColor {
			return false
		}
	}
	return true
}

// Complete returns the resolved guess when every slot is filled.
func (r WorkingRow) Complete() (Code, bool) {
	for _, c := range r {
		if c == NoColor {
			return nil, false
		}
	}
	return Code(r).Clone(), true
}

// Clone returns an independent copy.
func (r WorkingRow) Clone() WorkingRow {
	out := make(WorkingRow, len(r))
	copy(out, r)
	return out
}
