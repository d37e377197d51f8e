package mastermind

// Intent is a player action for one frame
type Intent interface {
	isIntent()
}

// SelectColor changes the color carried by the cursor
type SelectColor struct {
	Color Color
}

func (SelectColor) isIntent() {}

// SetSlot fills a working-row slot with the selected color
type SetSlot struct {
	Index int
}

func (SetSlot) isIntent() {}

// ClearSlot empties a working-row slot
type ClearSlot struct {
	Index int
}

func (ClearSlot) isIntent() {}

// Submit scores the working row if it is complete
type Submit struct{}

func (Submit) isIntent() {}

// ToggleEditPassword enters or leaves password editing
type ToggleEditPassword struct{}

func (ToggleEditPassword) isIntent() {}

// SetSecretSlot sets one slot of the secret while editing
type SetSecretSlot struct {
	Index int
}

func (SetSecretSlot) isIntent() {}

// ReplaySamePassword restarts an ended game with the same secret
type ReplaySamePassword struct{}

func (ReplaySamePassword) isIntent() {}

// NewPassword restarts an ended game with a freshly drawn secret
type NewPassword struct{}

func (NewPassword) isIntent() {}
