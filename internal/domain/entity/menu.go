package entity

// Menu is a visibility toggle driven by a single action
type Menu struct {
	visible bool
}

// Update toggles visibility on the frame the action is released
func (m *Menu) Update(released bool) {
	if released {
		m.visible = !m.visible
	}
}

// Visible reports whether the menu is shown
func (m *Menu) Visible() bool {
	return m.visible
}

// ProgressFill is the value of a radial fill widget
type ProgressFill struct {
	amount float64
}

// Set stores amount clamped to [0, 1]
func (p *ProgressFill) Set(amount float64) {
	p.amount = Clamp01(amount)
}

// Amount returns the current fill
func (p *ProgressFill) Amount() float64 {
	return p.amount
}
