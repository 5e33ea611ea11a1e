package shooter

// Player is the ship controlled by the user.
type Player struct {
	Entity
	Lives           uint32
	InvincibleTimer float64 // Seconds of remaining immunity

	invincibility float64 // Immunity window granted by each hit
}

// newPlayer creates a player with the given lives and per-hit immunity window.
func newPlayer(ship Entity, lives uint32, invincibility float64) Player {
	return Player{
		Entity:        ship,
		Lives:         lives,
		invincibility: invincibility,
	}
}

// TakeDamage removes one life and starts the immunity window.
// Returns false without changing anything while the player is invincible.
// This is the only place lives are lost.
func (p *Player) TakeDamage() bool {
	if p.IsInvincible() {
		return false
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.InvincibleTimer = p.invincibility
	return true
}

// Update counts down the immunity window.
func (p *Player) Update(dt float64) {
	p.InvincibleTimer -= dt
	if p.InvincibleTimer < 0 {
		p.InvincibleTimer = 0
	}
}

// IsInvincible reports whether the player is currently immune to damage.
func (p Player) IsInvincible() bool {
	return p.InvincibleTimer > 0
}
