package world

// checkCollisions runs the ship, asteroid, missile and debris checks. Nothing
// is checked while there is no ship. Collections are walked from the back so
// entries can be removed in place.
func (w *World) checkCollisions() {
	if w.ship == nil {
		return
	}

	for i := len(w.asteroids) - 1; i >= 0; i-- {
		a := w.asteroids[i]
		if w.ship != nil && a.CollidesWith(w.ship) {
			w.explodeShip()
			continue
		}
		for j := len(w.missiles) - 1; j >= 0; j-- {
			if a.CollidesWith(w.missiles[j]) {
				w.breakApart(i)
				w.missiles = remove(w.missiles, j)
			}
		}
	}

	for i := len(w.debris) - 1; i >= 0; i-- {
		if w.ship != nil && w.debris[i].CollidesWith(w.ship) {
			w.explodeShip()
		}
	}
}

// explodeShip destroys the ship and spends a life.
func (w *World) explodeShip() {
	w.ship.Explode(w)
	w.ship = nil
	w.flash = true

	if w.lives > 0 {
		w.lives--
	}
	if w.lives > 0 {
		w.respawnAvailable = true
	} else {
		w.gameOver = true
	}
}

// breakApart shatters the asteroid at index i. It stays in the collection
// until the next asteroid sweep.
func (w *World) breakApart(i int) {
	w.asteroids[i].BreakApart(w)
	w.flash = true
	w.score += AsteroidScore
}
