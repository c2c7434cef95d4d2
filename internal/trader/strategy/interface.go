package strategy

// Source is the random source strategies and the engine draw from.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// Account provides read-only access to the deciding player's state.
type Account interface {
	RemainingBalance() float64
}
