package random

import "math/rand"

/*
 * seeded source
 * same seed, same draws
 */

//face info
type Source struct {
	rng *rand.Rand
}

//construct
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

//[0, n)
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

//child seed
func (s *Source) Int63() int64 {
	return s.rng.Int63()
}

//Distinct draws n distinct values of [lo, hi) in draw order.
//panics if the range is smaller than n.
func (s *Source) Distinct(n, lo, hi int) []int {
	if n < 0 || hi-lo < n {
		panic("random: range smaller than draw count")
	}
	pool := make([]int, hi-lo)
	for i := range pool {
		pool[i] = lo + i
	}
	//partial fisher-yates
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
