package infrastructure

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// CryptoRandomSource draws ticket numbers from crypto/rand
type CryptoRandomSource struct{}

// NewCryptoRandomSource creates a new crypto-backed random source
func NewCryptoRandomSource() *CryptoRandomSource {
	return &CryptoRandomSource{}
}

// PickUniqueNumbersInRange returns count distinct numbers from [min, max]
func (s *CryptoRandomSource) PickUniqueNumbersInRange(min, max, count int) ([]int, error) {
	return pickFromPool(min, max, count, func(n int) (int, error) {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return 0, fmt.Errorf("random generation failed: %w", err)
		}
		return int(v.Int64()), nil
	})
}

// SeededRandomSource is a reproducible source; the same seed yields the same tickets
type SeededRandomSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeededRandomSource creates a PCG-backed source from seed
func NewSeededRandomSource(seed uint64) *SeededRandomSource {
	return &SeededRandomSource{
		rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// PickUniqueNumbersInRange returns count distinct numbers from [min, max]
func (s *SeededRandomSource) PickUniqueNumbersInRange(min, max, count int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return pickFromPool(min, max, count, func(n int) (int, error) {
		return s.rng.IntN(n), nil
	})
}

// pickFromPool enumerates [min, max] and runs a partial Fisher-Yates shuffle
// over the first count slots. intn must return a uniform value in [0, n).
func pickFromPool(min, max, count int, intn func(n int) (int, error)) ([]int, error) {
	if min > max {
		return nil, fmt.Errorf("invalid range [%d, %d]", min, max)
	}
	size := max - min + 1
	if count < 0 || count > size {
		return nil, fmt.Errorf("cannot pick %d unique numbers from %d candidates", count, size)
	}

	available := make([]int, size)
	for i := range available {
		available[i] = min + i
	}

	for i := 0; i < count; i++ {
		n, err := intn(size - i)
		if err != nil {
			return nil, err
		}
		j := i + n
		available[i], available[j] = available[j], available[i]
	}

	return available[:count], nil
}
