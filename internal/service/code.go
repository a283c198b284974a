package service

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// CodeGenerator produces six-digit confirmation codes in [100000, 999999].
// The range matches the codes already in the wild, so previously issued codes
// stay structurally indistinguishable from new ones.
type CodeGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *CodeGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return strconv.Itoa(100000 + g.rnd.Intn(900000))
}
