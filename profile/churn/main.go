// Profiling:
// go build ./profile/churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof

package main

import (
	"github.com/edwinsyarief/sparsecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

// sumSystem folds comp2 into comp1 and marks every entity it visits for
// deletion, so each tick empties the world again.
type sumSystem struct {
	sparsecs.SystemBase
	c1 sparsecs.ComponentID[comp1]
	c2 sparsecs.ComponentID[comp2]
}

func (s *sumSystem) Update(float64) error {
	for e := range s.Entities().All() {
		a, err := sparsecs.Lookup(s.Components(), e, s.c1)
		if err != nil {
			return err
		}
		b, err := sparsecs.Lookup(s.Components(), e, s.c2)
		if err != nil {
			return err
		}
		a.V += b.V
		a.W += b.W
		s.MarkForDeletion(e)
	}
	return nil
}

func main() {
	count := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(count, iters, entities); err != nil {
		panic(err)
	}
	p.Stop()
}

func run(rounds, iters, numEntities int) error {
	for range rounds {
		cfg := sparsecs.DefaultConfig()
		cfg.InitialCapacity = numEntities
		w, err := sparsecs.NewWorld(sparsecs.WithConfig(cfg))
		if err != nil {
			return err
		}
		c1, _ := sparsecs.RegisterComponentType[comp1](w)
		c2, _ := sparsecs.RegisterComponentType[comp2](w)
		id, err := sparsecs.RegisterSystem(w, sparsecs.NewSignature(c1, c2), &sumSystem{c1: c1, c2: c2})
		if err != nil {
			return err
		}

		for range iters {
			for range numEntities {
				e, err := w.CreateEntity()
				if err != nil {
					return err
				}
				_ = sparsecs.AddComponent(e, c1, comp1{})
				_ = sparsecs.AddComponent(e, c2, comp2{V: 1, W: 2})
			}
			if err := sparsecs.UpdateSystem(w, id, 1); err != nil {
				return err
			}
		}
	}
	return nil
}
