// Profiling:
// go build ./profile/iterate
// go tool pprof -http=":8000" -nodefraction=0.001 ./iterate cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

type foldSystem struct {
	sparsecs.SystemBase
	c1 sparsecs.ComponentID[comp1]
	c2 sparsecs.ComponentID[comp2]
}

func (s *foldSystem) Update(float64) error {
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
	}
	return nil
}

func main() {
	count := 10
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
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
		c3, _ := sparsecs.RegisterComponentType[comp3](w)
		c4, _ := sparsecs.RegisterComponentType[comp4](w)
		c5, _ := sparsecs.RegisterComponentType[comp5](w)
		c6, _ := sparsecs.RegisterComponentType[comp6](w)
		sig := sparsecs.NewSignature(c1, c2, c3, c4, c5, c6)
		if _, err := sparsecs.RegisterSystem(w, sig, &foldSystem{c1: c1, c2: c2}); err != nil {
			return err
		}

		for range numEntities {
			e, err := w.CreateEntity()
			if err != nil {
				return err
			}
			_ = sparsecs.AddComponent(e, c1, comp1{})
			_ = sparsecs.AddComponent(e, c2, comp2{V: 1, W: 1})
			_ = sparsecs.AddComponent(e, c3, comp3{})
			_ = sparsecs.AddComponent(e, c4, comp4{})
			_ = sparsecs.AddComponent(e, c5, comp5{})
			_ = sparsecs.AddComponent(e, c6, comp6{})
		}
		for range iters {
			if err := w.UpdateAll(1); err != nil {
				return err
			}
		}
	}
	return nil
}
