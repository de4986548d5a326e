//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package corpus

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

// unitScoreParam carries one unit through the worker pool.
type unitScoreParam struct {
	idx     int
	ctx     context.Context
	scorer  *rouge.Rouge
	unit    Unit
	results []Result
	errs    []error
	wg      *sync.WaitGroup
}

func (p *unitScoreParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.scorer = nil
	p.unit = Unit{}
	p.results = nil
	p.errs = nil
	p.wg = nil
}

var unitScoreParamPool = &sync.Pool{
	New: func() any { return new(unitScoreParam) },
}

// newUnitScorePool creates a worker pool that scores one unit per task.
func newUnitScorePool(size int) (*ants.PoolWithFunc, error) {
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*unitScoreParam)
		if !ok {
			panic("unit score pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			unitScoreParamPool.Put(param)
		}()
		scores, err := param.scorer.NScore(param.ctx, param.unit.References, param.unit.Candidate)
		if err != nil {
			param.errs[param.idx] = err
			return
		}
		param.results[param.idx].Scores = scores
	})
	if err != nil {
		return nil, fmt.Errorf("create unit score pool: %w", err)
	}
	return pool, nil
}

// submitUnits feeds every unit to the pool and waits for completion. Unit IDs
// are filled with UUIDs where empty so results stay addressable.
func submitUnits(ctx context.Context, pool *ants.PoolWithFunc, scorer *rouge.Rouge,
	units []Unit, results []Result, errs []error) error {
	var wg sync.WaitGroup
	for i, unit := range units {
		id := unit.ID
		if id == "" {
			id = uuid.NewString()
		}
		results[i].ID = id

		param := unitScoreParamPool.Get().(*unitScoreParam)
		param.idx = i
		param.ctx = ctx
		param.scorer = scorer
		param.unit = unit
		param.results = results
		param.errs = errs
		param.wg = &wg

		wg.Add(1)
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			unitScoreParamPool.Put(param)
			wg.Wait()
			return fmt.Errorf("submit unit %s: %w", id, err)
		}
	}
	wg.Wait()
	return nil
}
