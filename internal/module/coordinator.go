package module

import "sync"

// channelBuffer is the bounded FIFO channel size the coordinator and its
// worker pool communicate through. §5 requires at least 1024 so that a
// worker's fire-and-forget dependency publish (step 5) never blocks on
// the coordinator's receive loop.
const channelBuffer = 1024

// Coordinator is the single cooperative agent described in §4.E: it
// deduplicates dependency names, dispatches per-module workers in
// parallel, and terminates the traversal once every descendant in the
// import graph has reported.
type Coordinator struct {
	worker *Worker
	vars   *VarStore
}

// NewCoordinator builds a coordinator around worker, sharing its variable
// store so Extract can be called once loading finishes.
func NewCoordinator(worker *Worker, vars *VarStore) *Coordinator {
	return &Coordinator{worker: worker, vars: vars}
}

// Result is what Load returns: the requested (root) module, its
// transitive dependencies, and the next-fresh type variable reclaimed from
// the shared store. Deps is built batch by batch: each batch of newly
// discovered names is sorted, but batches follow the arrival order of
// dependency messages from parallel workers, which is not fixed across
// runs.
type Result struct {
	Requested Module
	Deps      []Module
	NextVar   TypeVar
}

// Load runs the root module plus its full transitive dependency graph to
// completion and returns once pending reaches zero, i.e. once every
// spawned loader has reported its dependency set.
func (c *Coordinator) Load(rootModuleName string) Result {
	depsCh := make(chan depsMsg, channelBuffer)

	rootCh := make(chan Module, 1)
	go func() { rootCh <- c.worker.Load(rootModuleName, depsCh) }()
	requested := <-rootCh

	allDeps := map[string]struct{}{}
	pending := 1
	var depList []Module

	for pending != 0 {
		msg := <-depsCh

		newDeps := make(map[string]struct{})
		for d := range msg.deps {
			if _, seen := allDeps[d]; !seen {
				newDeps[d] = struct{}{}
			}
		}
		pending += len(newDeps) - 1
		for d := range newDeps {
			allDeps[d] = struct{}{}
		}

		names := sortedDeps(newDeps)
		batch := make([]Module, len(names))
		var wg sync.WaitGroup
		for i, name := range names {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()
				batch[i] = c.worker.Load(name, depsCh)
			}(i, name)
		}
		wg.Wait()

		depList = append(depList, batch...)
	}

	// The coordinator loop only exits once every spawned worker's future
	// has resolved (each batch is fully awaited via wg.Wait() above), so
	// the store has no remaining borrowers and Extract is safe here.
	return Result{Requested: requested, Deps: depList, NextVar: c.vars.Extract()}
}
