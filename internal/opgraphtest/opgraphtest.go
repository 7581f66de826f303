package opgraphtest

import (
	"sync"
	"testing"

	"github.com/sparkles-go/sparkles/operation"
)

// Recorder records the order in which observed nodes finish.
type Recorder struct {
	mu       sync.Mutex
	order    []string
	probes   []*operation.Node
	targets  []*operation.Node
	tokens   []string
	recorded []bool
}

// Observe arranges for token to be appended to the recorded order once
// target finishes. It attaches a small dependent node to target purely to
// receive that notification. Because a finishing node notifies its
// dependents in no fixed order, another observed node can finish before
// target's probe is notified; so whenever any probe is notified, every
// observed node that has finished and is not yet recorded is appended, in
// the order the nodes were observed. Recorder keeps the probe alive for as
// long as the Recorder itself lives, since nothing else would — the probe is
// reachable only through target's weak dependents map otherwise.
func (r *Recorder) Observe(token string, target *operation.Node) {
	probe := operation.New(false, target)

	r.mu.Lock()
	r.probes = append(r.probes, probe)
	r.targets = append(r.targets, target)
	r.tokens = append(r.tokens, token)
	r.recorded = append(r.recorded, false)
	r.mu.Unlock()

	probe.Bind(func(dep *operation.Node) error {
		r.mu.Lock()
		for i, t := range r.targets {
			if !r.recorded[i] && t.Finished() {
				r.recorded[i] = true
				r.order = append(r.order, r.tokens[i])
			}
		}
		r.mu.Unlock()
		probe.Finish()
		return nil
	})
}

// Order returns a snapshot of the recorded finish order so far.
func (r *Recorder) Order() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Verify checks, for each token in deps, that every token it HappensAfter
// appears earlier in order. Violations are reported as test errors.
func Verify(t testing.TB, order []string, deps map[string][]string) {
	t.Helper()

	index := make(map[string]int, len(order))
	for i, token := range order {
		index[token] = i
	}

	for token, happensAfter := range deps {
		idx, ok := index[token]
		if !ok {
			t.Errorf("opgraphtest: %v was never finished", token)
			continue
		}
		for _, dep := range happensAfter {
			depIdx, ok := index[dep]
			if !ok || depIdx >= idx {
				t.Errorf("opgraphtest: %v must finish before %v", dep, token)
			}
		}
	}
}
