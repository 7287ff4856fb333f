package pool_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/momentics/strpool/api"
	"github.com/momentics/strpool/pool"
)

func TestSubpoolCountValidation(t *testing.T) {
	for _, n := range []int{0, -1, 3, 6, 12} {
		if _, err := pool.NewWithSubpools(n); err == nil {
			t.Errorf("NewWithSubpools(%d) accepted an invalid count", n)
		} else if !errors.Is(err, api.ErrInvalidArgument) {
			t.Errorf("NewWithSubpools(%d) error does not wrap ErrInvalidArgument: %v", n, err)
		}
	}
	for _, n := range []int{1, 2, 4, 64} {
		p, err := pool.NewWithSubpools(n)
		if err != nil {
			t.Fatalf("NewWithSubpools(%d): %v", n, err)
		}
		if p.Subpools() != n {
			t.Errorf("Subpools() = %d, want %d", p.Subpools(), n)
		}
		p.Release()
	}
}

func TestInternDedup(t *testing.T) {
	p := pool.New()
	defer p.Release()

	a := p.Intern("interned")
	b := p.Intern("interned")
	if a.String() != "interned" || b.String() != "interned" {
		t.Fatalf("content mismatch: %q / %q", a.String(), b.String())
	}
	if !a.Equal(b) {
		t.Error("two interns of equal content must compare equal")
	}
	if st := p.Stats(); st.Live != 1 {
		t.Errorf("live entries = %d, want 1", st.Live)
	}
	a.Release()
	b.Release()
}

func TestFindBeforeIntern(t *testing.T) {
	p := pool.New()
	defer p.Release()

	if _, ok := p.Find("missing"); ok {
		t.Error("Find returned a handle for content never interned")
	}
	s := p.Intern("missing")
	f, ok := p.Find("missing")
	if !ok {
		t.Fatal("Find missed content that was just interned")
	}
	if !f.Equal(s) {
		t.Error("Find handle differs from Intern handle by content")
	}
	f.Release()
	s.Release()
}

func TestEmptyStringSentinel(t *testing.T) {
	p := pool.New()
	defer p.Release()

	e, ok := p.Find("")
	if !ok || !e.IsEmpty() {
		t.Error("Find(\"\") must always yield the empty sentinel")
	}
	i := p.Intern("")
	if !i.IsEmpty() || !i.Equal(pool.Empty()) {
		t.Error("Intern(\"\") must yield the empty sentinel")
	}
	if st := p.Stats(); st.Live != 0 || st.Misses != 0 {
		t.Errorf("empty string touched a shard: %+v", st)
	}
	// sentinel release is a no-op, repeatable
	e.Release()
	e.Release()
	c := i.Clone()
	if !c.IsEmpty() {
		t.Error("cloned sentinel is not empty")
	}
}

func TestReleaseRemovesEntry(t *testing.T) {
	p := pool.New()
	defer p.Release()

	s := p.Intern("transient")
	s.Release()
	if _, ok := p.Find("transient"); ok {
		t.Error("entry survived the release of its last handle")
	}
	if st := p.Stats(); st.Live != 0 || st.TotalReleased != 1 {
		t.Errorf("stats after release: %+v", st)
	}
}

func TestCloneKeepsEntryAlive(t *testing.T) {
	p := pool.New()
	defer p.Release()

	s := p.Intern("shared")
	c := s.Clone()
	s.Release()
	if c.String() != "shared" {
		t.Fatal("content unreadable through surviving clone")
	}
	if f, ok := p.Find("shared"); !ok {
		t.Error("entry removed while a clone still exists")
	} else {
		f.Release()
	}
	c.Release()
	if _, ok := p.Find("shared"); ok {
		t.Error("entry survived its last handle")
	}
}

func TestHandleSemantics(t *testing.T) {
	p := pool.New()
	defer p.Release()

	a := p.Intern("alpha")
	b := p.Intern("beta")
	if a.Equal(b) {
		t.Error("distinct content compared equal")
	}
	if a.Compare(b) >= 0 {
		t.Error("alpha must order before beta")
	}
	if !a.EqualString("alpha") || a.EqualString("beta") {
		t.Error("EqualString mismatch")
	}
	if a.Len() != 5 {
		t.Errorf("Len = %d, want 5", a.Len())
	}
	if a.Hash64() == b.Hash64() {
		t.Error("distinct content hashed equal; extremely unlikely")
	}
	a2 := p.Intern("alpha")
	if a.Hash64() != a2.Hash64() {
		t.Error("equal content must hash equal")
	}
	a.Release()
	a2.Release()
	b.Release()
}

func TestCrossPoolEquality(t *testing.T) {
	p1 := pool.New()
	defer p1.Release()
	p2 := pool.New()
	defer p2.Release()

	a := p1.Intern("same text")
	b := p2.Intern("same text")
	if !a.Equal(b) {
		t.Error("handles from unrelated pools with equal content must compare equal")
	}
	if a.Hash64() != b.Hash64() {
		t.Error("content hash must agree across pools")
	}
	a.Release()
	b.Release()
}

func TestScenario(t *testing.T) {
	p := pool.New()
	defer p.Release()

	h := p.Intern("Hello world!")
	if _, ok := p.Find("oh hi mark"); ok {
		t.Error("Find invented an entry")
	}
	if e, ok := p.Find(""); !ok || !e.IsEmpty() {
		t.Error("Find(\"\") must yield the empty sentinel")
	}
	f, ok := p.Find("Hello world!")
	if !ok || f.String() != "Hello world!" {
		t.Errorf("Find(\"Hello world!\") = %q, %v", f.String(), ok)
	}
	f.Release()
	h.Release()
}

func TestPoolCloneSharesStorage(t *testing.T) {
	p := pool.New()
	q := p.Clone()

	s := p.Intern("visible everywhere")
	if f, ok := q.Find("visible everywhere"); !ok {
		t.Error("cloned pool does not see shared storage")
	} else {
		f.Release()
	}
	p.Release()
	// storage survives through the second pool handle
	if f, ok := q.Find("visible everywhere"); !ok {
		t.Error("storage gone while a pool handle remains")
	} else {
		f.Release()
	}
	s.Release()
	q.Release()
}

func TestUseAfterReleasePanics(t *testing.T) {
	p := pool.New()
	p.Release()
	defer func() {
		if recover() == nil {
			t.Error("Intern on a released pool did not panic")
		}
	}()
	p.Intern("boom")
}

func TestShardDistribution(t *testing.T) {
	p, err := pool.NewWithSubpools(8)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	words := []string{"a", "bb", "ccc", "dddd", "eeeee", "ffffff", "ggggggg", "hhh", "iii", "jjj", "kkk", "lll"}
	var handles []pool.PoolStr
	for _, w := range words {
		handles = append(handles, p.Intern(w))
	}
	st := p.Stats()
	if st.Live != int64(len(words)) {
		t.Errorf("live = %d, want %d", st.Live, len(words))
	}
	total := 0
	for _, sh := range st.Shards {
		total += sh.Live
	}
	if total != len(words) {
		t.Errorf("per-shard sum = %d, want %d", total, len(words))
	}
	for _, h := range handles {
		h.Release()
	}
}

func TestConcurrentIntern(t *testing.T) {
	const workers = 32
	p, err := pool.NewWithSubpools(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	handles := make([]pool.PoolStr, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = p.Intern("contended")
		}(i)
	}
	wg.Wait()

	for i, h := range handles {
		if h.String() != "contended" {
			t.Fatalf("worker %d got %q", i, h.String())
		}
	}
	if st := p.Stats(); st.Live != 1 {
		t.Errorf("live = %d, want exactly one entry", st.Live)
	}
	for _, h := range handles {
		h.Release()
	}
	if st := p.Stats(); st.Live != 0 {
		t.Errorf("live = %d after all releases, want 0", st.Live)
	}
}

func TestConcurrentChurn(t *testing.T) {
	const workers = 16
	const rounds = 200
	p, err := pool.NewWithSubpools(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				s := p.Intern(words[(w+r)%len(words)])
				c := s.Clone()
				if f, ok := p.Find(s.String()); ok {
					f.Release()
				}
				c.Release()
				s.Release()
			}
		}(w)
	}
	wg.Wait()

	if st := p.Stats(); st.Live != 0 {
		t.Errorf("live = %d after churn, want 0", st.Live)
	}
}
