package aoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=26`,
			want: sample{
				want: "26",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestExtractAllSamples(t *testing.T) {
	fsys := fstest.MapFS{
		"day1.go": {Data: []byte(`package main

/*
want=3

a
b
*/
func (s solver) D1p1() any { return nil }

// want=4
func (s solver) D1p2() any { return nil }
`)},
		"day1_test.go": {Data: []byte(`package main

// want=9
func (s solver) D9p1() any { return nil }
`)},
	}
	got := extractAllSamples(fsys)
	want := map[string]sample{
		"D1p1": {want: "3", input: "a\nb\n"},
		"D1p2": {want: "4", input: "a\nb\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractAllSamples = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("sample %s = %v, want %v", k, got[k], v)
		}
	}
}

type fakeSolver struct {
	*Puzzle
}

func (s fakeSolver) D2p1() any { return len(s.Lines()) }
func (s fakeSolver) D2p2() any { return "wrong" }

func TestCheckSamples(t *testing.T) {
	fsys := fstest.MapFS{
		"day2.go": {Data: []byte(`package main

/*
want=3

x

y


*/
func (s fakeSolver) D2p1() any { return nil }

// want=right
func (s fakeSolver) D2p2() any { return nil }
`)},
	}
	err := CheckSamples(2020, fsys, &fakeSolver{})
	if err == nil {
		t.Fatal("CheckSamples = nil, want an error for D2p2")
	}
	if got, want := err.Error(), "D2p2: got wrong, want right"; got != want {
		t.Errorf("CheckSamples = %q, want %q", got, want)
	}
}

func TestNeighbors(t *testing.T) {
	if got := len(Pt{3, 4}.Neighbors()); got != 8 {
		t.Errorf("len(Pt.Neighbors) = %d, want 8", got)
	}
	if got := len(Pt3Int{1, 2, 3}.Neighbors()); got != 26 {
		t.Errorf("len(Pt3.Neighbors) = %d, want 26", got)
	}
	if got := len(Pt4Int{}.Neighbors()); got != 80 {
		t.Errorf("len(Pt4.Neighbors) = %d, want 80", got)
	}

	got := Pt{}.Neighbors()
	want := []Pt{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Pt{}.Neighbors() = %v, want %v", got, want)
	}
	if slices.Contains(Pt4Int{}.Neighbors(), Pt4Int{}) {
		t.Error("Pt4.Neighbors contains the point itself")
	}
}

func TestGrid(t *testing.T) {
	g := MakeGrid[byte](3, 2)
	if got := g.Size(); got != (Pt{3, 2}) {
		t.Errorf("Size = %v, want {3 2}", got)
	}
	if _, ok := g.AtOk(Pt{-1, 0}); ok {
		t.Error("AtOk({-1 0}) = ok, want out of bounds")
	}
	if ok := g.SetOk(Pt{3, 0}, 'x'); ok {
		t.Error("SetOk({3 0}) = true, want false")
	}

	c := g.Clone()
	if g.Hash() != c.Hash() {
		t.Error("clone hashes differently")
	}
	c.Set(Pt{2, 1}, 1)
	if g.At(Pt{2, 1}) != 0 {
		t.Error("writing to a clone changed the original")
	}
	if g.Hash() == c.Hash() {
		t.Error("different grids hash the same")
	}
}

func TestGridHashConcurrent(t *testing.T) {
	bg := MakeGrid[byte](4, 4)
	ig := MakeGrid[int](4, 4)
	wantBytes, wantInts := bg.Hash(), ig.Hash()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := bg.Hash(); got != wantBytes {
				t.Errorf("Hash = %v, want %v", got, wantBytes)
			}
			if got := ig.Hash(); got != wantInts {
				t.Errorf("Hash = %v, want %v", got, wantInts)
			}
		}()
	}
	wg.Wait()
}

func TestPathWithin(t *testing.T) {
	// 0 -> 1 -> 3 costs 0 + 1; 0 -> 2 -> 3 costs 0 + 2.
	var g Digraph[int]
	g.AddArc(0, 2, 0)
	g.AddArc(2, 3, 2)
	g.AddArc(0, 1, 0)
	g.AddArc(1, 3, 1)
	g.AddArc(3, 0, 0)

	tests := []struct {
		budget int
		ok     bool
		weight int
	}{
		{budget: 0, ok: false},
		{budget: 1, ok: true, weight: 1},
		{budget: 2, ok: true, weight: 2}, // the first arc is tried first
	}
	for _, tt := range tests {
		path, ok := g.PathWithin(0, 3, tt.budget)
		if ok != tt.ok {
			t.Errorf("PathWithin(0, 3, %d) ok = %v, want %v", tt.budget, ok, tt.ok)
			continue
		}
		if w := PathWeight(path); ok && w != tt.weight {
			t.Errorf("PathWithin(0, 3, %d) weight = %d, want %d", tt.budget, w, tt.weight)
		}
	}

	if path, ok := g.PathWithin(2, 2, 0); !ok || len(path) != 0 {
		t.Errorf("PathWithin(2, 2, 0) = %v, %v; want empty path", path, ok)
	}
}

func TestDigraphReverse(t *testing.T) {
	var g Digraph[string]
	g.AddArc("a", "b", 1)
	g.AddArc("a", "c", 0)
	r := g.Reverse()

	if got := r.Arcs["b"]; len(got) != 1 || got[0] != (Arc[string]{"b", "a", 1}) {
		t.Errorf("reversed arcs of b = %v", got)
	}
	if got := len(r.Arcs["a"]); got != 0 {
		t.Errorf("reversed a has %d arcs, want 0", got)
	}
	if got := r.ReachableNodes("c"); !got["a"] || got["b"] {
		t.Errorf("ReachableNodes(c) = %v, want {a c}", got)
	}
	if got, want := r.Order(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Order = %v, want %v", got, want)
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{7}, 7},
		{[]int{4, 6}, 12},
		{[]int{7, 13, 59, 31, 19}, 7 * 13 * 59 * 31 * 19},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig(missing) = %v", err)
	}
	if c != DefaultConfig() {
		t.Errorf("LoadConfig(missing) = %+v, want defaults", c)
	}

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("year: 2020\ninput_dir: inputs\nmax_generations: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadConfig(good)
	if err != nil {
		t.Fatalf("LoadConfig(good) = %v", err)
	}
	if c.Year != 2020 || c.InputDir != "inputs" || c.MaxGenerations != 50 {
		t.Errorf("LoadConfig(good) = %+v", c)
	}
	if c.SessionFile != DefaultConfig().SessionFile {
		t.Errorf("SessionFile = %q, want the default", c.SessionFile)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("max_generations: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig(bad) = nil, want error")
	}

	if _, err := LoadConfig(dir); err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadConfig(dir) = %v, want a read error", err)
	}
}
