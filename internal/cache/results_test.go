package cache

import (
	"errors"
	"testing"
)

func TestResultsTiers(t *testing.T) {
	dir := t.TempDir()

	// Written by one process...
	if err := NewResults(dir, 4).Put("hand.png", []byte("png")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// ...and read by another with a cold memory tier.
	r := NewResults(dir, 4)
	tests := []Source{FromDisk, FromMemory}
	for _, want := range tests {
		data, src, err := r.Get("hand.png")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if src != want || string(data) != "png" {
			t.Errorf("Get = %q from %v, want png from %v", data, src, want)
		}
	}
}

func TestResultsMiss(t *testing.T) {
	r := NewResults(t.TempDir(), 4)
	data, src, err := r.Get("nothing.png")
	if err != nil || src != Miss || data != nil {
		t.Errorf("Get = %v, %v, %v, want nil, Miss, nil", data, src, err)
	}

	if _, _, err := r.Get("../up"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Get invalid: err = %v, want ErrInvalidName", err)
	}
}

func TestResultsWithoutMemory(t *testing.T) {
	r := NewResults(t.TempDir(), 0)
	if err := r.Put("a.png", []byte("x")); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if _, src, _ := r.Get("a.png"); src != FromDisk {
			t.Errorf("source = %v, want disk", src)
		}
	}
	if r.Stats() != (Stats{}) {
		t.Errorf("Stats = %+v, want zero", r.Stats())
	}
}

func TestResultsRemove(t *testing.T) {
	r := NewResults(t.TempDir(), 4)
	if err := r.Put("a.png", []byte("x")); err != nil {
		t.Fatal(err)
	}

	if err := r.Remove("a.png"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, src, _ := r.Get("a.png"); src != Miss {
		t.Errorf("source after Remove = %v, want miss", src)
	}
	if err := r.Remove("a.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove: err = %v, want ErrNotFound", err)
	}
}

func TestSourceString(t *testing.T) {
	for src, want := range map[Source]string{Miss: "miss", FromMemory: "memory", FromDisk: "disk"} {
		if got := src.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", src, got, want)
		}
	}
}
