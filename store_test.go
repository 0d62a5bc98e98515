package travelbuddy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDirStore_RoundTrip(t *testing.T) {
	store := NewDirStore(t.TempDir())

	in := map[string]string{"city": "Jaipur", "country": "India"}
	if err := store.Save("doc", in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var out map[string]string
	ok, err := store.Load("doc", &out)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() ok = false, want true")
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Load() = %v, want %v", out, in)
	}
}

func TestDirStore_MissingKey(t *testing.T) {
	store := NewDirStore(t.TempDir())
	var v any
	ok, err := store.Load("nothing", &v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("Load() ok = true for a missing key, want false")
	}
}

func TestDirStore_MalformedContentIsAbsorbed(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "trips.json"), []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	var v []SavedTrip
	ok, err := store.Load("trips", &v)
	if err != nil {
		t.Fatalf("Load() error = %v, want malformed content absorbed", err)
	}
	if ok {
		t.Error("Load() ok = true for malformed content, want false")
	}
}

func TestDirStore_SaveReplacesWholeDocument(t *testing.T) {
	store := NewDirStore(t.TempDir())
	if err := store.Save("doc", map[string]int{"a": 1, "b": 2}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("doc", map[string]int{"c": 3}); err != nil {
		t.Fatal(err)
	}
	var out map[string]int
	if ok, err := store.Load("doc", &out); !ok || err != nil {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	want := map[string]int{"c": 3}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("Load() = %v, want full replace %v", out, want)
	}
}
