package finder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/handiism/tagg/internal/model"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFinder_Paths(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.mp3", "a.MP3", "cover.jpg", "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := New(nil, 0).Paths(dir)
	if err != nil {
		t.Fatalf("Paths() error = %v", err)
	}
	want := []string{filepath.Join(dir, "a.MP3"), filepath.Join(dir, "b.mp3")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestFinder_Extensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp3", "b.flac", "c.ogg")

	got, err := New([]string{"flac", ".OGG"}, 1).Paths(dir)
	if err != nil {
		t.Fatalf("Paths() error = %v", err)
	}
	want := []string{filepath.Join(dir, "b.flac"), filepath.Join(dir, "c.ogg")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestFinder_NoTracks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")

	_, err := New(nil, 0).Find(context.Background(), dir)
	if !errors.Is(err, ErrNoTracks) {
		t.Errorf("Find() error = %v, want ErrNoTracks", err)
	}
}

func TestFinder_MissingDir(t *testing.T) {
	_, err := New(nil, 0).Find(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Find() error = %v, want ErrNotExist", err)
	}
}

func TestFinder_FindKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "03.mp3", "01.mp3", "02.mp3")

	f := New(nil, 2).WithTagReader(func(path string) (model.FileInput, error) {
		return model.FileInput{Path: path, Title: filepath.Base(path)}, nil
	})
	got, err := f.Find(context.Background(), dir)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	var titles []string
	for _, item := range got {
		titles = append(titles, item.Title)
	}
	if diff := cmp.Diff([]string{"01.mp3", "02.mp3", "03.mp3"}, titles); diff != "" {
		t.Errorf("Find() order mismatch (-want +got):\n%s", diff)
	}
}

func TestFinder_ReadError(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp3", "b.mp3")
	boom := errors.New("boom")

	f := New(nil, 1).WithTagReader(func(path string) (model.FileInput, error) {
		if filepath.Base(path) == "b.mp3" {
			return model.FileInput{}, boom
		}
		return model.FileInput{Path: path}, nil
	})
	if _, err := f.Find(context.Background(), dir); !errors.Is(err, boom) {
		t.Errorf("Find() error = %v, want %v", err, boom)
	}
}

func TestFinder_ReadsRealTags(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp3")

	got, err := New(nil, 0).Find(context.Background(), dir)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if diff := cmp.Diff([]model.FileInput{{Path: filepath.Join(dir, "a.mp3")}}, got); diff != "" {
		t.Errorf("Find() mismatch (-want +got):\n%s", diff)
	}
}
