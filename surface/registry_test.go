// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"testing"
)

func recorderFactory(opts Options) (Surface, error) {
	return NewRecorder(opts.Width, opts.Height), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("rec", 50, recorderFactory, nil)

	b, ok := r.Get("rec")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if b.Name != "rec" || b.Priority != 50 {
		t.Errorf("Get = {%s %d}, want {rec 50}", b.Name, b.Priority)
	}
	if !b.Available() {
		t.Error("nil availability should mean always available")
	}

	// Re-registering replaces.
	r.Register("rec", 5, recorderFactory, nil)
	if b, _ := r.Get("rec"); b.Priority != 5 {
		t.Errorf("Priority after overwrite = %d, want 5", b.Priority)
	}

	r.Unregister("rec")
	if _, ok := r.Get("rec"); ok {
		t.Error("backend should not exist after Unregister")
	}
}

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, recorderFactory, nil)
	r.Register("high", 100, recorderFactory, nil)
	r.Register("off", 200, recorderFactory, func() bool { return false })
	r.Register("b-mid", 50, recorderFactory, nil)
	r.Register("a-mid", 50, recorderFactory, nil)

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"List", r.List(), []string{"off", "high", "a-mid", "b-mid", "low"}},
		{"Available", r.Available(), []string{"high", "a-mid", "b-mid", "low"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestRegistryNewSurfacePicksHighestPriority(t *testing.T) {
	r := NewRegistry()
	var selected string
	for _, e := range []struct {
		name     string
		priority int
	}{{"low", 10}, {"high", 100}} {
		r.Register(e.name, e.priority, func(opts Options) (Surface, error) {
			selected = e.name
			return recorderFactory(opts)
		}, nil)
	}

	s, err := r.NewSurface(DefaultOptions(64, 32))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	defer s.Close()

	if selected != "high" {
		t.Errorf("selected = %s, want high", selected)
	}
	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", s.Width(), s.Height())
	}
}

func TestRegistryNewSurfaceFallsBack(t *testing.T) {
	r := NewRegistry()
	failure := errors.New("no device")
	r.Register("broken", 100, func(Options) (Surface, error) { return nil, failure }, nil)
	r.Register("rec", 0, recorderFactory, nil)

	s, err := r.NewSurface(DefaultOptions(8, 8))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if _, ok := s.(*Recorder); !ok {
		t.Errorf("NewSurface returned %T, want *Recorder", s)
	}

	r.Unregister("rec")
	if _, err := r.NewSurface(DefaultOptions(8, 8)); !errors.Is(err, failure) {
		t.Errorf("NewSurface error = %v, want factory error", err)
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewSurface(DefaultOptions(8, 8)); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry error = %v, want ErrNoBackendAvailable", err)
	}

	_, err := r.NewSurfaceByName("vulkan", DefaultOptions(8, 8))
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "vulkan" {
		t.Errorf("error = %v, want BackendNotFoundError{vulkan}", err)
	}

	r.Register("metal", 1, recorderFactory, func() bool { return false })
	_, err = r.NewSurfaceByName("metal", DefaultOptions(8, 8))
	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("error = %v, want BackendUnavailableError", err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	if got := r.Available(); !slices.Equal(got, []string{"image", "recorder"}) {
		t.Errorf("Available = %v, want [image recorder]", got)
	}

	s, err := r.NewSurface(DefaultOptions(100, 50))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("default surface is %T, want *ImageSurface", s)
	}

	// The image backend rejects invalid sizes; the recorder accepts them.
	s2, err := r.NewSurface(DefaultOptions(0, 0))
	if err != nil {
		t.Fatalf("NewSurface(0x0): %v", err)
	}
	if _, ok := s2.(*Recorder); !ok {
		t.Errorf("0x0 surface is %T, want *Recorder", s2)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&BackendNotFoundError{Name: "vulkan"}, "surface: backend not found: vulkan"},
		{&BackendUnavailableError{Name: "metal"}, "surface: backend unavailable: metal"},
		{&InvalidSizeError{Width: -1, Height: 3}, "surface: invalid size -1x3"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
