package registry

import (
	"context"
	"testing"
)

type stubFrontend struct{ id string }

func (s stubFrontend) ID() string { return s.id }
func (s stubFrontend) Title() string { return "Stub " + s.id }
func (s stubFrontend) Play(context.Context, PlayOptions) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return stubFrontend{"stub-b"} })
	Register("stub-a", func() Frontend { return stubFrontend{"stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist")
	}
	if Exists("missing") {
		t.Error("missing should not exist")
	}

	f, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.ID() != "stub-a" {
		t.Errorf("ID = %q, want stub-a", f.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown frontend should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return stubFrontend{"stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Frontend { return stubFrontend{"stub-dup"} })
}
