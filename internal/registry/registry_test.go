package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	var got Options
	Register("stub-a", "Stub A", func(opts Options) (Game, error) {
		got = opts
		return &stubGame{id: "stub-a"}, nil
	})

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}
	if Title("stub-a") != "Stub A" {
		t.Errorf("Title() = %q, expected %q", Title("stub-a"), "Stub A")
	}

	g, err := Create("stub-a", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q", g.ID())
	}
	if got.Difficulty != "hard" {
		t.Errorf("factory should receive options, got %+v", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game", Options{}); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
	if Title("no-such-game") != "no-such-game" {
		t.Error("Title() should fall back to the ID")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("bad config")
	Register("stub-broken", "Broken", func(Options) (Game, error) {
		return nil, boom
	})

	_, err := Create("stub-broken", Options{})
	if !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected to wrap %v", err, boom)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", "Z", func(Options) (Game, error) { return &stubGame{}, nil })
	Register("stub-b", "B", func(Options) (Game, error) { return &stubGame{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
