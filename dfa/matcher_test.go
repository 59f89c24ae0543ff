package dfa

import (
	"testing"

	"github.com/Bloeckchengrafik/lieutenant/nfa"
)

// TestMatcherEarlyTermination walks a merged two-command automaton byte by
// byte and watches the candidate set narrow.
func TestMatcherEarlyTermination(t *testing.T) {
	give, err := nfa.Compile[int](`/give\s+\d+`)
	if err != nil {
		t.Fatal(err)
	}
	give.AssociateAccepts(1)
	gamemode, err := nfa.Compile[int](`/gamemode\s+\S+`)
	if err != nil {
		t.Fatal(err)
	}
	gamemode.AssociateAccepts(2)

	d := buildDFA(t, give.Or(gamemode))
	m := d.Matcher()

	// Shared prefix: both commands still possible.
	for _, b := range []byte("/g") {
		if !m.Advance(b) {
			t.Fatalf("unexpected dead matcher at %q", b)
		}
	}
	if !m.CanContinue() {
		t.Error("matcher must be able to continue after shared prefix")
	}
	if m.IsAccepting() {
		t.Error("prefix must not accept")
	}

	// 'i' rules out /gamemode.
	for _, b := range []byte("ive 32") {
		if !m.Advance(b) {
			t.Fatalf("unexpected dead matcher at %q", b)
		}
	}
	if !m.IsAccepting() {
		t.Error("full /give command must accept")
	}
	vals := m.Associations()
	if len(vals) != 1 || vals[0] != 1 {
		t.Errorf("associations = %v, want [1]", vals)
	}

	// A byte with no transition kills the matcher for good.
	if m.Advance('!') {
		t.Error("expected dead matcher on '!'")
	}
	if m.Advance('3') || m.CanContinue() || m.IsAccepting() {
		t.Error("dead matcher must stay dead")
	}
	if m.Associations() != nil {
		t.Error("dead matcher must carry no associations")
	}
}

func TestMatcherOnEmptyDFA(t *testing.T) {
	empty := &DFA[int]{endSet: map[StateID]struct{}{}, pool: newPool()}
	m := empty.Matcher()
	if m.Advance('a') || m.CanContinue() || m.IsAccepting() {
		t.Error("matcher over empty DFA must be dead from the start")
	}
}

func TestMatcherAcceptingMidway(t *testing.T) {
	d := buildDFA(t, nfa.Literal[int]("/a").Or(nfa.Literal[int]("/abc")))
	m := d.Matcher()
	for _, b := range []byte("/a") {
		if !m.Advance(b) {
			t.Fatal("unexpected dead matcher")
		}
	}
	if !m.IsAccepting() {
		t.Error("/a must accept")
	}
	if !m.CanContinue() {
		t.Error("/abc must still be reachable")
	}
	if m.State() == InvalidState {
		t.Error("live matcher must expose its state")
	}
}
