package fence

import "testing"

func TestLastBeginWins(t *testing.T) {
	f := New()
	first := f.Begin(Page)
	second := f.Begin(Page)

	if f.Accept(Page, first) {
		t.Fatalf("superseded token must be rejected")
	}
	if !f.Accept(Page, second) {
		t.Fatalf("newest token must be accepted")
	}
	// acceptance is not consumption: until another Begin, the newest token
	// stays valid
	if !f.Accept(Page, second) {
		t.Fatalf("newest token stays valid until superseded")
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	f := New()
	page := f.Begin(Page)
	cal := f.Begin(Calendar)
	f.Begin(Page) // supersedes the page request only

	if f.Accept(Page, page) {
		t.Fatalf("page token should be stale")
	}
	if !f.Accept(Calendar, cal) {
		t.Fatalf("calendar token must not be invalidated by page traffic")
	}
}

func TestOutOfOrderCompletion(t *testing.T) {
	f := New()
	older := f.Begin(Page)
	newer := f.Begin(Page)

	// the newer request's response arrives first and is applied
	if !f.Accept(Page, newer) {
		t.Fatalf("newest token must be accepted")
	}
	// the older request completes late; it must be discarded
	if f.Accept(Page, older) {
		t.Fatalf("late response from a superseded request must be discarded")
	}
}
