package geo

import (
	"context"
	"errors"
	"testing"
)

type fakeLocator struct {
	pos Position
	err error
}

func (f fakeLocator) Locate(ctx context.Context) (Position, error) {
	return f.pos, f.err
}

func TestResolveReturnsPosition(t *testing.T) {
	pos := Resolve(context.Background(), fakeLocator{pos: Position{Lat: 52.52, Lon: 13.405}})
	if pos == nil {
		t.Fatalf("expected a position")
	}
	if pos.Lat != 52.52 || pos.Lon != 13.405 {
		t.Fatalf("unexpected position %+v", pos)
	}
}

func TestResolveSwallowsFailures(t *testing.T) {
	if pos := Resolve(context.Background(), fakeLocator{err: errors.New("denied")}); pos != nil {
		t.Fatalf("failure must resolve to nil, got %+v", pos)
	}
	if pos := Resolve(context.Background(), nil); pos != nil {
		t.Fatalf("nil locator must resolve to nil")
	}
}
