package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

const tolerance = 1e-10

func TestToNDCCorners(t *testing.T) {
	screen := NewSize(800, 600)
	cases := []struct {
		name   string
		device Vector2
		want   orb.Point
	}{
		{"top-left", NewVector2(0, 0), orb.Point{-1, 1}},
		{"bottom-right", NewVector2(800, 600), orb.Point{1, -1}},
		{"centre", NewVector2(400, 300), orb.Point{0, 0}},
		{"quarter", NewVector2(200, 450), orb.Point{-0.5, -0.5}},
	}
	for _, c := range cases {
		got, err := ToNDC(c.device, screen)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if math.Abs(got.X()-c.want.X()) > tolerance || math.Abs(got.Y()-c.want.Y()) > tolerance {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestToNDCInvalidDimension(t *testing.T) {
	for _, screen := range []Size{NewSize(0, 600), NewSize(800, 0), NewSize(-5, -5)} {
		_, err := ToNDC(NewVector2(10, 10), screen)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("screen %v: expected ErrInvalidDimension, got %v", screen, err)
		}
	}
}

func TestToDeviceInvertsToNDC(t *testing.T) {
	screen := NewSize(1920, 1080)
	device := NewVector2(123, 987)
	p, err := ToNDC(device, screen)
	if err != nil {
		t.Fatal(err)
	}
	back := ToDevice(p, screen)
	if back.Distance(device) > 1e-9 {
		t.Errorf("expected %v, got %v", device, back)
	}
}

func TestNDCDistanceToMapUnits(t *testing.T) {
	got := NDCDistanceToMapUnits(0.1, 8, 2)
	if math.Abs(got-0.4) > tolerance {
		t.Errorf("expected 0.4, got %v", got)
	}
	if got := NDCDistanceToMapUnits(0, 8, 2); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestIndicatorBounds(t *testing.T) {
	b, err := IndicatorBounds(NewSize(482, 100), NewSize(1000, 500))
	if err != nil {
		t.Fatal(err)
	}
	// half extents 0.482 x 0.2, anchored top-left
	want := orb.Bound{Min: orb.Point{-1, 0.6}, Max: orb.Point{-1 + 2*0.482, 1}}
	if math.Abs(b.Min.X()-want.Min.X()) > tolerance || math.Abs(b.Min.Y()-want.Min.Y()) > tolerance ||
		math.Abs(b.Max.X()-want.Max.X()) > tolerance || math.Abs(b.Max.Y()-want.Max.Y()) > tolerance {
		t.Errorf("expected %v, got %v", want, b)
	}

	if !HitIndicator(orb.Point{-1, 1}, b) {
		t.Error("corner should be inside the indicator")
	}
	if !HitIndicator(orb.Point{-0.5, 0.8}, b) {
		t.Error("interior point should be inside the indicator")
	}
	if HitIndicator(orb.Point{0, 0}, b) {
		t.Error("screen centre should be outside the indicator")
	}

	if _, err := IndicatorBounds(NewSize(482, 100), NewSize(0, 0)); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestCornerBounds(t *testing.T) {
	b, err := CornerBounds(NewSize(100, 50), NewSize(1000, 500))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(b.Min.X()-0.8) > tolerance || math.Abs(b.Max.Y()+0.8) > tolerance {
		t.Errorf("unexpected corner bounds %v", b)
	}
}

func TestFitScale(t *testing.T) {
	// wide screen, square map: height limits
	sx, sy := FitScale(NewSize(2000, 1000), NewSize(500, 500))
	if math.Abs(sy-2) > tolerance || math.Abs(sx-1) > tolerance {
		t.Errorf("wide screen: expected (1, 2), got (%v, %v)", sx, sy)
	}

	// tall screen, square map: width limits
	sx, sy = FitScale(NewSize(1000, 2000), NewSize(500, 500))
	if math.Abs(sx-2) > tolerance || math.Abs(sy-1) > tolerance {
		t.Errorf("tall screen: expected (2, 1), got (%v, %v)", sx, sy)
	}
}

func TestQuadPixelRect(t *testing.T) {
	screen := NewSize(800, 600)
	q := Quad{Center: orb.Point{0, 0}, Width: 1, Height: 1}
	x, y, w, h := q.PixelRect(screen)
	if x != 200 || y != 150 || w != 400 || h != 300 {
		t.Errorf("expected (200,150,400,300), got (%v,%v,%v,%v)", x, y, w, h)
	}

	b, _ := IndicatorBounds(NewSize(80, 60), screen)
	x, y, w, h = QuadFromBound(b).PixelRect(screen)
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 || math.Abs(w-80) > 1e-9 || math.Abs(h-60) > 1e-9 {
		t.Errorf("indicator rect: got (%v,%v,%v,%v)", x, y, w, h)
	}
}

func TestHeading(t *testing.T) {
	cases := []struct {
		name string
		move Vector2
		want float64
	}{
		{"up", NewVector2(0, -1), 0},
		{"right", NewVector2(-1, 0), 90},
		{"down", NewVector2(0, 1), 180},
		{"left", NewVector2(1, 0), 270},
		{"up-right", NewVector2(-1, -1), 45},
	}
	for _, c := range cases {
		got, ok := Heading(c.move)
		if !ok {
			t.Fatalf("%s: expected a heading", c.name)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
	if _, ok := Heading(Vector2{}); ok {
		t.Error("no movement should have no heading")
	}
}

func TestNDCDistance(t *testing.T) {
	got := NDCDistance(orb.Point{-1, -1}, orb.Point{1, 1})
	if math.Abs(got-2*math.Sqrt2) > tolerance {
		t.Errorf("expected %v, got %v", 2*math.Sqrt2, got)
	}
}
