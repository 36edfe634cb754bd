package elastic

import (
	"math"
	"testing"
)

func TestComputeUpdate(t *testing.T) {
	track := Rect{X: 0, Y: 0, Width: 200, Height: 48}

	tests := []struct {
		name        string
		x           float64
		wantValue   int
		wantStretch float64
		wantRaw     float64
	}{
		{"inside", 50, 25, 0, 25},
		{"past left edge", -30, 0, 5, -15},
		{"past right edge", 260, 100, -5, 130},
		{"left edge", 0, 0, 0, 0},
		{"right edge", 200, 100, 0, 100},
		{"slightly past left", -3, 0, 0.5, -1.5},
		{"slightly past right", 206, 100, -1, 103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := ComputeUpdate(tt.x, track, DefaultRange)
			if !ok {
				t.Fatal("ComputeUpdate reported no result")
			}
			if u.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", u.Value, tt.wantValue)
			}
			if math.Abs(u.Stretch-tt.wantStretch) > 1e-9 {
				t.Errorf("Stretch = %v, want %v", u.Stretch, tt.wantStretch)
			}
			if math.Abs(u.RawPercent-tt.wantRaw) > 1e-9 {
				t.Errorf("RawPercent = %v, want %v", u.RawPercent, tt.wantRaw)
			}
			if u.Percent < 0 || u.Percent > 100 {
				t.Errorf("Percent = %v, want within [0, 100]", u.Percent)
			}
		})
	}
}

func TestComputeUpdate_OffsetTrack(t *testing.T) {
	track := Rect{X: 100, Width: 400}
	u, ok := ComputeUpdate(300, track, Range{Min: 0, Max: 300})
	if !ok {
		t.Fatal("ComputeUpdate reported no result")
	}
	if u.Value != 150 {
		t.Errorf("Value = %d, want 150", u.Value)
	}
}

func TestComputeUpdate_Unusable(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		track Rect
	}{
		{"zero width", 10, Rect{Width: 0}},
		{"negative width", 10, Rect{Width: -5}},
		{"infinite width", 10, Rect{Width: math.Inf(1)}},
		{"NaN width", 10, Rect{Width: math.NaN()}},
		{"NaN pointer", math.NaN(), Rect{Width: 100}},
		{"infinite pointer and offset", math.Inf(1), Rect{X: math.Inf(1), Width: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ComputeUpdate(tt.x, tt.track, DefaultRange); ok {
				t.Errorf("ComputeUpdate(%v, %+v) reported a result", tt.x, tt.track)
			}
		})
	}
}

func TestComputeUpdate_InfinitePointer(t *testing.T) {
	track := Rect{Width: 100}
	u, ok := ComputeUpdate(math.Inf(1), track, DefaultRange)
	if !ok {
		t.Fatal("ComputeUpdate reported no result")
	}
	if u.Value != 100 || u.Stretch != -MaxStretch {
		t.Errorf("got value %d stretch %v, want 100 and %v", u.Value, u.Stretch, -MaxStretch)
	}
	u, _ = ComputeUpdate(math.Inf(-1), track, DefaultRange)
	if u.Value != 0 || u.Stretch != MaxStretch {
		t.Errorf("got value %d stretch %v, want 0 and %v", u.Value, u.Stretch, MaxStretch)
	}
}

func TestComputeUpdate_Properties(t *testing.T) {
	track := Rect{X: 20, Width: 173}
	ranges := []Range{DefaultRange, {Min: 0, Max: 300}, {Min: -50, Max: 50}, {Min: 7, Max: 8}}

	for _, r := range ranges {
		prev := math.MinInt
		for x := -400.0; x <= 600; x += 0.75 {
			u, ok := ComputeUpdate(x, track, r)
			if !ok {
				t.Fatalf("ComputeUpdate(%v) reported no result", x)
			}
			if u.Value < r.Min || u.Value > r.Max {
				t.Fatalf("range %+v x=%v: value %d out of range", r, x, u.Value)
			}
			if u.Stretch < -MaxStretch || u.Stretch > MaxStretch {
				t.Fatalf("x=%v: stretch %v out of bounds", x, u.Stretch)
			}
			if x >= track.X && x <= track.Right() && u.Stretch != 0 {
				t.Fatalf("x=%v: stretch %v inside the track", x, u.Stretch)
			}
			if x < track.X && u.Stretch <= 0 {
				t.Fatalf("x=%v: stretch %v left of the track, want > 0", x, u.Stretch)
			}
			if x > track.Right() && u.Stretch >= 0 {
				t.Fatalf("x=%v: stretch %v right of the track, want < 0", x, u.Stretch)
			}
			if u.Value < prev {
				t.Fatalf("range %+v x=%v: value %d decreased from %d", r, x, u.Value, prev)
			}
			prev = u.Value

			again, _ := ComputeUpdate(x, track, r)
			if again != u {
				t.Fatalf("x=%v: repeated call gave %+v, then %+v", x, u, again)
			}
		}
	}
}

func TestStretch(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{50, 0},
		{0, 0},
		{100, 0},
		{-3, 1},
		{-15, 5},
		{-1000, 5},
		{106, -2},
		{115, -5},
		{1000, -5},
	}
	for _, tt := range tests {
		if got := Stretch(tt.raw); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Stretch(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestValueAt_Rounding(t *testing.T) {
	tests := []struct {
		percent float64
		r       Range
		want    int
	}{
		{0, DefaultRange, 0},
		{100, DefaultRange, 100},
		{24.6, DefaultRange, 25},
		{24.4, DefaultRange, 24},
		{62.5, Range{Min: 0, Max: 4}, 3}, // 2.5 rounds half up
		{50, Range{Min: 0, Max: 1}, 1},
		{49.9, Range{Min: 0, Max: 1}, 0},
		{50, Range{Min: -3, Max: 0}, -1}, // -1.5 rounds half up
		{-20, DefaultRange, 0},
		{140, DefaultRange, 100},
		{61.3, Range{Min: 0, Max: 300}, 184},
	}
	for _, tt := range tests {
		if got := ValueAt(tt.percent, tt.r); got != tt.want {
			t.Errorf("ValueAt(%v, %+v) = %d, want %d", tt.percent, tt.r, got, tt.want)
		}
	}
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		r       Range
		wantErr bool
	}{
		{DefaultRange, false},
		{Range{Min: -10, Max: -9}, false},
		{Range{Min: 5, Max: 5}, true},
		{Range{Min: 10, Max: 0}, true},
	}
	for _, tt := range tests {
		err := tt.r.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Range%+v.Validate() = %v, wantErr %v", tt.r, err, tt.wantErr)
		}
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: -5, Max: 5}
	for in, want := range map[int]int{-10: -5, -5: -5, 0: 0, 5: 5, 99: 5} {
		if got := r.Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}
