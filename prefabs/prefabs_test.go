package prefabs

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/rampball/mesh"
	"gopkg.in/yaml.v3"
)

func TestLoadTuningDefaults(t *testing.T) {
	tun, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	wantPoints := []mesh.Point{mesh.Pt(0, 0), mesh.Pt(200, 50), mesh.Pt(600, -100), mesh.Pt(1200, 100)}
	if diff := cmp.Diff(wantPoints, tun.Platform.ControlPoints()); diff != "" {
		t.Fatalf("control points mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(mesh.DefaultStrokeOptions, tun.Platform.StrokeOptions()); diff != "" {
		t.Fatalf("stroke options mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"sink_margin", tun.Platform.SinkMargin, 50},
		{"sink_speed", tun.Platform.SinkSpeed, 500},
		{"rise_speed", tun.Platform.RiseSpeed, 500},
		{"spawn_ahead", tun.Platform.SpawnAhead, 2800},
		{"spacing", tun.Platform.Spacing, 1400},
		{"base_x", tun.Platform.BaseX, -400},
		{"default_y", tun.Platform.DefaultY, -100},
		{"player_radius", tun.Player.Radius, 50},
		{"hold_gravity", tun.Player.HoldGravityScale, 10},
		{"release_gravity", tun.Player.ReleaseGravityScale, 1},
		{"spike_speed", tun.Spikes.Speed, 50},
		{"gravity", tun.World.Gravity, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
	if tun.Spikes.Count != 25 || tun.Platform.InitialCount != 2 {
		t.Fatalf("unexpected counts: spikes %d platforms %d", tun.Spikes.Count, tun.Platform.InitialCount)
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.Color
		wantErr bool
	}{
		{"rgb", `c: "#bfff80"`, color.NRGBA{R: 0xbf, G: 0xff, B: 0x80, A: 0xff}, false},
		{"rgba", `c: "10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"short", `c: "#fff"`, nil, true},
		{"not_scalar", `c: [1, 2]`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				C *YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte(tt.in), &doc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if doc.C.Color != tt.want {
				t.Fatalf("got %v, want %v", doc.C.Color, tt.want)
			}
		})
	}
	if ColorOr(nil, color.White) != color.White {
		t.Fatalf("ColorOr should fall back for nil")
	}
}

func TestFixedShapeCopies(t *testing.T) {
	f := FixedShape{mesh.Pt(0, 0), mesh.Pt(1, 1)}
	pts, err := f.Points(3)
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = mesh.Pt(9, 9)
	if f[0] != mesh.Pt(0, 0) {
		t.Fatalf("FixedShape leaked its backing array")
	}
}

func TestScriptShapeRamp(t *testing.T) {
	s, err := NewScriptShape("ramp.tengo", 42)
	if err != nil {
		t.Fatalf("NewScriptShape: %v", err)
	}
	first, err := s.Points(0)
	if err != nil {
		t.Fatalf("Points: %v", err)
	}
	if len(first) != 4 || first[0] != mesh.Pt(0, 0) {
		t.Fatalf("unexpected points %v", first)
	}
	for i := 1; i < len(first); i++ {
		if first[i].X <= first[i-1].X {
			t.Fatalf("x must increase: %v", first)
		}
	}

	again, err := s.Points(0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, again); diff != "" {
		t.Fatalf("same seed and index should repeat (-first +again):\n%s", diff)
	}
}

func TestScriptShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing", `x := 1`},
		{"empty", `points := []`},
		{"not_pairs", `points := [1, 2]`},
		{"not_numeric", `points := [["a", 1]]`},
		{"not_finite", "math := import(\"math\")\npoints := [[0, 0], [math.inf(1), 1]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CompileShape(tt.name, []byte(tt.src), 1)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if _, err := s.Points(0); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}
