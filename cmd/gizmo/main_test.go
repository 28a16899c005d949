package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spaghettifunk/gizmo/engine/math"
	"github.com/spaghettifunk/gizmo/engine/pixfont"
)

// runCmd runs the tool against a config file that does not exist so only the
// defaults apply.
func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cfg := filepath.Join(t.TempDir(), "none.toml")
	code := run(append([]string{"-config", cfg}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"nope"}, 2},
		{"help flag", []string{"text", "-h"}, 2},
		{"missing text", []string{"text"}, 2},
		{"empty text", []string{"text", ""}, 1},
		{"bad vector", []string{"ray", "-origin", "1,2"}, 2},
		{"bad frustum", []string{"frustum", "-near", "0"}, 1},
		{"bench without workers", []string{"bench", "-workers", "0", "x"}, 1},
		{"config", []string{"config"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCmd(t, tt.args...)
			if code != tt.want {
				t.Errorf("exit code = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestRunBadConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-config", t.TempDir(), "config"}, &out, &errOut)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(errOut.String(), "gizmo: ") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestConfigCommand(t *testing.T) {
	code, out, _ := runCmd(t, "config")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"log_level = ", "info", "[font]", "[camera]", "fovy = 67"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextCommand(t *testing.T) {
	w, h, err := pixfont.DefaultAtlas().Measure("Hi")
	if err != nil {
		t.Fatal(err)
	}
	code, out, _ := runCmd(t, "text", "-ink", "#", "-blank", ".", "Hi")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if lines[0] != fmt.Sprintf("measure: %dx%d (success)", w, h) {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "render: success" {
		t.Errorf("second line = %q", lines[1])
	}
	rows := lines[2:]
	if len(rows) != h {
		t.Fatalf("got %d preview rows, want %d", len(rows), h)
	}
	inked := false
	for i, row := range rows {
		if len(row) != w {
			t.Errorf("row %d has width %d, want %d", i, len(row), w)
		}
		if strings.Trim(row, "#.") != "" {
			t.Errorf("row %d has unexpected characters: %q", i, row)
		}
		if strings.Contains(row, "#") {
			inked = true
		}
	}
	if !inked {
		t.Error("preview has no ink")
	}
}

func TestTextCommandIgnoresHostEnv(t *testing.T) {
	t.Setenv("PATH", "/usr/local/sbin:/usr/bin")
	t.Setenv("FAR", "0.05")
	t.Setenv("SIZE", "0")

	code, out, _ := runCmd(t, "text", "é")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(out, "measure: ") || !strings.Contains(out, "(success)") {
		t.Errorf("output = %q", out)
	}
}

func TestTextCommandMultiline(t *testing.T) {
	_, h, err := pixfont.DefaultAtlas().Measure("a\nb")
	if err != nil {
		t.Fatal(err)
	}
	code, out, _ := runCmd(t, "text", `a\nb`)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out, fmt.Sprintf("x%d (success)", h)) {
		t.Errorf("output does not report height %d:\n%s", h, out)
	}
}

func TestTextCommandFailure(t *testing.T) {
	code, out, _ := runCmd(t, "text", "")
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.HasPrefix(out, "measure: 0x0 (failure)") {
		t.Errorf("output = %q", out)
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		in      string
		want    math.Vec3
		wantErr bool
	}{
		{"1,2,3", math.NewVec3(1, 2, 3), false},
		{" -1.5, 0 ,2e1", math.NewVec3(-1.5, 0, 20), false},
		{"1,2", math.Vec3{}, true},
		{"1,2,3,4", math.Vec3{}, true},
		{"a,b,c", math.Vec3{}, true},
		{"", math.Vec3{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseVec3(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRayCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "straight down",
			args: []string{"-origin", "0,5,0", "-dir", "0,-1,0"},
			want: []string{
				"aabb: hit=true",
				"obb: hit=true t=4.0000 face=2 (axis 1, entering)",
				"ground: t=5.0000",
			},
		},
		{
			name: "defaults",
			want: []string{
				"aabb: hit=true",
				"obb: hit=true t=2.0000 face=1 (axis 0, entering)",
				"ground: parallel",
			},
		},
		{
			name: "miss",
			args: []string{"-origin", "5,5,5", "-dir", "1,0,0"},
			want: []string{"aabb: hit=false", "obb: hit=false", "ground: parallel"},
		},
		{
			name: "ground behind",
			args: []string{"-origin", "0,5,0", "-dir", "0,1,0"},
			want: []string{"ground: behind t=-5.0000"},
		},
		{
			name: "from inside",
			args: []string{"-origin", "0,0,0", "-dir", "0,0,1"},
			want: []string{"obb: hit=true t=1.0000 face=-3 (axis 2, leaving)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCmd(t, append([]string{"ray"}, tt.args...)...)
			if code != 0 {
				t.Fatalf("exit code = %d", code)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRayCommandZeroDirection(t *testing.T) {
	code, _, _ := runCmd(t, "ray", "-dir", "0,0,0")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestFrustumCommand(t *testing.T) {
	code, out, _ := runCmd(t, "frustum", "-fovy", "90", "-aspect", "1")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, name := range cornerNames {
		if !strings.Contains(out, "  "+name) {
			t.Errorf("output missing corner %q", name)
		}
	}
	for _, name := range planeNames {
		if !strings.Contains(out, "  "+name) {
			t.Errorf("output missing plane %q", name)
		}
	}
}

func TestBenchCommand(t *testing.T) {
	code, out, _ := runCmd(t, "bench", "-n", "5", "-workers", "2", "gizmo")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"renders: 5 of ", " on 2 workers", "total: ", "average (last 30): ", "rate: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
