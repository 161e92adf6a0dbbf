package scenarios

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/physics"
	"github.com/milk9111/carrig/vehicle"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadGarage(t *testing.T) {
	s, err := LoadScenario("garage")
	require.NoError(t, err)

	require.Equal(t, "garage", s.Name)
	require.Equal(t, cp.Vector{X: 0, Y: -10}, s.World.Gravity)
	require.Equal(t, 100.0, s.World.DefaultFriction)
	require.True(t, s.World.Sleep.Enabled)
	require.Equal(t, physics.DefaultGroups(), s.Collision.Groups)
	require.False(t, s.Collision.BonusSensor)
	require.Equal(t, vehicle.DefaultConfig(), s.Vehicle)
	require.Equal(t, vehicle.DefaultDriveConfig(), s.Drive)
	require.Len(t, s.Props, 5)
	require.True(t, s.Bonus.Sleep)
	require.Equal(t, cp.Vector{X: -10, Y: 2}, s.Bonus.Position)
	require.Equal(t, "cruise", s.Autopilot.Script)

	ramp := s.Props[3]
	require.Equal(t, "ramp", ramp.Name)
	require.Equal(t, 0.5, ramp.Angle)
	require.True(t, ramp.Static())
	c, err := ramp.ResolveCategory()
	require.NoError(t, err)
	require.Equal(t, physics.CategoryGround, c)
}

func TestLoadSensorBonusKeepsDefaults(t *testing.T) {
	s, err := LoadScenario("sensor_bonus.yaml")
	require.NoError(t, err)

	require.True(t, s.Collision.BonusSensor)
	require.False(t, s.World.Sleep.Enabled)
	require.Equal(t, -10.0, s.World.Gravity.Y)
	require.Equal(t, 0.5, s.Bonus.Size)
	require.Equal(t, 30.0, s.View.Width)
	require.Equal(t, vehicle.DefaultConfig(), s.Vehicle)

	kinds := map[string]bool{}
	for _, p := range s.Props {
		kinds[p.Kind] = true
	}
	require.True(t, kinds[KindPentagon])
}

func TestParseRejectsInvalidScenario(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"bonus group overlaps", "collision:\n  groups:\n    bonus: 5\n", physics.ErrGroupNotSingleBit},
		{"lopsided wheels", "vehicle:\n  wheel_offsets: [-0.5, 0.6]\n", vehicle.ErrAsymmetricWheels},
		{"unknown prop kind", "props:\n  - name: x\n    kind: star\n", ErrInvalidProp},
		{"unknown category", "props:\n  - name: x\n    kind: circle\n    radius: 1\n    category: lava\n", physics.ErrUnknownCategory},
		{"zero drive", "drive:\n  torque: 0\n", vehicle.ErrInvalidDrive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.name, []byte(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseEmptyIsDefault(t *testing.T) {
	s, err := Parse("empty.yaml", nil)
	require.NoError(t, err)
	want := Default()
	want.Name = "empty"
	require.Equal(t, want, s)
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{"'#ff8000'", color.NRGBA{R: 255, G: 128, A: 255}, false},
		{"'#00000080'", color.NRGBA{A: 128}, false},
		{"gold", color.RGBA{R: 255, G: 215, A: 255}, false},
		{"'#12'", nil, true},
		{"'#zzzzzz'", nil, true},
		{"[1, 2]", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, c.Color)
		})
	}

	var unset YAMLColor
	require.Equal(t, color.White, unset.Or(color.White))
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "garage.yaml"), []byte("name: patched\ndrive:\n  torque: 9\n"), 0o644))

	s, err := LoadScenario("garage")
	require.NoError(t, err)
	require.Equal(t, "patched", s.Name)
	require.Equal(t, 9.0, s.Drive.Torque)
	require.Empty(t, s.Props)

	_, ok := ModTime("garage")
	require.True(t, ok)
	_, ok = ModTime("sensor_bonus")
	require.False(t, ok)
}

func TestScripts(t *testing.T) {
	src, err := LoadScript("cruise")
	require.NoError(t, err)
	require.Contains(t, string(src), "key")

	_, err = LoadScript("scripts/idle.tengo")
	require.NoError(t, err)

	_, err = LoadScript("missing")
	require.Error(t, err)
}

func TestNames(t *testing.T) {
	require.ElementsMatch(t, []string{"garage", "sensor_bonus"}, Names())
	require.Equal(t, "cruise", NameOf("scenarios/scripts/cruise.tengo"))
}
