package intake

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ykvlv/nutricalc/internal/domain"
)

const pregnantYAML = `
sex: female
age: 31
weight_kg: 64
height_cm: 166
body_fat_pct: 28.5
activity: active
goal: maintain
pregnant: true
notes: "iron supplement"
`

func TestDecode_Full(t *testing.T) {
	u, err := Decode(strings.NewReader(pregnantYAML))
	require.NoError(t, err)
	require.Equal(t, domain.Female, u.Sex)
	require.Equal(t, 31, u.Age)
	require.Equal(t, 64.0, u.WeightKg)
	require.Equal(t, 166.0, u.HeightCm)
	require.NotNil(t, u.BodyFatPct)
	require.Equal(t, 28.5, *u.BodyFatPct)
	require.Equal(t, domain.Active, u.Activity)
	require.Equal(t, domain.ReproductiveStatus{Pregnant: true}, u.Status)
	require.Equal(t, "iron supplement", u.Notes)
}

func TestDecode_OmittedKeysUseDefaults(t *testing.T) {
	u, err := Decode(strings.NewReader("goal: lose\n"))
	require.NoError(t, err)
	want := domain.DefaultProfile()
	want.Goal = domain.Lose
	require.Equal(t, want, u)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"unknown key":  "sex: male\nshoe_size: 44\n",
		"zero age":     "age: 0\n",
		"neg weight":   "weight_kg: -1\n",
		"zero height":  "height_cm: 0\n",
		"body fat 120": "body_fat_pct: 120\n",
		"bad type":     "age: thirty\n",
		"nan weight":   "weight_kg: .nan\n",
		"inf height":   "height_cm: .inf\n",
		"nan body fat": "body_fat_pct: .NaN\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestFile_ClearsFlagsForMale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sex: male\npregnant: true\n"), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	u, err := NewFile(path, zap.New(core)).Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.ReproductiveStatus{}, u.Status)
	require.Equal(t, 1, logs.FilterMessage("reproductive flags ignored for non-female profile").Len())
}

func TestFile_Missing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop()).Profile(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}
