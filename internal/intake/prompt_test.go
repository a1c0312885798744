package intake

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ykvlv/nutricalc/internal/domain"
)

func collect(t *testing.T, answers ...string) (domain.UserProfile, string) {
	t.Helper()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out, zap.NewNop())
	u, err := p.Profile(context.Background())
	require.NoError(t, err)
	return u, out.String()
}

func TestPrompter_AllDefaults(t *testing.T) {
	u, out := collect(t, "", "", "", "", "", "", "", "")
	require.Equal(t, domain.DefaultProfile(), u)
	require.Contains(t, out, "Sex (male/female) [default: male]: ")
	require.NotContains(t, out, askPregnant)
}

func TestPrompter_EmptyInputUsesDefaults(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out, zap.NewNop())
	u, err := p.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.DefaultProfile(), u)
}

func TestPrompter_FemaleQuestions(t *testing.T) {
	u, out := collect(t,
		"Female", "28", "61.5", "168", "24", "moderate", "gain",
		"no", "yes", "no", "prenatal vitamins",
	)
	require.Equal(t, domain.Female, u.Sex)
	require.Equal(t, 28, u.Age)
	require.Equal(t, 61.5, u.WeightKg)
	require.Equal(t, 168.0, u.HeightCm)
	require.NotNil(t, u.BodyFatPct)
	require.Equal(t, 24.0, *u.BodyFatPct)
	require.Equal(t, domain.Moderate, u.Activity)
	require.Equal(t, domain.Gain, u.Goal)
	require.Equal(t, domain.ReproductiveStatus{Pregnant: true}, u.Status)
	require.Equal(t, "prenatal vitamins", u.Notes)
	require.Contains(t, out, askBreastfeeding)
}

func TestPrompter_FemaleStatusDefaults(t *testing.T) {
	u, _ := collect(t, "female", "", "", "", "", "", "", "", "", "", "")
	require.Equal(t, domain.ReproductiveStatus{Menstruating: true}, u.Status)
}

func TestPrompter_InvalidAnswersFallBack(t *testing.T) {
	u, out := collect(t, "male", "abc", "-70", "0", "150", "jogging", "shred", "")
	require.Equal(t, 30, u.Age)
	require.Equal(t, 70.0, u.WeightKg)
	require.Equal(t, 175.0, u.HeightCm)
	require.Nil(t, u.BodyFatPct)
	// Unknown enums are not input errors: they classify to the fallback.
	require.Equal(t, domain.Light, u.Activity)
	require.Equal(t, domain.Maintain, u.Goal)
	require.Equal(t, 4, strings.Count(out, invalidText))
}

func TestPrompter_NonFiniteNumbersFallBack(t *testing.T) {
	u, out := collect(t, "male", "", "nan", "inf", "NaN", "", "", "")
	require.Equal(t, 70.0, u.WeightKg)
	require.Equal(t, 175.0, u.HeightCm)
	require.Nil(t, u.BodyFatPct)
	require.Equal(t, 3, strings.Count(out, invalidText))
}

func TestPrompter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPrompter(strings.NewReader("male\n"), &bytes.Buffer{}, zap.NewNop())
	_, err := p.Profile(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaults(t *testing.T) {
	u, err := Defaults{}.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.DefaultProfile(), u)
}
