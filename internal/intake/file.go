package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ykvlv/nutricalc/internal/domain"
)

var ErrInvalidProfile = errors.New("invalid profile")

// fileProfile is the YAML shape of a profile. Omitted keys keep their defaults.
type fileProfile struct {
	Sex           string   `yaml:"sex"`
	Age           int      `yaml:"age"`
	WeightKg      float64  `yaml:"weight_kg"`
	HeightCm      float64  `yaml:"height_cm"`
	BodyFatPct    *float64 `yaml:"body_fat_pct"`
	Activity      string   `yaml:"activity"`
	Goal          string   `yaml:"goal"`
	Menstruating  bool     `yaml:"menstruating"`
	Pregnant      bool     `yaml:"pregnant"`
	Breastfeeding bool     `yaml:"breastfeeding"`
	Notes         string   `yaml:"notes"`
}

// File reads the profile from a YAML file.
type File struct {
	path string
	log  *zap.Logger
}

// NewFile creates a File source for path.
func NewFile(path string, log *zap.Logger) *File {
	return &File{path: path, log: log}
}

// Profile opens and decodes the file.
func (f *File) Profile(ctx context.Context) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, err
	}
	fh, err := os.Open(f.path)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("open profile: %w", err)
	}
	defer fh.Close()

	u, err := Decode(fh)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("%s: %w", f.path, err)
	}
	if clearFlagsUnlessFemale(&u) {
		f.log.Warn("reproductive flags ignored for non-female profile", zap.String("path", f.path))
	}
	f.log.Debug("profile loaded", zap.String("path", f.path))
	return u, nil
}

// Decode parses a YAML profile. Unknown keys are rejected, and unlike the
// interactive prompt, out-of-range numbers are errors rather than defaults.
func Decode(r io.Reader) (domain.UserProfile, error) {
	def := domain.DefaultProfile()
	fp := fileProfile{
		Sex:      def.Sex.String(),
		Age:      def.Age,
		WeightKg: def.WeightKg,
		HeightCm: def.HeightCm,
		Activity: def.Activity.String(),
		Goal:     def.Goal.String(),
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fp); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.UserProfile{}, fmt.Errorf("%w: empty document", ErrInvalidProfile)
		}
		return domain.UserProfile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := fp.validate(); err != nil {
		return domain.UserProfile{}, err
	}

	return domain.UserProfile{
		Sex:        domain.ParseSex(fp.Sex),
		Age:        fp.Age,
		WeightKg:   fp.WeightKg,
		HeightCm:   fp.HeightCm,
		BodyFatPct: fp.BodyFatPct,
		Activity:   domain.ParseActivity(fp.Activity),
		Goal:       domain.ParseGoal(fp.Goal),
		Status: domain.ReproductiveStatus{
			Menstruating:  fp.Menstruating,
			Pregnant:      fp.Pregnant,
			Breastfeeding: fp.Breastfeeding,
		},
		Notes: fp.Notes,
	}, nil
}

func (fp fileProfile) validate() error {
	switch {
	case !finite(fp.WeightKg), !finite(fp.HeightCm), fp.BodyFatPct != nil && !finite(*fp.BodyFatPct):
		return fmt.Errorf("%w: numbers must be finite", ErrInvalidProfile)
	case fp.Age <= 0:
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	case fp.WeightKg <= 0:
		return fmt.Errorf("%w: weight_kg must be positive", ErrInvalidProfile)
	case fp.HeightCm <= 0:
		return fmt.Errorf("%w: height_cm must be positive", ErrInvalidProfile)
	case fp.BodyFatPct != nil && (*fp.BodyFatPct < 0 || *fp.BodyFatPct > 100):
		return fmt.Errorf("%w: body_fat_pct must be within 0..100", ErrInvalidProfile)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
