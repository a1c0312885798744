// Package intake collects the user profile for a single run, either by
// prompting on a terminal or by reading a YAML file.
package intake

import (
	"context"

	"github.com/ykvlv/nutricalc/internal/domain"
)

// Source yields the profile for one run.
type Source interface {
	Profile(ctx context.Context) (domain.UserProfile, error)
}

// Defaults is a Source that answers every question with its default.
type Defaults struct{}

// Profile returns domain.DefaultProfile.
func (Defaults) Profile(ctx context.Context) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, err
	}
	return domain.DefaultProfile(), nil
}

// clearFlagsUnlessFemale drops reproductive flags that only make sense for female profiles.
func clearFlagsUnlessFemale(p *domain.UserProfile) bool {
	if p.Sex == domain.Female || p.Status == (domain.ReproductiveStatus{}) {
		return false
	}
	p.Status = domain.ReproductiveStatus{}
	return true
}
