package directory

import (
	"context"
	"iter"
	"strings"

	mentorRepo "skillbridge/database/repository/mentor"
	"skillbridge/models"

	"go.uber.org/zap"
)

// AllSkills disables skill filtering in Search.
const AllSkills = "all"

// Directory answers mentor lookups over an injected repository.
type Directory struct {
	repo   mentorRepo.MentorRepository
	logger *zap.Logger
}

func NewDirectory(repo mentorRepo.MentorRepository, logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{repo: repo, logger: logger}
}

// Search returns the mentors whose name, title or company contains query and
// who carry a skill containing skillFilter, both case-insensitively. An empty
// or "all" filter matches every skill set. Each range over the result re-reads
// the repository and yields mentors in insertion order. A repository failure
// is logged and yields nothing.
func (d *Directory) Search(ctx context.Context, query, skillFilter string) iter.Seq[models.Mentor] {
	q := strings.ToLower(strings.TrimSpace(query))
	skill := normalizeSkill(skillFilter)

	return func(yield func(models.Mentor) bool) {
		mentors, err := d.repo.List(ctx)
		if err != nil {
			d.logger.Error("Directory search failed",
				zap.String("query", query),
				zap.String("skill", skillFilter),
				zap.Error(err),
			)
			return
		}
		for _, m := range mentors {
			if !matches(m, q, skill) {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Matches applies the Search predicate to a single mentor.
func Matches(m models.Mentor, query, skillFilter string) bool {
	return matches(m, strings.ToLower(strings.TrimSpace(query)), normalizeSkill(skillFilter))
}

func (d *Directory) Get(ctx context.Context, id string) (*models.Mentor, error) {
	return d.repo.GetByID(ctx, id)
}

func (d *Directory) UpdateAvailability(ctx context.Context, id string, availability models.Availability) error {
	return d.repo.UpdateAvailability(ctx, id, availability)
}

func normalizeSkill(skill string) string {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == AllSkills {
		return ""
	}
	return skill
}

// matches expects query and skill already lower-cased.
func matches(m models.Mentor, query, skill string) bool {
	if query != "" &&
		!strings.Contains(strings.ToLower(m.Name), query) &&
		!strings.Contains(strings.ToLower(m.Title), query) &&
		!strings.Contains(strings.ToLower(m.Company), query) {
		return false
	}
	if skill == "" {
		return true
	}
	for _, s := range m.Skills {
		if strings.Contains(strings.ToLower(s), skill) {
			return true
		}
	}
	return false
}
