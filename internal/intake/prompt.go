package intake

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/ykvlv/nutricalc/internal/domain"
)

// Prompter asks the profile questions one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
}

// NewPrompter creates a Prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer, log *zap.Logger) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Profile asks every question in order. Blank answers take the default;
// answers that fail to parse print a notice and also take the default.
// End of input counts as a blank answer for every remaining question.
func (p *Prompter) Profile(ctx context.Context) (domain.UserProfile, error) {
	var u domain.UserProfile
	p.println(introText)

	sex, err := p.ask(ctx, askSex, defaultSex)
	if err != nil {
		return u, err
	}
	u.Sex = domain.ParseSex(sex)

	if u.Age, err = askParsed(ctx, p, askAge, defaultAge, domain.ParseAge); err != nil {
		return u, err
	}
	if u.WeightKg, err = askParsed(ctx, p, askWeight, defaultWeight, domain.ParseMeasure); err != nil {
		return u, err
	}
	if u.HeightCm, err = askParsed(ctx, p, askHeight, defaultHeight, domain.ParseMeasure); err != nil {
		return u, err
	}
	if u.BodyFatPct, err = askParsed(ctx, p, askBodyFat, "", domain.ParseBodyFat); err != nil {
		return u, err
	}

	activity, err := p.ask(ctx, askActivity, defaultActivity)
	if err != nil {
		return u, err
	}
	u.Activity = domain.ParseActivity(activity)

	goal, err := p.ask(ctx, askGoal, defaultGoal)
	if err != nil {
		return u, err
	}
	u.Goal = domain.ParseGoal(goal)

	if u.Sex == domain.Female {
		if u.Status, err = p.askStatus(ctx); err != nil {
			return u, err
		}
	}

	if u.Notes, err = p.ask(ctx, askNotes, ""); err != nil {
		return u, err
	}

	p.log.Debug("profile collected",
		zap.Stringer("sex", u.Sex),
		zap.Int("age", u.Age),
		zap.Stringer("activity", u.Activity),
		zap.Stringer("goal", u.Goal),
	)
	return u, nil
}

func (p *Prompter) askStatus(ctx context.Context) (domain.ReproductiveStatus, error) {
	var st domain.ReproductiveStatus
	m, err := p.ask(ctx, askMenstruating, defaultMenstruating)
	if err != nil {
		return st, err
	}
	pr, err := p.ask(ctx, askPregnant, defaultPregnant)
	if err != nil {
		return st, err
	}
	b, err := p.ask(ctx, askBreastfeeding, defaultBreastfeeding)
	if err != nil {
		return st, err
	}
	st.Menstruating = domain.ParseYesNo(m)
	st.Pregnant = domain.ParseYesNo(pr)
	st.Breastfeeding = domain.ParseYesNo(b)
	return st, nil
}

// askParsed asks a question and parses the answer, falling back to the parsed default.
func askParsed[T any](ctx context.Context, p *Prompter, question, def string, parse func(string) (T, error)) (T, error) {
	var zero T
	answer, err := p.ask(ctx, question, def)
	if err != nil {
		return zero, err
	}
	v, err := parse(answer)
	if err == nil {
		return v, nil
	}
	p.log.Debug("invalid answer", zap.String("question", question), zap.Error(err))
	p.println(invalidText)
	if v, err = parse(def); err != nil {
		return zero, nil
	}
	return v, nil
}

// ask prints the question and returns the trimmed answer, or def if the answer is blank.
func (p *Prompter) ask(ctx context.Context, question, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if def != "" {
		p.printf("%s [default: %s]: ", question, def)
	} else {
		p.printf("%s: ", question)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	line = strings.TrimSpace(line)
	if errors.Is(err, io.EOF) && line == "" {
		// Keep transcripts readable when stdin is a pipe.
		p.println("")
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}
