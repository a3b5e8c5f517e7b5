package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
	"github.com/johnquangdev/interview-practice/internal/usecase/question"
	"github.com/johnquangdev/interview-practice/internal/usecase/scoring"
	"github.com/johnquangdev/interview-practice/internal/usecase/session"
	"github.com/johnquangdev/interview-practice/pkg/random"
)

const (
	skipCommand  = "/skip"
	pauseCommand = "/pause"
)

type practiceOptions struct {
	Category   string
	Difficulty string
	Count      int
	Seed       int64
	BankPath   string
	Latency    time.Duration
	Verbose    bool
}

// runPractice drives one session over in/out until it completes or input ends
func runPractice(ctx context.Context, in io.Reader, out io.Writer, o practiceOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	bank := question.NewDefaultBank()
	if o.BankPath != "" {
		var err error
		if bank, err = question.LoadBank(o.BankPath); err != nil {
			return err
		}
	}

	rng := random.New(o.Seed)

	logger := zap.NewNop()
	if o.Verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
			defer logger.Sync()
		}
	}

	settings := entities.InterviewSettings{
		Category:      entities.QuestionCategory(o.Category),
		Difficulty:    entities.Difficulty(o.Difficulty),
		QuestionCount: o.Count,
	}.Clamp(session.DefaultMinQuestions, session.DefaultMaxQuestions)
	if err := settings.Validate(); err != nil {
		return err
	}

	scorer := scoring.NewGuard(scoring.NewMockScorer(rng, o.Latency), "mock", scoring.DefaultTimeout, logger)
	ctrl := session.NewController(nil, question.NewSelector(bank, rng), scorer, session.WithLogger(logger))
	if err := ctrl.Start(ctx, settings); err != nil {
		return err
	}

	snap := ctrl.Snapshot()
	fmt.Fprintf(out, "%s\n%d questions, about %d minutes. Type %s to skip, %s to pause.\n\n",
		snap.Title, len(snap.Questions), int(settings.Duration().Minutes()), skipCommand, pauseCommand)

	scanner := bufio.NewScanner(in)
	for {
		q, err := ctrl.CurrentQuestion()
		if err != nil {
			break
		}

		s := ctrl.Snapshot()
		fmt.Fprintf(out, "Question %d/%d [%s]\n%s\n> ", s.CurrentIndex+1, len(s.Questions), q.Type, q.Text)
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nSession abandoned.")
			return scanner.Err()
		}

		switch line := strings.TrimSpace(scanner.Text()); line {
		case skipCommand:
			if err := ctrl.SkipCurrent(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Skipped.")

		case pauseCommand:
			if err := ctrl.Pause(); err != nil {
				return err
			}
			fmt.Fprint(out, "Paused. Press Enter to resume.")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\nSession abandoned.")
				return scanner.Err()
			}
			if err := ctrl.Resume(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Resumed.")

		default:
			fmt.Fprintln(out, "Analyzing your response...")
			res, err := ctrl.SubmitResponse(ctx, line)
			if err != nil {
				return err
			}
			printResult(out, res, ctrl.Snapshot())
		}
		fmt.Fprintln(out)
	}

	summary, err := ctrl.Summary()
	if err != nil {
		return err
	}
	printSummary(out, summary)
	return nil
}

func printResult(out io.Writer, res *session.SubmitResult, s *entities.Session) {
	switch {
	case res.Response.ID == "":
		fmt.Fprintln(out, "Empty answer, question skipped.")
	case res.Score == nil:
		fmt.Fprintln(out, "Answer recorded. Scoring is unavailable right now.")
	default:
		fmt.Fprintf(out, "Score: %d/10 (%s). Running score: %.0f\n", res.Score.OverallScore, res.Score.Rating(), s.RunningScore)
		for _, tip := range res.Score.Suggestions {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
	}
}

func printSummary(out io.Writer, s *entities.SessionSummary) {
	rating := s.Rating
	if rating == "" {
		rating = "not rated"
	}
	fmt.Fprintf(out, "Session complete: %s\n", s.Title)
	fmt.Fprintf(out, "Answered %d of %d (%d skipped), %d scored\n", s.AnsweredCount, s.QuestionCount, s.SkippedCount, s.ScoredCount)
	fmt.Fprintf(out, "Average score: %.0f (exact %.2f), %s\n", s.AverageScore, s.RawAverageScore, rating)
	fmt.Fprintf(out, "Time: %s\n", s.FormattedDuration)
}
