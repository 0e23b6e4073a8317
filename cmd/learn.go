package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mentora/internal/evaluator"
	"github.com/abhisek/mentora/internal/goals"
	"github.com/abhisek/mentora/internal/llm"
	"github.com/abhisek/mentora/internal/resources"
	"github.com/abhisek/mentora/internal/session"
	"github.com/abhisek/mentora/internal/store"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E")).Bold(true)
	goalStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var learnCmd = &cobra.Command{
	Use:   "learn <topic-id>",
	Short: "Start an interactive tutoring session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		topicID := args[0]
		userID, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to canned content; evaluation quality will be limited.")
			provider = llm.NewMockProvider()
		}

		orch := session.NewOrchestrator(
			session.NewRegistry(st.ProgressRepo()),
			goals.NewService(provider, st, goals.DefaultConfig()),
			evaluator.New(provider, evaluator.DefaultConfig()),
			resources.NewStaticFinder(),
			st.TopicRepo(),
			st.EventRepo(),
		)

		return runLearnLoop(ctx, orch, userID, topicID)
	},
}

func init() {
	learnCmd.Flags().StringP("user", "u", "learner", "Learner ID for progress tracking")
}

// runLearnLoop drives the orchestrator from stdin until the session
// completes or input ends.
func runLearnLoop(ctx context.Context, orch *session.Orchestrator, userID, topicID string) error {
	start, err := orch.StartSession(ctx, userID, topicID)
	if err != nil {
		return err
	}

	for _, msg := range start.Messages {
		fmt.Println(goalStyle.Render(msg))
	}
	fmt.Println()
	printQuestion(start.CurrentQuestion, start.Info)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		if answer == "quit" || answer == "exit" {
			fmt.Println(dimStyle.Render("See you next time!"))
			return nil
		}

		result, err := orch.ProcessAnswer(ctx, userID, topicID, answer)
		var notFound *session.ErrSessionNotFound
		if errors.As(err, &notFound) {
			fmt.Println(dimStyle.Render("Session is over. Run `mentora learn` again to start fresh."))
			return nil
		}
		if err != nil {
			return err
		}

		printEvaluation(result.Evaluation)
		if result.Resources != nil {
			printResources(result.Resources)
		}

		// Incorrect answers pause on the feedback options before moving on.
		if !result.Evaluation.IsCorrect {
			result, err = promptFeedback(ctx, scanner, orch, userID, topicID, result.Evaluation.Options)
			if err != nil {
				return err
			}
		}

		if done := printTurnOutcome(result); done {
			return nil
		}
	}
	return scanner.Err()
}

// promptFeedback asks the learner to pick a feedback option and resolves it.
func promptFeedback(ctx context.Context, scanner *bufio.Scanner, orch *session.Orchestrator, userID, topicID string, options []string) (*session.TurnResult, error) {
	for i, opt := range options {
		fmt.Printf("  %d) %s\n", i+1, opt)
	}
	fmt.Print(dimStyle.Render("> "))

	choice := evaluator.OptionGotIt
	if scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "2" || strings.EqualFold(input, evaluator.OptionExplain) {
			choice = evaluator.OptionExplain
		}
	}

	result, err := orch.HandleFeedbackOption(ctx, userID, topicID, choice)
	if err != nil {
		return nil, err
	}

	if result.Explanation != nil {
		fmt.Println()
		fmt.Println(result.Explanation.Text)
		if result.Explanation.Resources != nil {
			printResources(result.Explanation.Resources)
		}
	}
	return result, nil
}

// printTurnOutcome renders goal switches, the next question or the final
// summary. Returns true when the session is over.
func printTurnOutcome(result *session.TurnResult) bool {
	if result.GoalCompleted != nil {
		fmt.Println()
		fmt.Println(correctStyle.Render(fmt.Sprintf("Goal complete: %s (%d%% accuracy)",
			result.GoalCompleted.Title, result.GoalCompleted.Performance.AccuracyPercent)))
	}

	if result.SessionCompleted != nil {
		printSummary(result.SessionCompleted)
		return true
	}

	if result.NextQuestion != nil {
		fmt.Println()
		printQuestion(result.NextQuestion, result.Info)
	} else if result.Info != nil {
		fmt.Println(dimStyle.Render("Try that one again."))
		fmt.Print(dimStyle.Render("> "))
	}
	return false
}

func printQuestion(q *session.QuestionView, info *session.Info) {
	if info != nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf("[%s — question %d of %d]", q.Goal, info.QuestionNumber, info.TotalQuestions)))
	}
	fmt.Println(q.Question)
	fmt.Print(dimStyle.Render("> "))
}

func printEvaluation(ev *evaluator.Evaluation) {
	fmt.Println()
	if ev.BubbleColor == "green" {
		fmt.Println(correctStyle.Render(fmt.Sprintf("Correct (%d%%)", ev.ScorePercent)))
	} else {
		fmt.Println(incorrectStyle.Render(fmt.Sprintf("Not quite (%d%%, %s)", ev.ScorePercent, ev.ErrorType)))
	}
	fmt.Println(ev.Feedback)
}

func printResources(rs *resources.ResourceSet) {
	fmt.Println(dimStyle.Render("Some material that might help:"))
	for _, v := range rs.Videos {
		fmt.Println(dimStyle.Render("  video:   " + v))
	}
	for _, a := range rs.Articles {
		fmt.Println(dimStyle.Render("  article: " + a))
	}
}

func printSummary(s *goals.SessionSummary) {
	fmt.Println()
	fmt.Println(goalStyle.Render("Session complete — " + s.Topic))
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("Goals:    %d of %d\n", s.CompletedGoals, s.TotalGoals)
	fmt.Printf("Accuracy: %d%% (%d/%d)\n", s.Overall.AccuracyPercent, s.Overall.CorrectAnswers, s.Overall.TotalQuestions)
	fmt.Printf("Time:     %d min\n", s.TimeSpentMinutes)
	fmt.Printf("Stars:    %s\n", strings.Repeat("★", s.StarRating)+strings.Repeat("☆", 3-s.StarRating))

	if len(s.LearningGaps) > 0 {
		fmt.Println("\nWorth another look:")
		for _, gap := range s.LearningGaps {
			fmt.Println("  - " + gap)
		}
	}
	if len(s.Recommendations) > 0 {
		fmt.Println("\nNext steps:")
		for _, rec := range s.Recommendations {
			fmt.Println("  - " + rec)
		}
	}
}
