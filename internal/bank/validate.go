package bank

import (
	"fmt"
	"strings"
)

// Issue captures one question that breaks the single-correct-choice rule.
type Issue struct {
	Category string
	Question int
	Message  string
}

// Field names the question in the same form the editor shows it.
func (issue Issue) Field() string {
	return fmt.Sprintf("%s Question %d", issue.Category, issue.Question+1)
}

// ValidationError reports every failing question of a bank.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field(), issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

// MessageExactlyOneCorrect is the issue message for a question without a single correct choice.
const MessageExactlyOneCorrect = "must have exactly one correct answer"

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(category string, question int, message string) {
	collector.issues = append(collector.issues, Issue{Category: category, Question: question, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks that every question in every category has exactly one correct choice.
// It is the same rule the editor page runs before saving.
func Validate(b Bank) error {
	collector := &issueCollector{}
	for _, category := range b.Categories {
		for i, question := range category.Questions {
			if question.CorrectCount() != 1 {
				collector.add(category.Name, i, MessageExactlyOneCorrect)
			}
		}
	}
	return collector.result()
}
