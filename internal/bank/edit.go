package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory indicates the category is not in the bank.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrIndexOutOfRange indicates the question index does not exist.
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrLastQuestion indicates a delete would leave a category empty.
	ErrLastQuestion = errors.New("cannot delete the last question in a category")
)

// DeleteQuestion removes one question from a category.
// The bank is left unchanged when the question is the only one in its category.
func (b *Bank) DeleteQuestion(category string, index int) error {
	position := b.indexOf(category)
	if position < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	questions := b.Categories[position].Questions
	if index < 0 || index >= len(questions) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if len(questions) <= 1 {
		return ErrLastQuestion
	}
	remaining := make([]Question, 0, len(questions)-1)
	remaining = append(remaining, questions[:index]...)
	remaining = append(remaining, questions[index+1:]...)
	b.Categories[position].Questions = remaining
	return nil
}

// CategorySummary is the per-category overview printed by the list command.
type CategorySummary struct {
	Name      string
	Questions int
	Invalid   int
}

// Summary reports question and invalid-question counts per category in bank order.
func (b Bank) Summary() []CategorySummary {
	summaries := make([]CategorySummary, 0, len(b.Categories))
	for _, category := range b.Categories {
		summary := CategorySummary{Name: category.Name, Questions: len(category.Questions)}
		for _, question := range category.Questions {
			if question.CorrectCount() != 1 {
				summary.Invalid++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
