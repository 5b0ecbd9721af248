package bank

// Bank is a question bank: category names mapped to ordered questions.
// Categories keep the order they had in the source document.
type Bank struct {
	Categories []Category
}

// Category is one named group of questions inside a bank.
type Category struct {
	Name      string
	Questions []Question
}

// Question is a single prompt with its answer choices and an optional link.
// Link and LinkText are pointers so an explicitly empty value survives a save.
type Question struct {
	Prompt   string   `json:"question" yaml:"question"`
	Choices  []Choice `json:"choices" yaml:"choices"`
	Link     *string  `json:"link,omitempty" yaml:"link,omitempty"`
	LinkText *string  `json:"link_text,omitempty" yaml:"link_text,omitempty"`
}

// Choice is one answer option for a question.
type Choice struct {
	Prompt    string `json:"prompt" yaml:"prompt"`
	IsCorrect bool   `json:"is_correct" yaml:"is_correct"`
}

// CategoryNames returns the category names in bank order.
func (b Bank) CategoryNames() []string {
	names := make([]string, 0, len(b.Categories))
	for _, category := range b.Categories {
		names = append(names, category.Name)
	}
	return names
}

// Category returns the named category, if present.
func (b Bank) Category(name string) (Category, bool) {
	index := b.indexOf(name)
	if index < 0 {
		return Category{}, false
	}
	return b.Categories[index], true
}

// Set replaces the questions of a category, appending it when it is new.
func (b *Bank) Set(name string, questions []Question) {
	if index := b.indexOf(name); index >= 0 {
		b.Categories[index].Questions = questions
		return
	}
	b.Categories = append(b.Categories, Category{Name: name, Questions: questions})
}

// QuestionCount returns the total number of questions across categories.
func (b Bank) QuestionCount() int {
	total := 0
	for _, category := range b.Categories {
		total += len(category.Questions)
	}
	return total
}

func (b Bank) indexOf(name string) int {
	for i, category := range b.Categories {
		if category.Name == name {
			return i
		}
	}
	return -1
}

// CorrectCount returns how many choices are flagged correct.
func (q Question) CorrectCount() int {
	count := 0
	for _, choice := range q.Choices {
		if choice.IsCorrect {
			count++
		}
	}
	return count
}
