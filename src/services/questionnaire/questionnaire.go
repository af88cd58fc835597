// Package questionnaire holds the ordered skills assessment prompts.
// Question order is feature column order in the training data.
package questionnaire

import (
	"fmt"

	"Backend-Career-Advisor/src/models"
)

var prompts = []string{
	"What is your level of expertise in database design, SQL, and data management principles?",
	"How proficient are you in understanding CPU architecture, memory systems, and hardware components?",
	"Rate your experience with implementing and managing distributed systems and parallel processing.",
	"How skilled are you in network protocols, configuration, and troubleshooting?",
	"Rate your ability to conduct digital investigations and recover electronic evidence.",
	"What is your proficiency level in implementing cybersecurity measures and threat detection?",
	"How experienced are you in developing and deploying software applications?",
	"Rate your proficiency in writing efficient code across multiple programming languages.",
	"How experienced are you in leading technical projects and managing development teams?",
	"Rate your ability to explain complex technical concepts to diverse audiences.",
	"What is your skill level in developing and implementing machine learning models?",
	"How proficient are you in software design patterns and development methodologies?",
	"Rate your expertise in statistical analysis and data visualization techniques.",
	"How skilled are you in identifying and resolving complex technical issues?",
	"What is your proficiency level in creating professional digital designs and graphics?",
}

// Size is the number of questions and the feature vector length.
var Size = len(prompts)

// Key is the form field name of question i.
func Key(i int) string {
	return fmt.Sprintf("question_%d", i)
}

func Questions() []models.Question {
	out := make([]models.Question, len(prompts))
	for i, p := range prompts {
		out[i] = models.Question{Index: i, Key: Key(i), Prompt: p}
	}
	return out
}

// Prompt returns the text of question i, or "" when out of range.
func Prompt(i int) string {
	if i < 0 || i >= len(prompts) {
		return ""
	}
	return prompts[i]
}
