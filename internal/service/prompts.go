package service

import "fmt"

const (
	summaryPrompt = "Summarize the following document:\n\n%s"

	flashcardPrompt = "Generate 10 flashcards from the following document. Each flashcard should be a JSON object with 'question', 'answer', and 'difficulty' (EASY, MEDIUM, HARD). Return a JSON array.\n\nDocument:\n%s"

	quizPrompt = `
Generate %d multiple-choice questions (MCQs) from the following document.
Each question should be a JSON object with:
- question: string
- options: array of 4 strings
- correct_option: index (0-3) of the correct option

Return a JSON array.

Document:
%s
`

	chatPrompt = `You are an expert assistant. Answer the following question using ONLY the information from the provided document. If the answer cannot be found in the document, reply with "NOT_FOUND".

Document:
%s

Question:
%s
`

	chatFallbackPrompt = `
You are an expert assistant. The user asked: "%s"
Answer using your own knowledge base if possible. Format any code in markdown code blocks and ensure all responses are well formatted.
`
)

// Fixed replies returned instead of model output.
const (
	SummaryNoText        = "No text found in document."
	SummaryFailed        = "Failed to generate summary."
	SummaryEmpty         = "No summary generated."
	ChatNoAnswer         = "No answer found."
	ChatFallbackEmpty    = "Sorry, I couldn't get an answer."
	ChatGatewayFailure   = "**Sorry, I couldn't get an answer.**"
	flashcardsPerRequest = 10
)

func buildQuizPrompt(text string, n int) string {
	return fmt.Sprintf(quizPrompt, n, text)
}

func buildChatPrompt(question, documentText string) string {
	return fmt.Sprintf(chatPrompt, documentText, question)
}
