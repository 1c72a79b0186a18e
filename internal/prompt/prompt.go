// Package prompt builds the text payloads sent to the completion API.
// Both composers are pure: fixed preamble plus the latest user input.
package prompt

// System is the system message supplied on every completion call.
const System = "You are a supportive assistant."

const fewShotTurn = `
You are a reasoning assistant. Answer questions to the point without being verbose. Examples:

Q: What is the capital of France?
A: Paris.

Q: Why does ice float on water?
A: Ice is less dense than water.

Q: What is 5 + 7?
A: 12.

Now, answer the following:
`

const fewShotSummary = `
You are a reasoning assistant. Summarize the conversation to the point without being verbose in one phrase. Examples:

Q: What is the capital of France?
A: Capital of France

Q: Why does ice float on water?
A: Ice Floating on Water

Q: What is 5 + 7?
A: Result of 5 + 7

Now, answer the following:
`

// Turn composes the prompt for answering the user's latest question. The
// composed text is sent to the model but never stored in history.
func Turn(question string) string {
	return fewShotTurn + "Q: " + question
}

// Summary composes the one-shot prompt that derives a session's topic from
// its first user question.
func Summary(question string) string {
	return fewShotSummary + "Q: " + question
}
