// Package llm builds, sends and validates chat-completion exchanges.
package llm

// SystemInstruction is the fixed system prompt sent with every request.
// The single-line contract is advisory: the model is instructed to comply,
// but the pipeline never enforces it on the way back.
const SystemInstruction = `You write git commit messages in Conventional Commits format.

Produce exactly one line formatted as:

<type>: <summary>

Rules:
- type must be one of: feat, fix, refactor, chore, docs, test, build, ci, perf, style (lowercase)
- summary is in the imperative mood ("add", not "added" or "adds")
- no trailing period
- no body, no extra lines: output the single line only
- if the diff contains multiple small changes, separate them with semicolons in the summary
- keep the whole line at or under about 72 characters
- no scope in parentheses, no emoji, no issue references, no code blocks

Output only the commit message line, nothing else.`
