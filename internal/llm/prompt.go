package llm

// SystemPrompt locks the model's output to exactly a bare JSON array of
// transaction objects. Any deviation (fences, commentary, extra prose) is
// treated as a schema failure by the decoder, so the instruction is blunt.
const SystemPrompt = `You are a bank-statement parser.
Output exactly and only a JSON array of transaction objects - no markdown fences, no commentary:

[
  {
    "date": "YYYY-MM-DD",
    "description": "...",
    "amount": -123.45
  },
  ...
]

- date: ISO format (YYYY-MM-DD)
- description: merchant or description text
- amount: signed number (negative for debits, positive for credits)

Discard any UI chrome, menus, headers, footers - return nothing else.`

// Message is one chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildMessages pairs the locked system instruction with the raw OCR text
// verbatim as the user turn.
func BuildMessages(rawText string) []Message {
	return []Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: rawText},
	}
}
