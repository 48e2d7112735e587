package extractor

// Log prefixes
const (
	LogPrefixExtract = "internal.smartfill.extractor.Extract"
)

// Generation settings
const (
	ExtractTemperature = 0.1
	ExtractMaxTokens   = 1024
	dateFormatISO      = "2006-01-02"
)

// Time context template
const (
	TimeContextTemplate = `

[SYSTEM CONTEXT - current time]
- Today: %s (%s)
- This week: %s to %s
- Tomorrow: %s
- Time zone: %s

Resolve relative days ("today", "tomorrow", "next monday", "in 3 days") against this context.`
)

// System prompt
const (
	SystemPromptExtract = `You fill in an event request form from a short free-text description.
Return exactly one JSON object and nothing else:
{
  "title": string or null,
  "description": string or null,
  "location": string or null,
  "notes": string or null,
  "start": {"date": "YYYY-MM-DD", "time": "HH:MM" or null, "all_day": boolean} or null,
  "end": {"date": "YYYY-MM-DD", "time": "HH:MM" or null, "all_day": boolean} or null,
  "importance_level": integer from 1 to 5 or null,
  "approvers": [{"user_id": string, "required": boolean}] or null
}

RULES:
1. Use null for anything the text does not state. Never invent values.
2. Dates are YYYY-MM-DD.
3. Times are 24h HH:MM on the user's wall clock. Never convert time zones.
4. An event with a date but no time is all-day.
5. Approvers are people whose sign-off is asked for. They are required unless the text says optional.`

	PromptCurrentValuesHeader = "Current form values (the user's own entries, for context):\n"
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgEmptyResponse   = "empty LLM response"
	ErrMsgJSONParseFailed = "failed to parse extraction JSON"
)
