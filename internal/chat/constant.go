package chat

// Fixed user-facing strings.
const (
	FallbackReply    = "I'm having trouble understanding. Please try again."
	ApologyReply     = "Sorry, something went wrong on my end."
	EmptyInputPrompt = "I'm listening! Please send a message."

	HelpMessage = "I'm here to assist you with your queries. Just type a message, and I'll respond!"

	// WelcomeTemplate takes the sender's first name.
	WelcomeTemplate = "Hello %s! I'm your personal assistant bot. Feel free to chat with me!"
)

// Generation parameters sent with every completion request.
const (
	DefaultTemperature = 0.5
	DefaultMaxTokens   = 200
)
