package assistant

// Canned turns shown to the visitor. Each failure surfaces as exactly one of these.
const (
	WelcomeText = "Hello! I'm your Bright Road Assistant. I can help you find the best places in Oman, book hotels, or rent a car. Where would you like to go?"

	UnavailableNoticeText = "⚠️ **System Notice:** The AI service is currently unavailable because the API key is missing or invalid. Please configure `BRIGHTROAD_API_KEY` to enable the chat."

	NotReadyText = "I cannot reply right now because the connection to the AI service was not established."

	TransportErrorText = "I apologize, but I encountered an error communicating with the server. Please try asking again."

	EmptyReplyText = "I'm having trouble connecting right now. Please try again."
)

const citationsHeading = "**Sources & Map Links:**"
