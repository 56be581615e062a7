package telegram

const (
	replyNotText = "Please send me a text message."
	replyFailed  = "Sorry, something went wrong. Please try again."
)

const (
	commandStart = "start"
	commandHelp  = "help"
)
