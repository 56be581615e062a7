package usecase

// Fixed responses.
const (
	ResponseGreeting = "Hi there! How can I help you today?"
	ResponseHelp     = "I can help you with: weather information, latest news, current time and date, setting reminders, and general conversation. Just speak naturally!"
	ResponseThanks   = "You're welcome! Is there anything else I can help you with?"
	ResponseGoodbye  = "Goodbye! Have a great day!"
	ResponseEmpty    = "I didn't catch that. Please try again."

	ResponseUnknownFormat = "I heard you say '%s', but I'm not sure how to help with that. Try asking about weather, news, time, setting reminders, or just say hello!"
)

// Time and date.
const (
	ResponseTimeFormat = "The current time is %s"
	ResponseDateFormat = "Today is %s"
	TimeLayout         = "03:04 PM"
	DateLayout         = "Monday, January 02, 2006"
)

// Collaborator responses.
const (
	ResponseWeatherNoKey  = "Weather API key not configured."
	ResponseWeatherFailed = "Couldn't fetch the weather information."
	ResponseWeatherFormat = "The weather in %s is %s with a temperature of %s°C, feels like %s°C."
	ResponseNewsNoKey     = "News API key not configured."
	ResponseNewsFailed    = "Couldn't fetch the news."
	ResponseNewsEmpty     = "No news articles found."
	ResponseNewsPrefix    = "Here are the top headlines: "
	NewsHeadlineSeparator = " ... "
)

// Reminder responses.
const (
	ResponseReminderNoMatch = "I couldn't understand what you want to be reminded about. Please say something like 'remind me to call mom' or 'set a reminder to buy groceries'."
	ResponseReminderFailed  = "Sorry, I couldn't set that reminder. Please try again."
	ResponseReminderFormat  = "Reminder set successfully: %s"
)

const (
	collaboratorWeather = "openweather"
	collaboratorNews    = "newsapi"
)
