package translation

// Message IDs are the en_US source strings, so an untranslated ID renders as
// valid default-language text. Positional verbs are filled by fmt.Sprintf.
const (
	MsgGreeting        = "Hello!"
	MsgIntroduction    = "I'm %s and I came here to help you."
	MsgAskAction       = "What would you like to do?"
	MsgSupportCommand  = "/support - Opens a new support ticket"
	MsgSettingsCommand = "/settings - Settings of your account"

	MsgSupportPrompt   = "Please, tell me what you need support with :)"
	MsgSupportAck      = "Give me some time to think. Soon I will return to you with an answer."
	MsgChooseLanguage  = "Please, choose a language:"
	MsgLanguageUpdated = "Language updated to %s"
	MsgUnknownLanguage = "Unknown language! :("
	MsgUpdateFailed    = "Sorry, I could not update your language. Please try again later."
	MsgUnknownCommand  = "Sorry, I don't know what you're asking for."

	DescStart    = "Show the welcome message"
	DescHelp     = "Show what I can do"
	DescSupport  = "Open a new support ticket"
	DescSettings = "Change your language"
)
