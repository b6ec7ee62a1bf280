package presenter

// DefaultBotName is used when config leaves session.bot_name empty.
const DefaultBotName = "KokBot"
