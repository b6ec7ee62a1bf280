package telegram

// maxMessageLen keeps replies under Telegram's 4096-character message limit.
const maxMessageLen = 4000

const (
	cmdStart = "/start"
	cmdHelp  = "/help"
)

const helpText = `Send one command per line:
todo <description>
deadline <description> /by <date>
event <description> /from <date> /to <date>
list [T|D|E]
mark <n>, unmark <n>, delete <n>
find <keyword>

Dates look like 2/12/2023 1800 or 2023-12-02 18:00.`

const failureText = "Something went wrong while handling your message. Please try again."
