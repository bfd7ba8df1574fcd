package chat

import "strings"

// Command is the control signal produced when input matches a session
// command instead of a question. Commands short-circuit the matching
// pipeline entirely.
type Command int

const (
	// CommandNone means the input is a normal query.
	CommandNone Command = iota
	// CommandQuit ends the session.
	CommandQuit
	// CommandLangEnglish pins the session locale to English.
	CommandLangEnglish
	// CommandLangUrdu pins the session locale to Urdu.
	CommandLangUrdu
	// CommandHelp requests the usage text.
	CommandHelp
)

// ParseCommand recognizes session commands in trimmed, lowercased
// input. Anything unrecognized is a normal query, including malformed
// lang commands ("lang french" is just a question about lang french).
func ParseCommand(raw string) Command {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "quit", "exit", "bye":
		return CommandQuit
	case "lang english", "lang en":
		return CommandLangEnglish
	case "lang urdu", "lang ur":
		return CommandLangUrdu
	case "help":
		return CommandHelp
	}
	return CommandNone
}
