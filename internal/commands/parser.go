package commands

import "strings"

// ParseCommands scans text for lines starting with "@<bot> " for each bot name.
// Exactly one space must follow the mention; "@bot  cmd" is not a command.
// Results are grouped by bot in the order given, then by line order.
func ParseCommands(text string, bots []string) []BotCommand {
	lines := splitLines(text)

	var commands []BotCommand
	for _, bot := range bots {
		prefix := "@" + bot + " "
		for _, line := range lines {
			rest, ok := strings.CutPrefix(line, prefix)
			if !ok || strings.HasPrefix(rest, " ") {
				continue
			}
			command, args, _ := strings.Cut(rest, " ")
			commands = append(commands, BotCommand{
				Command: command,
				Args:    args,
				Bot:     bot,
			})
		}
	}

	return commands
}

// splitLines splits on \n and drops a single trailing \r from each line.
// A trailing newline does not produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
