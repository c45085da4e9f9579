package slack

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandType string

const (
	CmdYearly CommandType = "yearly"
	CmdOnce   CommandType = "once"
	CmdList   CommandType = "list"
	CmdDelete CommandType = "delete"
	CmdTest   CommandType = "test"
	CmdHelp   CommandType = "help"
)

// Command is a parsed /announce invocation. Only the fields relevant to Type
// are set.
type Command struct {
	Type     CommandType
	Date     string // MM-DD
	Time     string // HH:MM, once only
	Message  string
	Category string // delete only
	Index    int    // delete only, 1-based
	Raw      string
}

// UsageError is returned when the command is known but its arguments are not.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

const (
	usageYearly = "`/announce yearly MM-DD message` (e.g. `/announce yearly 12-25 Merry Christmas!`)"
	usageOnce   = "`/announce once MM-DD HH:MM message` (e.g. `/announce once 12-31 15:00 New Year prep!`)"
	usageDelete = "`/announce delete yearly|once N` (see `/announce list` for N)"
)

func ParseCommand(text string) (*Command, error) {
	text = strings.TrimSpace(text)
	name, rest := nextField(text)

	cmd := &Command{Raw: text}

	switch strings.ToLower(name) {
	case "yearly", "add-yearly":
		cmd.Type = CmdYearly
		cmd.Date, cmd.Message = nextField(rest)
		if cmd.Date == "" || cmd.Message == "" {
			return nil, &UsageError{Usage: usageYearly}
		}
	case "once", "add-once":
		cmd.Type = CmdOnce
		cmd.Date, rest = nextField(rest)
		cmd.Time, cmd.Message = nextField(rest)
		if cmd.Date == "" || cmd.Time == "" || cmd.Message == "" {
			return nil, &UsageError{Usage: usageOnce}
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "delete", "remove", "rm":
		cmd.Type = CmdDelete
		var index string
		cmd.Category, rest = nextField(rest)
		index, rest = nextField(rest)
		if cmd.Category == "" || index == "" || rest != "" {
			return nil, &UsageError{Usage: usageDelete}
		}
		n, err := strconv.Atoi(index)
		if err != nil {
			return nil, &UsageError{Usage: usageDelete}
		}
		cmd.Index = n
	case "test":
		cmd.Type = CmdTest
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	return cmd, nil
}

// nextField splits off the first whitespace separated field and returns the
// trimmed remainder with its inner spacing intact.
func nextField(s string) (field, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t\n")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func GetHelpText() string {
	return `*Available commands:*

*Add announcements:*
• ` + usageYearly + ` - Posts every year on that date
• ` + usageOnce + ` - Posts once at that date and time

*Manage:*
• ` + "`/announce list`" + ` - Shows every announcement and when it is due
• ` + usageDelete + ` - Deletes an announcement

*Other:*
• ` + "`/announce test`" + ` - Sends a test message to the announcement channel
• ` + "`/announce help`" + ` - Shows this help`
}
