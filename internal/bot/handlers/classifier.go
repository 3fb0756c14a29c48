package handlers

import (
	"regexp"
	"strings"
	"unicode"
)

// Category is the handler an event is dispatched to.
type Category int

const (
	CategoryUnknownCommand Category = iota
	CategoryStart
	CategoryHelp
	CategorySupport
	CategorySettings
	CategoryLanguagePick
	CategoryPlainText
)

var categoryNames = map[Category]string{
	CategoryUnknownCommand: "unknown_command",
	CategoryStart:          "start",
	CategoryHelp:           "help",
	CategorySupport:        "support",
	CategorySettings:       "settings",
	CategoryLanguagePick:   "language_pick",
	CategoryPlainText:      "plain_text",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "invalid"
}

// Classification is the classifier's verdict for one event.
type Classification struct {
	Category Category
	Command  string
	Args     string
	// LanguageCode is the captured code for CategoryLanguagePick.
	LanguageCode string
}

// Rule matches an event to a category.
type Rule struct {
	Name  string
	Match func(text string) (Classification, bool)
}

var languagePickRe = regexp.MustCompile(`^([a-z]{2}_[A-Z]{2}) - .*`)

// Rules is evaluated in order and the first match wins. Commands need the /
// prefix so they can never collide with the language pattern.
var Rules = []Rule{
	commandRule("start", CategoryStart),
	commandRule("help", CategoryHelp),
	commandRule("support", CategorySupport),
	commandRule("settings", CategorySettings),
	{Name: "language_pick", Match: matchLanguagePick},
	{Name: "unknown_command", Match: matchAnyCommand},
	{Name: "plain_text", Match: matchPlainText},
}

// Classify runs the event text through Rules.
func Classify(text string) Classification {
	for _, r := range Rules {
		if c, ok := r.Match(text); ok {
			return c
		}
	}
	return Classification{Category: CategoryUnknownCommand}
}

// ParseCommand splits "/name@bot args" into name and args.
func ParseCommand(text string) (name, args string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, rest := text[1:], ""
	if i := strings.IndexFunc(head, unicode.IsSpace); i >= 0 {
		head, rest = head[:i], head[i:]
	}
	head, _, _ = strings.Cut(head, "@")
	if head == "" {
		return "", "", false
	}
	return head, strings.TrimSpace(rest), true
}

func commandRule(name string, cat Category) Rule {
	return Rule{
		Name: name,
		Match: func(text string) (Classification, bool) {
			cmd, args, ok := ParseCommand(text)
			if !ok || cmd != name {
				return Classification{}, false
			}
			return Classification{Category: cat, Command: cmd, Args: args}, true
		},
	}
}

func matchLanguagePick(text string) (Classification, bool) {
	m := languagePickRe.FindStringSubmatch(text)
	if m == nil {
		return Classification{}, false
	}
	return Classification{Category: CategoryLanguagePick, LanguageCode: m[1]}, true
}

func matchAnyCommand(text string) (Classification, bool) {
	if !strings.HasPrefix(text, "/") {
		return Classification{}, false
	}
	cmd, args, _ := ParseCommand(text)
	return Classification{Category: CategoryUnknownCommand, Command: cmd, Args: args}, true
}

func matchPlainText(string) (Classification, bool) {
	return Classification{Category: CategoryPlainText}, true
}
