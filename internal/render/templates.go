package render

import (
	"errors"
	"fmt"
	"strings"
)

// Templates is the wording of one style.
type Templates struct {
	Intros       []string `yaml:"intros"`
	Outros       []string `yaml:"outros"`
	Greeting     string   `yaml:"greeting"`
	Farewell     string   `yaml:"farewell"`
	Fallbacks    []string `yaml:"fallbacks"`
	Confirmation string   `yaml:"confirmation"` // fmt pattern: topic, definition
	FormatHint   string   `yaml:"format_hint"`
	Attribution  string   `yaml:"attribution"`
}

// DefaultThemed is the gossip-columnist voice.
var DefaultThemed = Templates{
	Intros: []string{
		"Hello Upper East Siders. Gossip Girl here, your one and only financial source into the scandalous lives of Manhattan's elite. ",
		"Spotted: Your favorite financial insider with some juicy money tea. ",
		"Hey there, financial wannabes. Ready for today's most exclusive fiscal dirt? ",
		"Good morning, Money Mavens. Word on the street is someone's asking about their finances. ",
		"Breaking news from the financial district, and you heard it here first. ",
		"Attention Upper East Siders, I have the ultimate scoop on what's happening in the money world. ",
	},
	Outros: []string{
		" You know you love me. XOXO, Financial Girl.",
		" And who am I? That's one secret I'll never tell. You know you love my financial advice.",
		" Spotted: You, making smarter money moves after this little chat.",
		" Whether you're old money or new money, now you're in the know.",
		" And that's the kind of wealth management that keeps you on the social register.",
		" Until next time, keep your friends close and your investments closer.",
	},
	Greeting: "Hello there! I'm your exclusive source into the scandalous lives of financial terms. What money gossip can I spill today?",
	Farewell: "You know you'll miss me. Until next time, XOXO, Financial Girl.",
	Fallbacks: []string{
		"Even Gossip Girl doesn't have all the financial tea on that. Try asking about specific terms like 'robo-advisor' or 'yield'. I promise the scandal is worth it.",
		"That's not in my financial diary yet. I'm more versed in terms like 'robo-advisor' or 'yield'. Ask me about those instead, and I'll spill all the details.",
		"That financial query is more mysterious than Gossip Girl's identity. Try something like 'What is yield?' or 'Tell me about robo-advisors' instead.",
		"That's not trending in my financial circles yet. But I have plenty of gossip on 'robo-advisors' or 'yield' if you're interested.",
	},
	Confirmation: "Spotted: New financial intel entering my database. %s is %s XOXO, you know you love teaching me.",
	FormatHint:   "Even Gossip Girl needs clear information. Try using the format: 'Learn that [topic] is [definition]'",
	Attribution:  "And that's a financial secret even I didn't know until now. The elite of Manhattan would pay good money for this kind of insider knowledge.",
}

// DefaultPlain is the neutral voice.
var DefaultPlain = Templates{
	Greeting: "Hello there! I'm your exclusive source into the scandalous lives of financial terms. What money gossip can I spill today?",
	Farewell: "Goodbye! Feel free to come back with more financial questions.",
	Fallbacks: []string{
		"I don't have information on that topic. Try asking about 'robo-advisor' or 'yield' instead.",
	},
	Confirmation: "Got it. I've learned that %s is %s",
	FormatHint:   "I couldn't understand that. Try using the format: 'Learn that [topic] is [definition]'",
}

// merge returns t with every empty field taken from def.
func (t Templates) merge(def Templates) Templates {
	if len(t.Intros) == 0 {
		t.Intros = def.Intros
	}
	if len(t.Outros) == 0 {
		t.Outros = def.Outros
	}
	if t.Greeting == "" {
		t.Greeting = def.Greeting
	}
	if t.Farewell == "" {
		t.Farewell = def.Farewell
	}
	if len(t.Fallbacks) == 0 {
		t.Fallbacks = def.Fallbacks
	}
	if t.Confirmation == "" {
		t.Confirmation = def.Confirmation
	}
	if t.FormatHint == "" {
		t.FormatHint = def.FormatHint
	}
	if t.Attribution == "" {
		t.Attribution = def.Attribution
	}
	return t
}

// ErrConfirmationPattern reports a confirmation that does not take exactly a
// topic and a definition.
var ErrConfirmationPattern = errors.New("confirmation must contain exactly two %s verbs: topic, definition")

// CheckConfirmation validates a confirmation override. Empty keeps the default.
func CheckConfirmation(pattern string) error {
	if pattern == "" {
		return nil
	}
	if strings.Contains(fmt.Sprintf(pattern, "topic", "definition"), "%!") {
		return ErrConfirmationPattern
	}
	return nil
}
