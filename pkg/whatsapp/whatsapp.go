// Package whatsapp generates wa.me deep-links that pre-populate a WhatsApp
// conversation with a recipient and message text. Nothing is ever sent from
// here; opening the link is delegated to the caller's environment.
package whatsapp

import (
	"net/url"
	"regexp"
	"strings"
)

// replyExcerptLen bounds how much of the original message is quoted back in
// the reply template.
const replyExcerptLen = 100

var nonDigits = regexp.MustCompile(`\D`)

// Link builds a wa.me deep-link for the given phone and message text.
// Non-digit characters are stripped from the phone; the text is
// percent-encoded (space as %20, the form wa.me expects).
func Link(phone, text string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + encoded
}

// ReplyText renders the admin reply template for a contact message: greet the
// sender by name, echo the subject, quote a bounded excerpt of the original
// message and invite further conversation.
func ReplyText(name, subject, message string) string {
	excerpt := message
	if runes := []rune(message); len(runes) > replyExcerptLen {
		excerpt = string(runes[:replyExcerptLen]) + "..."
	}
	return "Olá " + name + "! \n\n" +
		"Recebi sua mensagem através do site sobre: \"" + subject + "\"\n\n" +
		"Vou te responder sobre: " + excerpt + "\n\n" +
		"Vamos conversar?"
}
