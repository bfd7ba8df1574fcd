package chat

import "github.com/softerio/chatbot-engine/pkg/models"

// defaultMessages are the terminal fallback answers, returned when
// neither the knowledge base nor generation produced anything.
var defaultMessages = map[models.Locale]string{
	models.LocaleEnglish: "Sorry, I didn't understand that. You can ask me about our services, our company, or how to contact us.",
	models.LocaleUrdu:    "معذرت، میں آپ کی بات نہیں سمجھ سکا۔ آپ ہماری خدمات، کمپنی، یا رابطہ معلومات کے بارے میں پوچھ سکتے ہیں۔",
}

// helpMessages answer the help command.
var helpMessages = map[models.Locale]string{
	models.LocaleEnglish: "You can ask me about:\n- Our company name and background\n- Contact information\n- The services we provide\n\nCommands: 'lang english', 'lang urdu' to set the language, 'quit' to leave.",
	models.LocaleUrdu:    "آپ مجھ سے پوچھ سکتے ہیں:\n- کمپنی کا نام اور تعارف\n- رابطہ معلومات\n- ہماری خدمات\n\nکمانڈز: 'lang english'، 'lang urdu' زبان بدلنے کے لیے، 'quit' ختم کرنے کے لیے۔",
}

// DefaultMessage returns the locale-appropriate default answer.
// Unknown locales fall back to English.
func DefaultMessage(locale models.Locale) string {
	if msg, ok := defaultMessages[locale]; ok {
		return msg
	}
	return defaultMessages[models.LocaleEnglish]
}

// HelpMessage returns the locale-appropriate usage text.
func HelpMessage(locale models.Locale) string {
	if msg, ok := helpMessages[locale]; ok {
		return msg
	}
	return helpMessages[models.LocaleEnglish]
}
