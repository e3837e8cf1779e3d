package texts

import (
	"fmt"
	"math/rand"
)

const Welcome = `👋 Welcome! %s
I'm your Social Media Post Bot 🤖 Just share what you're up to during the day—meetings, wins, thoughts, anything—and I’ll turn it into scroll-stopping posts for:
    🔹 LinkedIn
    🔹 Twitter (X)
    🔹 Facebook
Let’s boost your Social Media presence. Ready to start?`

const Help = `👋 Welcome! %s to the Help Section! Feel free to contact
suleman.techworks@gmail.com for any kind of query`

const EventSaved = "Got it! Keep sending your daily updates — To Generate the post, just enter the command: /generate"

const GeneratingWait = "Generating your post... Please wait a moment. ⏳"

const NoEventsToday = "No events found for today. Please send your daily updates before generating a post."

const NoContentGenerated = "No content generated."

const ErrorGeneratePost = "An error occurred while generating your post. Please try again later."

const ErrorProcessMessage = "An error occurred while processing your message. Please try again later."

const ErrorGeneric = "An error occurred while processing your request."

const UnknownCommand = "Unknown command: /%s. Available commands: /start, /generate, /help"

// GenerationSystemPrompt системная инструкция для генерации постов
const GenerationSystemPrompt = "Act as a senior copywriter and social media expert. You write highly engaging and scroll-stopping posts for LinkedIn, Twitter (X), and Facebook. Using provided thoughts/event throughout the day."

const generationUserPrompt = "write like a human, for humans, craft three engaging socialmedia posts for linkedIn, Twitter (X) and facebook audiences, use simple language. use given time labels just to understand the order of the events. don't mention the time in the posts. Each posts should creatively highlights the following events. Ensure the tone is conversational and impactfull. Focus on engaging the respective platform's audience. encourage interaction, sharing and driving interest in the events: %s."

// ReminderTemplates шаблоны напоминаний, подставляется имя пользователя
var ReminderTemplates = []string{
	"Hey %s! 👋 Haven't heard from you in a while. Share what you've been up to and I'll turn it into scroll-stopping posts!",
	"%s, your audience is waiting! 📣 Send me a quick update about your day and let's craft some posts.",
	"Don't let your updates slip away, %s! ✨ Drop me a few lines about what happened and I'll handle the rest.",
}

// FormatWelcome форматирует приветственное сообщение
func FormatWelcome(firstName string) string {
	return fmt.Sprintf(Welcome, firstName)
}

// FormatHelp форматирует сообщение раздела помощи
func FormatHelp(firstName string) string {
	return fmt.Sprintf(Help, firstName)
}

// FormatUnknownCommand форматирует сообщение о неизвестной команде
func FormatUnknownCommand(command string) string {
	return fmt.Sprintf(UnknownCommand, command)
}

// FormatGenerationUserPrompt форматирует пользовательскую инструкцию с текстами событий
func FormatGenerationUserPrompt(eventTexts string) string {
	return fmt.Sprintf(generationUserPrompt, eventTexts)
}

// FormatReminder выбирает случайный шаблон напоминания и подставляет имя
func FormatReminder(firstName string) string {
	template := ReminderTemplates[rand.Intn(len(ReminderTemplates))]
	return fmt.Sprintf(template, firstName)
}
