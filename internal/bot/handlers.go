package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "lists":
		t.lists.sendLists(message)
	case "list":
		t.lists.sendListDetail(message)
	case "newlist":
		t.lists.createList(message)
	case "editlist":
		t.lists.editList(message)
	case "category":
		t.lists.setCategory(message)
	case "add":
		t.lists.addEntry(message)
	case "editentry":
		t.lists.editEntry(message)
	case "suggest":
		t.lists.suggestTranslation(message)
	case "delentry":
		t.lists.deleteEntry(message)
	case "dellist":
		t.lists.deleteList(message)
	case "quiz":
		t.quiz.startQuiz(message)
	case "resume":
		t.quiz.resumeQuiz(message)
	case "abandon":
		t.quiz.abandonQuiz(message)
	case "history":
		t.quiz.sendHistory(message)
	case "answers":
		t.quiz.sendSessionAnswers(message)
	case "stats":
		t.quiz.sendStats(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Try /help")
		sendMessage(t.bot, msg)
	}
}

// A plain message is a quiz answer whenever a session is active.
func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if strings.TrimSpace(message.Text) == "" {
		return
	}
	t.quiz.handleAnswer(message)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data

	switch {
	case strings.HasPrefix(data, "quiz:"):
		t.quiz.handleQuizCallback(query)
	default:
		log.Printf("Unknown callback data: %s", data)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "📖 Hi! I help you study vocabulary lists.\n\n" +
		"• 📚 Keep word lists per language pair\n" +
		"• 🧠 Quiz yourself in either direction\n" +
		"• 🔁 Missed words come back until you get them right\n" +
		"• 💾 Stop any time and resume later\n\n" +
		"Use /lists to see your lists or /help for all commands."

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := "📚 Lists\n" +
		"/lists — all lists\n" +
		"/list <id> — entries and stats\n" +
		"/newlist <name> <source> <target> — e.g. /newlist School nl en\n" +
		"/editlist <id> <new name> — rename a list\n" +
		"/category <id> [name] — tag a list, omit the name to clear\n" +
		"/add <list id> <source> = <target> — add an entry\n" +
		"/editentry <entry id> <source> = <target> — fix an entry\n" +
		"/suggest <list id> <word> — look up a translation\n" +
		"/delentry <entry id> — remove an entry\n" +
		"/dellist <list id> — remove a whole list\n\n" +
		"🧠 Quiz\n" +
		"/quiz <list id>[,<list id>...] [forward|reverse|random] — start\n" +
		"/resume [session id] — pick up where you left off\n" +
		"/abandon — give up the current quiz\n" +
		"/history — past results\n" +
		"/answers <session id> — answer-by-answer review\n" +
		"/stats — overall answer totals\n\n" +
		"During a quiz, just type your answer."

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}
