package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/nsmeele/magistra/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ListSI interface {
	Languages(ctx context.Context) ([]models.Language, error)
	CreateList(ctx context.Context, name, sourceCode, targetCode string) (models.List, error)
	Lists(ctx context.Context) ([]models.List, error)
	ListDetail(ctx context.Context, id int64) (models.List, []models.Entry, error)
	RenameList(ctx context.Context, id int64, name string) (models.List, error)
	SetListCategory(ctx context.Context, id int64, category string) (models.List, error)
	AddEntry(ctx context.Context, listID int64, sourceWord, targetWord, entryType string) (models.Entry, error)
	UpdateEntry(ctx context.Context, id int64, sourceWord, targetWord, entryType string) (models.Entry, error)
	SuggestTranslation(ctx context.Context, list models.List, sourceWord string) (models.TranslationSuggestion, error)
	DeleteEntry(ctx context.Context, id int64) error
	DeleteList(ctx context.Context, id int64) error
}

type ListT struct {
	bot     BotSender
	service ListSI
}

func NewListTAPI(bot BotSender, service ListSI) *ListT {
	return &ListT{
		bot:     bot,
		service: service,
	}
}

func (t *ListT) sendLists(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	lists, err := t.service.Lists(ctx)
	if err != nil {
		log.Printf("failed to load lists for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not load your lists."))
		return
	}
	if len(lists) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "No lists yet. Create one with /newlist <name> <source> <target>."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📚 Your lists:\n")
	for _, list := range lists {
		fmt.Fprintf(&sb, "\n%d. %s (%s) — %d entries", list.ID, list.Name, list.LanguagePair(), list.EntryCount)
		if list.Category != "" {
			fmt.Fprintf(&sb, " [%s]", list.Category)
		}
	}
	sb.WriteString("\n\nStart practicing with /quiz <id>.")

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, sb.String()))
}

func (t *ListT) sendListDetail(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	id, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /list <list id>"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, entries, err := t.service.ListDetail(ctx, id)
	if err != nil {
		log.Printf("failed to load list %d for chat %d: %v", id, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not find that list."))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📖 %s (%s)", list.Name, list.LanguagePair())
	if list.Category != "" {
		fmt.Fprintf(&sb, " [%s]", list.Category)
	}
	sb.WriteString("\n")
	if len(entries) == 0 {
		sb.WriteString("\nNo entries yet. Add one with /add " + strconv.FormatInt(id, 10) + " <source> = <target>.")
	}
	for _, entry := range entries {
		fmt.Fprintf(&sb, "\n[%d] %s = %s", entry.ID, entry.SourceWord, entry.TargetWord)
		if rate, ok := entry.SuccessRate(); ok {
			fmt.Fprintf(&sb, " (%.0f%% of %d)", rate*100, entry.TotalAttempts())
		}
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, sb.String()))
}

func (t *ListT) createList(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	args := strings.Fields(message.CommandArguments())
	if len(args) < 3 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /newlist <name> <source> <target>, e.g. /newlist School nl en"))
		return
	}

	name := strings.Join(args[:len(args)-2], " ")
	sourceCode := args[len(args)-2]
	targetCode := args[len(args)-1]

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, err := t.service.CreateList(ctx, name, sourceCode, targetCode)
	if err != nil {
		log.Printf("failed to create list for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ "+err.Error()))
		return
	}

	text := fmt.Sprintf("✅ Created list %d: %s (%s). Add entries with /add %d <source> = <target>.",
		list.ID, list.Name, list.LanguagePair(), list.ID)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *ListT) editList(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	args := strings.Fields(message.CommandArguments())
	if len(args) < 2 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /editlist <list id> <new name>"))
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /editlist <list id> <new name>"))
		return
	}
	name := strings.Join(args[1:], " ")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, err := t.service.RenameList(ctx, id, name)
	if err != nil {
		log.Printf("failed to rename list %d for chat %d: %v", id, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not find that list."))
		return
	}

	text := fmt.Sprintf("✅ List %d is now called %s.", list.ID, list.Name)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *ListT) setCategory(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	args := strings.Fields(message.CommandArguments())
	if len(args) < 1 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /category <list id> [name] (omit the name to clear)"))
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /category <list id> [name] (omit the name to clear)"))
		return
	}
	category := strings.Join(args[1:], " ")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, err := t.service.SetListCategory(ctx, id, category)
	if err != nil {
		log.Printf("failed to set category for list %d in chat %d: %v", id, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not find that list."))
		return
	}

	var text string
	if list.Category == "" {
		text = fmt.Sprintf("✅ %s has no category now.", list.Name)
	} else {
		text = fmt.Sprintf("✅ %s is filed under %s.", list.Name, list.Category)
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *ListT) addEntry(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	raw := strings.TrimSpace(message.CommandArguments())
	listRaw, pair, found := strings.Cut(raw, " ")
	if !found {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /add <list id> <source> = <target>"))
		return
	}

	listID, err := strconv.ParseInt(listRaw, 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /add <list id> <source> = <target>"))
		return
	}

	source, target, found := strings.Cut(pair, "=")
	if !found {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /add <list id> <source> = <target>"))
		return
	}

	entryType := models.EntryTypeWord
	if strings.Contains(strings.TrimSpace(source), " ") {
		entryType = models.EntryTypeSentence
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	entry, err := t.service.AddEntry(ctx, listID, source, target, entryType)
	if err != nil {
		log.Printf("failed to add entry for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ "+err.Error()))
		return
	}

	text := fmt.Sprintf("✅ Added: %s = %s", entry.SourceWord, entry.TargetWord)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *ListT) editEntry(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	raw := strings.TrimSpace(message.CommandArguments())
	entryRaw, pair, found := strings.Cut(raw, " ")
	if !found {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /editentry <entry id> <source> = <target>"))
		return
	}

	entryID, err := strconv.ParseInt(entryRaw, 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /editentry <entry id> <source> = <target>"))
		return
	}

	source, target, found := strings.Cut(pair, "=")
	if !found {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /editentry <entry id> <source> = <target>"))
		return
	}

	entryType := models.EntryTypeWord
	if strings.Contains(strings.TrimSpace(source), " ") {
		entryType = models.EntryTypeSentence
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	entry, err := t.service.UpdateEntry(ctx, entryID, source, target, entryType)
	if err != nil {
		log.Printf("failed to update entry %d for chat %d: %v", entryID, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not update that entry."))
		return
	}

	text := fmt.Sprintf("✅ Updated: %s = %s", entry.SourceWord, entry.TargetWord)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *ListT) deleteEntry(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	id, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /delentry <entry id> (ids are shown by /list)"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := t.service.DeleteEntry(ctx, id); err != nil {
		log.Printf("failed to delete entry %d for chat %d: %v", id, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not find that entry."))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🗑 Entry deleted. Running quizzes will skip it."))
}

func (t *ListT) deleteList(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	id, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /dellist <list id>"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := t.service.DeleteList(ctx, id); err != nil {
		log.Printf("failed to delete list %d for chat %d: %v", id, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not find that list."))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🗑 List and its entries deleted."))
}

func (t *ListT) suggestTranslation(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	args := strings.Fields(message.CommandArguments())
	if len(args) < 2 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /suggest <list id> <word>"))
		return
	}

	listID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /suggest <list id> <word>"))
		return
	}
	word := strings.Join(args[1:], " ")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	list, _, err := t.service.ListDetail(ctx, listID)
	if err != nil {
		log.Printf("failed to load list %d for chat %d: %v", listID, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not find that list."))
		return
	}

	suggestion, err := t.service.SuggestTranslation(ctx, list, word)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ No translation found. Add it manually with /add."))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "💡 %s = %s", word, suggestion.Text)
	if !suggestion.Reliable {
		sb.WriteString(" (low confidence)")
	}
	if len(suggestion.Alternatives) > 0 {
		fmt.Fprintf(&sb, "\nAlternatives: %s", strings.Join(suggestion.Alternatives, ", "))
	}
	fmt.Fprintf(&sb, "\n\nSave it with /add %d %s = %s", list.ID, word, suggestion.Text)

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, sb.String()))
}
