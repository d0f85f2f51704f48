package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nsmeele/magistra/internal/models"
	"github.com/nsmeele/magistra/internal/service"
	"github.com/nsmeele/magistra/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const requestTimeout = 10 * time.Second

type QuizSI interface {
	Start(ctx context.Context, listIDs []int64, direction models.Direction) (*models.SessionState, error)
	CurrentQuestion(ctx context.Context, state *models.SessionState) (*models.ActiveQuestion, error)
	SubmitAnswer(ctx context.Context, state *models.SessionState, question models.Question, userAnswer string) (models.Evaluation, error)
	Results(state *models.SessionState) models.QuizResults
	Resume(ctx context.Context, id uuid.UUID) (*models.SessionState, error)
	Abandon(ctx context.Context, state *models.SessionState) error
	History(ctx context.Context, limit int) ([]models.SessionSummary, error)
	IncompleteSessions(ctx context.Context) ([]models.SessionSummary, error)
	SessionAnswers(ctx context.Context, id uuid.UUID) ([]models.QuizAnswer, error)
	OverallStats(ctx context.Context) (models.OverallStats, error)
}

type QuizT struct {
	bot          BotSender
	cache        *cache.Cache
	service      QuizSI
	historyLimit int
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, historyLimit int) *QuizT {
	return &QuizT{
		bot:          bot,
		cache:        cache,
		service:      service,
		historyLimit: historyLimit,
	}
}

func (t *QuizT) startQuiz(message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())
	if len(args) == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Usage: /quiz <list id>[,<list id>...] [forward|reverse|random]")
		sendMessage(t.bot, msg)
		return
	}

	listIDs, err := parseListIDs(args[0])
	if err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ List ids must be numbers, e.g. /quiz 3 or /quiz 1,2")
		sendMessage(t.bot, msg)
		return
	}

	if len(args) < 2 {
		t.sendDirectionKeyboard(message.Chat.ID, args[0])
		return
	}

	t.beginQuiz(message.Chat.ID, listIDs, models.Direction(args[1]))
}

// sendDirectionKeyboard lets the user pick the quiz direction via inline
// buttons. The callback payload is "quiz:<ids>:<direction>".
func (t *QuizT) sendDirectionKeyboard(chatID int64, rawIDs string) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Forward", "quiz:"+rawIDs+":forward"),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Reverse", "quiz:"+rawIDs+":reverse"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Random", "quiz:"+rawIDs+":random"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "Which direction do you want to practice?")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) handleQuizCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	parts := strings.Split(query.Data, ":")
	if len(parts) != 3 {
		log.Printf("Malformed quiz callback: %s", query.Data)
		return
	}

	listIDs, err := parseListIDs(parts[1])
	if err != nil {
		log.Printf("Malformed quiz callback ids: %s", query.Data)
		return
	}

	t.beginQuiz(query.Message.Chat.ID, listIDs, models.Direction(parts[2]))
}

func (t *QuizT) beginQuiz(chatID int64, listIDs []int64, direction models.Direction) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	state, err := t.service.Start(ctx, listIDs, direction)
	if err != nil {
		log.Printf("failed to start quiz for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ "+err.Error())
		sendMessage(t.bot, msg)
		return
	}

	t.cache.SetSession(chatID, state)

	header := fmt.Sprintf("🧠 Quiz started: %s (%s → %s), %d questions. Type your answer.",
		strings.Join(state.ListNames, ", "), state.SourceLanguage, state.TargetLanguage, state.Total)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, header))

	t.sendCurrentQuestion(chatID, state)
}

func (t *QuizT) sendCurrentQuestion(chatID int64, state *models.SessionState) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	question, err := t.service.CurrentQuestion(ctx, state)
	if err != nil {
		if errors.Is(err, service.ErrQueueExhausted) {
			if abandonErr := t.service.Abandon(ctx, state); abandonErr != nil {
				log.Printf("failed to abandon exhausted session for chat %d: %v", chatID, abandonErr)
			}
			t.cache.DeleteSession(chatID)
			msg := tgbotapi.NewMessage(chatID, "⚠️ The remaining words were deleted, so this quiz is closed. Start a new one with /quiz.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to get current question for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Something went wrong. Try again."))
		return
	}

	if question == nil {
		t.finishQuiz(chatID, state)
		return
	}

	askLang := state.TargetLanguage
	if question.Question.Direction == models.DirectionReverse {
		askLang = state.SourceLanguage
	}

	text := fmt.Sprintf("❓ %s\nTranslate to %s: %s", question.Progress, askLang, question.Prompt)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *QuizT) finishQuiz(chatID int64, state *models.SessionState) {
	results := t.service.Results(state)
	t.cache.DeleteSession(chatID)

	var pct float64
	if results.Total > 0 {
		pct = float64(results.Score) / float64(results.Total) * 100
	}

	text := fmt.Sprintf("🏁 Quiz complete! Score: %d/%d (%.0f%%)\nStart another with /quiz or check /history.",
		results.Score, results.Total, pct)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

func (t *QuizT) handleAnswer(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	state, exists := t.cache.Session(chatID)
	if !exists {
		msg := tgbotapi.NewMessage(chatID, "No quiz is running. Start one with /quiz <list id>.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	question, err := t.service.CurrentQuestion(ctx, state)
	if err != nil || question == nil {
		t.sendCurrentQuestion(chatID, state)
		return
	}

	eval, err := t.service.SubmitAnswer(ctx, state, question.Question, message.Text)
	if err != nil {
		log.Printf("failed to check answer for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not check that answer. Try again."))
		return
	}

	var feedback string
	if eval.Accepted {
		feedback = fmt.Sprintf("✅ %s %s = %s", feedbackText(eval.Label), question.Prompt, eval.CorrectAnswer)
	} else {
		feedback = fmt.Sprintf("❌ Wrong. %s = %s (you answered: %s)\nThis one will come back later in the quiz.",
			question.Prompt, eval.CorrectAnswer, message.Text)
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, feedback))

	t.sendCurrentQuestion(chatID, state)
}

func feedbackText(label string) string {
	switch label {
	case service.LabelPerfect:
		return "Perfect!"
	case service.LabelExcellent:
		return "Excellent, just a small typo."
	case service.LabelGood:
		return "Good, watch the spelling."
	case service.LabelAcceptable:
		return "Accepted, but check the spelling."
	default:
		return "Correct!"
	}
}

func (t *QuizT) resumeQuiz(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.Fields(message.CommandArguments())

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if len(args) == 0 {
		sessions, err := t.service.IncompleteSessions(ctx)
		if err != nil {
			log.Printf("failed to load open sessions for chat %d: %v", chatID, err)
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not load open quizzes."))
			return
		}
		if len(sessions) == 0 {
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Nothing to resume. Start a quiz with /quiz."))
			return
		}

		var sb strings.Builder
		sb.WriteString("▶️ Open quizzes — resume with /resume <id>:\n")
		for _, s := range sessions {
			fmt.Fprintf(&sb, "\n%s\n%s — %d/%d answered correctly, started %s\n",
				s.ID, s.ListNames, s.CorrectAnswers, s.TotalQuestions, s.StartedAt.Format("02 Jan 15:04"))
		}
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, sb.String()))
		return
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ That does not look like a session id."))
		return
	}

	state, err := t.service.Resume(ctx, id)
	if err != nil {
		log.Printf("failed to resume session %s for chat %d: %v", id, chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ "+err.Error()))
		return
	}

	t.cache.SetSession(chatID, state)

	header := fmt.Sprintf("▶️ Resuming quiz: %s (%s → %s), score so far %d.",
		strings.Join(state.ListNames, ", "), state.SourceLanguage, state.TargetLanguage, state.Score)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, header))

	t.sendCurrentQuestion(chatID, state)
}

func (t *QuizT) abandonQuiz(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	state, exists := t.cache.Session(chatID)
	if !exists {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "No quiz is running."))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := t.service.Abandon(ctx, state); err != nil {
		log.Printf("failed to abandon session for chat %d: %v", chatID, err)
	}
	t.cache.DeleteSession(chatID)

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🗑 Quiz abandoned. Your word statistics were kept."))
}

func (t *QuizT) sendHistory(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	sessions, err := t.service.History(ctx, t.historyLimit)
	if err != nil {
		log.Printf("failed to load history for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not load quiz history."))
		return
	}
	if len(sessions) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "No finished quizzes yet."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Quiz history:\n")
	for _, s := range sessions {
		fmt.Fprintf(&sb, "\n%s — %s — %d/%d (%.0f%%) — %s",
			s.StartedAt.Format("02 Jan 15:04"), s.ListNames,
			s.CorrectAnswers, s.TotalQuestions, s.ScorePercentage(), s.Status)
		if s.DurationSeconds.Valid {
			fmt.Fprintf(&sb, " in %s", (time.Duration(s.DurationSeconds.Int64) * time.Second).String())
		}
		fmt.Fprintf(&sb, "\n  review: /answers %s", s.ID)
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, sb.String()))
}

func (t *QuizT) sendStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	stats, err := t.service.OverallStats(ctx)
	if err != nil {
		log.Printf("failed to load stats for chat %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not load your stats."))
		return
	}
	if stats.TotalCount == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "No answers recorded yet. Start with /quiz <list id>."))
		return
	}

	text := fmt.Sprintf("📈 Overall: %d answers — %d correct, %d wrong (%.0f%%).",
		stats.TotalCount, stats.RightCount, stats.WrongCount, stats.Accuracy())
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}

// sendSessionAnswers shows the answer-by-answer record of one session, as
// stored in the append-only answer log.
func (t *QuizT) sendSessionAnswers(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	id, err := uuid.Parse(strings.TrimSpace(message.CommandArguments()))
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Usage: /answers <session id> (ids are shown by /history and /resume)"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	answers, err := t.service.SessionAnswers(ctx, id)
	if err != nil {
		log.Printf("failed to load answers for session %s: %v", id, err)
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Could not load that session."))
		return
	}
	if len(answers) == 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "No answers recorded for that session."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📝 Answers:\n")
	for _, a := range answers {
		mark := "❌"
		if a.IsCorrect {
			mark = "✅"
		}
		fmt.Fprintf(&sb, "\n%s %s (expected: %s)", mark, a.UserAnswer, a.CorrectAnswer)
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, sb.String()))
}

func parseListIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
