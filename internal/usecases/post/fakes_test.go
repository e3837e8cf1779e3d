package post

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *Config {
	return &Config{
		ReminderInterval:   10 * time.Minute,
		StalenessThreshold: 24 * time.Hour,
		ReminderSendDelay:  time.Millisecond,
		StickerFileID:      "test-sticker",
	}
}

type fakeUserRepo struct {
	mu sync.Mutex

	users        map[int64]*domain.User
	upsertCalls  int
	upsertErr    error
	activityByID map[int64]time.Time
	activityErr  error
	increments   []domain.TokenUsage
	incrementErr error
	inactive     []*domain.User
	inactiveErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:        make(map[int64]*domain.User),
		activityByID: make(map[int64]time.Time),
	}
}

func (r *fakeUserRepo) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsertCalls++
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	if existing, ok := r.users[user.TelegramUserID]; ok {
		existing.TelegramChatID = user.TelegramChatID
		existing.FirstName = user.FirstName
		existing.LastName = user.LastName
		existing.Username = user.Username
		existing.UpdatedAt = user.UpdatedAt
		copied := *existing
		return &copied, nil
	}
	copied := *user
	r.users[user.TelegramUserID] = &copied
	result := copied
	return &result, nil
}

func (r *fakeUserRepo) UpdateLastActivity(ctx context.Context, telegramID int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.activityErr != nil {
		return r.activityErr
	}
	r.activityByID[telegramID] = at
	return nil
}

func (r *fakeUserRepo) IncrementTokenUsage(ctx context.Context, telegramID int64, usage domain.TokenUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.incrementErr != nil {
		return r.incrementErr
	}
	r.increments = append(r.increments, usage)
	return nil
}

func (r *fakeUserRepo) ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inactiveErr != nil {
		return nil, r.inactiveErr
	}
	return r.inactive, nil
}

func (r *fakeUserRepo) incrementCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.increments)
}

func (r *fakeUserRepo) lastActivityFor(telegramID int64) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	at, ok := r.activityByID[telegramID]
	return at, ok
}

type fakeEventRepo struct {
	mu sync.Mutex

	created   []*domain.Event
	createErr error
	texts     []string
	listErr   error
	listedID  int64
	from, to  time.Time
}

func (r *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, event)
	return nil
}

func (r *fakeEventRepo) ListTextsForWindow(ctx context.Context, telegramID int64, from, to time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listedID = telegramID
	r.from = from
	r.to = to
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.texts, nil
}

type sentMessage struct {
	ChatID int64
	Text   string
}

type fakeTelegramClient struct {
	mu sync.Mutex

	messages   []sentMessage
	stickers   []sentMessage
	deleted    []int64
	nextID     int64
	sendErr    error
	stickerErr error
	deleteErr  error
	// failTexts ломает отправку только сообщений с данным текстом
	failTexts map[string]error
}

func newFakeTelegramClient() *fakeTelegramClient {
	return &fakeTelegramClient{nextID: 100}
}

func (c *fakeTelegramClient) SendMessage(ctx context.Context, chatID int64, text string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return 0, c.sendErr
	}
	if err, ok := c.failTexts[text]; ok {
		return 0, err
	}
	c.nextID++
	c.messages = append(c.messages, sentMessage{ChatID: chatID, Text: text})
	return c.nextID, nil
}

func (c *fakeTelegramClient) SendSticker(ctx context.Context, chatID int64, stickerFileID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stickerErr != nil {
		return 0, c.stickerErr
	}
	c.nextID++
	c.stickers = append(c.stickers, sentMessage{ChatID: chatID, Text: stickerFileID})
	return c.nextID, nil
}

func (c *fakeTelegramClient) DeleteMessage(ctx context.Context, chatID int64, messageID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	c.deleted = append(c.deleted, messageID)
	return nil
}

func (c *fakeTelegramClient) sentTexts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	texts := make([]string, 0, len(c.messages))
	for _, m := range c.messages {
		texts = append(texts, m.Text)
	}
	return texts
}

func (c *fakeTelegramClient) lastMessage() (sentMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return sentMessage{}, false
	}
	return c.messages[len(c.messages)-1], true
}

type fakeCompletionClient struct {
	mu sync.Mutex

	result       *domain.Completion
	err          error
	calls        int
	systemPrompt string
	userPrompt   string
}

func (c *fakeCompletionClient) GenerateChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (*domain.Completion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.systemPrompt = systemPrompt
	c.userPrompt = userPrompt
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

func newTestService(
	userRepo *fakeUserRepo,
	eventRepo *fakeEventRepo,
	tgClient *fakeTelegramClient,
	completion *fakeCompletionClient,
) *Service {
	return New(testConfig(), userRepo, eventRepo, tgClient, completion, testLogger())
}

func testUser(telegramID, chatID int64) *domain.User {
	now := time.Now()
	return &domain.User{
		TelegramUserID: telegramID,
		TelegramChatID: chatID,
		FirstName:      "Alice",
		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
	}
}

// waitFor опрашивает условие до истечения дедлайна - для проверки фоновых эффектов
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
