package post

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/admin/tg-bots/post-bot/internal/domain"
	"github.com/admin/tg-bots/post-bot/internal/usecases/post/texts"
)

func staleUser(telegramID, chatID int64, firstName string) *domain.User {
	user := testUser(telegramID, chatID)
	user.FirstName = firstName
	user.LastActivityAt = time.Now().Add(-48 * time.Hour)
	return user
}

func TestSendInactivityReminders_NoStaleUsers(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	tgClient := newFakeTelegramClient()
	svc := newTestService(userRepo, &fakeEventRepo{}, tgClient, &fakeCompletionClient{})

	if err := svc.SendInactivityReminders(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tgClient.sentTexts()) != 0 {
		t.Error("no reminders expected when no user is stale")
	}
}

func TestSendInactivityReminders_SendsAndRefreshesActivity(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	userRepo.inactive = []*domain.User{
		staleUser(1, 11, "Alice"),
		staleUser(2, 22, "Bob"),
	}
	tgClient := newFakeTelegramClient()
	svc := newTestService(userRepo, &fakeEventRepo{}, tgClient, &fakeCompletionClient{})

	before := time.Now()
	if err := svc.SendInactivityReminders(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := tgClient.sentTexts()
	if len(sent) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(sent))
	}
	if !strings.Contains(sent[0], "Alice") {
		t.Errorf("first reminder should mention Alice: %q", sent[0])
	}
	if !strings.Contains(sent[1], "Bob") {
		t.Errorf("second reminder should mention Bob: %q", sent[1])
	}

	for _, telegramID := range []int64{1, 2} {
		at, ok := userRepo.lastActivityFor(telegramID)
		if !ok {
			t.Fatalf("expected last activity refresh for user %d", telegramID)
		}
		if at.Before(before) {
			t.Errorf("last activity for user %d must be refreshed to now, got %v", telegramID, at)
		}
	}
}

func TestSendInactivityReminders_FailedSendSkipsRefresh(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	userRepo.inactive = []*domain.User{
		staleUser(1, 11, "Alice"),
		staleUser(2, 22, "Bob"),
	}
	tgClient := newFakeTelegramClient()
	// Ломаем отправку только первому пользователю
	tgClient.failTexts = make(map[string]error)
	for _, template := range texts.ReminderTemplates {
		tgClient.failTexts[fmt.Sprintf(template, "Alice")] = errors.New("blocked by user")
	}
	svc := newTestService(userRepo, &fakeEventRepo{}, tgClient, &fakeCompletionClient{})

	if err := svc.SendInactivityReminders(context.Background()); err != nil {
		t.Fatalf("batch must continue past a failed user: %v", err)
	}

	sent := tgClient.sentTexts()
	if len(sent) != 1 || !strings.Contains(sent[0], "Bob") {
		t.Fatalf("expected only Bob's reminder to be sent, got %v", sent)
	}

	if _, ok := userRepo.lastActivityFor(1); ok {
		t.Error("failed send must not refresh last activity")
	}
	if _, ok := userRepo.lastActivityFor(2); !ok {
		t.Error("successful send must refresh last activity")
	}
}

func TestSendInactivityReminders_FailedSendKeepsRateLimit(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	userRepo.inactive = []*domain.User{
		staleUser(1, 11, "Alice"),
		staleUser(2, 22, "Bob"),
		staleUser(3, 33, "Carol"),
	}
	tgClient := newFakeTelegramClient()
	tgClient.sendErr = errors.New("telegram down")

	cfg := testConfig()
	cfg.ReminderSendDelay = time.Minute // пауза заведомо дольше теста
	svc := New(cfg, userRepo, &fakeEventRepo{}, tgClient, &fakeCompletionClient{}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	// Пауза между пользователями обязана наступить и после неудачной
	// отправки, поэтому отмена во время паузы прерывает обход
	err := svc.SendInactivityReminders(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled during inter-user delay, got %v", err)
	}

	if _, ok := userRepo.lastActivityFor(1); ok {
		t.Error("failed send must not refresh last activity")
	}
}

func TestSendInactivityReminders_ListFailure(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	userRepo.inactiveErr = errors.New("db down")
	svc := newTestService(userRepo, &fakeEventRepo{}, newFakeTelegramClient(), &fakeCompletionClient{})

	if err := svc.SendInactivityReminders(context.Background()); err == nil {
		t.Fatal("expected error when listing inactive users fails")
	}
}

func TestSendInactivityReminders_ContextCancelStopsBatch(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	userRepo.inactive = []*domain.User{
		staleUser(1, 11, "Alice"),
		staleUser(2, 22, "Bob"),
	}
	tgClient := newFakeTelegramClient()

	cfg := testConfig()
	cfg.ReminderSendDelay = time.Minute // пауза заведомо дольше теста
	svc := New(cfg, userRepo, &fakeEventRepo{}, tgClient, &fakeCompletionClient{}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// Даём первому сообщению уйти и отменяем во время паузы
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := svc.SendInactivityReminders(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if len(tgClient.sentTexts()) != 1 {
		t.Errorf("expected batch to stop after first user, got %d sends", len(tgClient.sentTexts()))
	}
}

func TestFormatReminder_UsesKnownTemplate(t *testing.T) {
	t.Parallel()

	for i := 0; i < 20; i++ {
		got := texts.FormatReminder("Alice")
		if !strings.Contains(got, "Alice") {
			t.Fatalf("reminder must interpolate the first name: %q", got)
		}

		known := false
		for _, template := range texts.ReminderTemplates {
			if got == fmt.Sprintf(template, "Alice") {
				known = true
				break
			}
		}
		if !known {
			t.Fatalf("reminder %q does not match any template", got)
		}
	}
}
