package post

import (
	"context"
	"strings"
	"testing"

	"github.com/admin/tg-bots/post-bot/internal/usecases/post/texts"
)

func TestHandleCommand_Start(t *testing.T) {
	t.Parallel()

	tgClient := newFakeTelegramClient()
	svc := newTestService(newFakeUserRepo(), &fakeEventRepo{}, tgClient, &fakeCompletionClient{})

	user := testUser(10, 20)
	if err := svc.HandleCommand(context.Background(), user, "start", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last, ok := tgClient.lastMessage()
	if !ok {
		t.Fatal("expected welcome message")
	}
	if !strings.Contains(last.Text, "Welcome! Alice") {
		t.Errorf("welcome must greet the user by first name: %q", last.Text)
	}
	for _, platform := range []string{"LinkedIn", "Twitter (X)", "Facebook"} {
		if !strings.Contains(last.Text, platform) {
			t.Errorf("welcome must mention %s", platform)
		}
	}
}

func TestHandleCommand_Help(t *testing.T) {
	t.Parallel()

	tgClient := newFakeTelegramClient()
	svc := newTestService(newFakeUserRepo(), &fakeEventRepo{}, tgClient, &fakeCompletionClient{})

	if err := svc.HandleCommand(context.Background(), testUser(10, 20), "help", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last, _ := tgClient.lastMessage()
	if !strings.Contains(last.Text, "suleman.techworks@gmail.com") {
		t.Errorf("help must contain the contact address: %q", last.Text)
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	t.Parallel()

	tgClient := newFakeTelegramClient()
	completion := &fakeCompletionClient{}
	svc := newTestService(newFakeUserRepo(), &fakeEventRepo{}, tgClient, completion)

	if err := svc.HandleCommand(context.Background(), testUser(10, 20), "frobnicate", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last, _ := tgClient.lastMessage()
	if last.Text != texts.FormatUnknownCommand("frobnicate") {
		t.Errorf("expected unknown command hint, got %q", last.Text)
	}
	if completion.calls != 0 {
		t.Error("unknown command must not trigger generation")
	}
}
