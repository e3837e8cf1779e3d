package telegram

import (
	"context"
	"errors"
	"testing"

	"github.com/admin/tg-bots/post-bot/internal/domain"
)

func TestService_SendMessage(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := New(&fakeBotService{}, client, testLogger())

	messageID, err := svc.SendMessage(context.Background(), 42, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if messageID != 1 {
		t.Errorf("expected message id from client, got %d", messageID)
	}
	if len(client.messages) != 1 || client.messages[0] != "hello" {
		t.Errorf("expected message forwarded to client, got %v", client.messages)
	}
}

func TestService_SendMessageError(t *testing.T) {
	t.Parallel()

	client := &fakeClient{sendErr: errors.New("telegram down")}
	svc := New(&fakeBotService{}, client, testLogger())

	messageID, err := svc.SendMessage(context.Background(), 42, "hello")
	if err == nil {
		t.Fatal("expected error from failing client")
	}
	if messageID != 0 {
		t.Errorf("expected zero message id on failure, got %d", messageID)
	}
}

func TestService_SendSticker(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := New(&fakeBotService{}, client, testLogger())

	messageID, err := svc.SendSticker(context.Background(), 42, "sticker-file-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if messageID != 2 {
		t.Errorf("expected message id from client, got %d", messageID)
	}
	if len(client.stickers) != 1 || client.stickers[0] != "sticker-file-id" {
		t.Errorf("expected sticker forwarded to client, got %v", client.stickers)
	}
}

func TestService_DeleteMessage(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := New(&fakeBotService{}, client, testLogger())

	if err := svc.DeleteMessage(context.Background(), 42, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.deleted) != 1 || client.deleted[0] != 99 {
		t.Errorf("expected deletion forwarded to client, got %v", client.deleted)
	}

	client.deleteErr = errors.New("message to delete not found")
	if err := svc.DeleteMessage(context.Background(), 42, 100); err == nil {
		t.Fatal("expected error from failing client")
	}
}

func TestSetBotService_WiresRouting(t *testing.T) {
	t.Parallel()

	// Bot подключается после создания сервиса, как в initDependencies
	svc := New(nil, &fakeClient{}, testLogger())
	bot := &fakeBotService{}
	svc.SetBotService(bot)

	update := &domain.Update{UpdateID: 1, Message: privateMessage("/generate")}
	if err := svc.HandleUpdate(context.Background(), update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bot.commands) != 1 || bot.commands[0] != "generate" {
		t.Errorf("expected command routed to late-bound bot, got %v", bot.commands)
	}
}
