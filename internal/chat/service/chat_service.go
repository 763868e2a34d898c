package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/silverhold/codehub-backend/internal/chat/domain"
	"github.com/silverhold/codehub-backend/internal/chat/repository"
)

// replyPool is the fixed set of simulated admin replies. One is chosen
// uniformly at random for each posted message.
var replyPool = []string{
	"Sabar ya, admin lagi asik coding!",
	"Halo Legends! Ada yang bisa kami bantu?",
	"Project ini gratis kok, silahkan di download.",
	"Request project? Chat aja nanti kami cek.",
}

const welcomeText = "Welcome to Source Code Hub Chat!"

// ChatService holds the append-only chat log in memory and mirrors every
// append to storage. Posting a message schedules a one-shot simulated reply;
// the reply is not cancellable and is applied even if the poster is gone,
// because the chat log is global state.
type ChatService struct {
	mu         sync.RWMutex
	messages   []domain.ChatMessage
	appended   uint64
	repo       *repository.MessageRepository
	replyDelay time.Duration
	replyFrom  string
}

// NewChatService creates a new ChatService. replyFrom is the display name
// attributed to simulated replies.
func NewChatService(repo *repository.MessageRepository, replyDelay time.Duration, replyFrom string) *ChatService {
	return &ChatService{
		repo:       repo,
		replyDelay: replyDelay,
		replyFrom:  replyFrom,
	}
}

// Load initializes the log from storage. Missing or corrupt history degrades
// to a single welcome message; it never fails.
func (s *ChatService) Load(ctx context.Context) {
	messages, err := s.repo.Load(ctx)
	if err != nil {
		if err != domain.ErrNoData {
			log.Printf("[chat] failed to load messages, seeding welcome message: %v", err)
		}
		messages = []domain.ChatMessage{{
			ID:        "m1",
			Sender:    "System",
			Text:      welcomeText,
			IsAdmin:   true,
			Timestamp: time.Now().UnixMilli(),
		}}
	}

	s.mu.Lock()
	s.messages = messages
	s.appended = uint64(len(messages))
	s.mu.Unlock()
}

// Messages returns a copy of the full log in insertion order.
func (s *ChatService) Messages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Snapshot returns the current log together with the append watermark, read
// under one lock so a concurrent append lands either in the snapshot or in a
// later Tail, never in neither.
func (s *ChatService) Snapshot() ([]domain.ChatMessage, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out, s.appended
}

// Appended reports how many messages have ever been appended, including any
// later trimmed away. Stream consumers poll it to detect new messages.
func (s *ChatService) Appended() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appended
}

// Tail returns the messages appended after the given Appended watermark,
// plus the new watermark.
func (s *ChatService) Tail(since uint64) ([]domain.ChatMessage, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.appended - since
	if n == 0 {
		return nil, s.appended
	}
	if n > uint64(len(s.messages)) {
		n = uint64(len(s.messages))
	}

	tail := s.messages[uint64(len(s.messages))-n:]
	out := make([]domain.ChatMessage, len(tail))
	copy(out, tail)
	return out, s.appended
}

// Post appends a visitor message and schedules the simulated reply. When no
// sender is given a throwaway USERn handle is generated, matching the web
// client's anonymous chat widget.
func (s *ChatService) Post(ctx context.Context, sender, text string) domain.ChatMessage {
	if sender == "" {
		sender = fmt.Sprintf("USER%d", rand.Intn(1000))
	}

	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		IsAdmin:   false,
		Timestamp: time.Now().UnixMilli(),
	}

	s.append(ctx, msg)

	time.AfterFunc(s.replyDelay, s.postReply)

	return msg
}

// postReply appends one simulated admin reply. It runs detached from the
// originating request, so it persists with a background context.
func (s *ChatService) postReply() {
	reply := domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    s.replyFrom,
		Text:      replyPool[rand.Intn(len(replyPool))],
		IsAdmin:   true,
		Timestamp: time.Now().UnixMilli(),
	}

	s.append(context.Background(), reply)
}

func (s *ChatService) append(ctx context.Context, msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.ChatMessage, 0, len(s.messages)+1)
	next = append(next, s.messages...)
	next = append(next, msg)
	s.messages = next
	s.appended++
	s.persist(ctx)
}

// Trim drops the oldest messages so at most max remain, preserving order.
// Returns how many were dropped.
func (s *ChatService) Trim(ctx context.Context, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if max < 1 || len(s.messages) <= max {
		return 0
	}

	dropped := len(s.messages) - max
	next := make([]domain.ChatMessage, max)
	copy(next, s.messages[dropped:])
	s.messages = next
	s.persist(ctx)

	return dropped
}

// persist writes the log back to storage. Callers hold s.mu.
func (s *ChatService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.messages); err != nil {
		log.Printf("[chat] failed to persist messages: %v", err)
	}
}
