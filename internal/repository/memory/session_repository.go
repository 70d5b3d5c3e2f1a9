package memory

import (
	"time"

	"github.com/D3M0MK1GN/Demonbot-Telegram/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps per-chat interview sessions in memory. A
// stalled interview simply expires with the cache TTL; nothing is
// persisted until the user finalizes.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// GetOrCreate returns the live session for a chat, or a fresh IDLE one.
func (r *SessionRepository) GetOrCreate(telegramID, username string) *store.Session {
	if x, found := r.cache.Get(telegramID); found {
		return x.(*store.Session)
	}
	session := store.NewSession(telegramID, username)
	r.cache.Set(telegramID, session, cache.DefaultExpiration)
	return session
}

func (r *SessionRepository) Get(telegramID string) (*store.Session, bool) {
	if x, found := r.cache.Get(telegramID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.TelegramID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(telegramID string) {
	r.cache.Delete(telegramID)
}
