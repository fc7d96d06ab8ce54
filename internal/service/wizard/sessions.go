package wizard

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/m04kA/SMC-WeekendService/internal/domain"
)

// session состояние диалога одного пользователя
// mu сериализует шаги мастера: у пользователя не более одного шага в полёте
type session struct {
	mu    sync.Mutex
	state domain.WizardState
	draft *domain.WizardDraft
}

func (s *session) reset() {
	s.state = domain.StateIdle
	s.draft = &domain.WizardDraft{}
}

// sessionStore in-memory хранилище сессий с TTL
// Просроченные сессии вычищаются фоновым janitor-ом go-cache
type sessionStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		cache: cache.New(ttl, 2*ttl),
	}
}

// get возвращает сессию пользователя, создавая новую при отсутствии
// Каждое обращение продлевает TTL сессии
func (s *sessionStore) get(userID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(userID); ok {
		sess := v.(*session)
		s.cache.SetDefault(userID, sess)
		return sess
	}

	sess := &session{}
	sess.reset()
	s.cache.SetDefault(userID, sess)
	return sess
}
