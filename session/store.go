// Package session 은 쿠키 세션 ID 에 묶인 인메모리 TTL 저장소다.
// 관리자 인사이트 캐시처럼 재기동 시 날아가도 되는 값만 담는다.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	data      map[string]any
	expiresAt time.Time
}

// Store 는 세션별 키-값 저장소다. 만료는 접근 시점에 걷어낸다.
type Store struct {
	mu  sync.Mutex
	ttl time.Duration

	entries map[string]*entry

	// 테스트에서 시간을 고정할 수 있게 주입한다.
	now func() time.Time
}

// NewStore 는 TTL 분 단위 설정으로 저장소를 만든다. 0 이하면 30분.
func NewStore(ttlMinutes int) *Store {
	if ttlMinutes <= 0 {
		ttlMinutes = 30
	}
	return &Store{
		ttl:     time.Duration(ttlMinutes) * time.Minute,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// NewID 는 새 세션 ID 를 발급한다.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// Ensure 는 유효한 세션이면 그대로 쓰고, 없거나 만료됐으면 새 ID 를 발급한다.
// 두 번째 반환값은 새로 발급했는지 여부다.
func (s *Store) Ensure(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if e, ok := s.entries[id]; ok && s.now().Before(e.expiresAt) {
			e.expiresAt = s.now().Add(s.ttl)
			return id, false
		}
	}

	fresh := uuid.NewString()
	s.entries[fresh] = &entry{
		data:      make(map[string]any),
		expiresAt: s.now().Add(s.ttl),
	}
	return fresh, true
}

// Set 은 세션에 값을 저장한다. 세션이 없으면 새로 만든다.
func (s *Store) Set(id, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expiresAt) {
		e = &entry{data: make(map[string]any)}
		s.entries[id] = e
	}
	e.data[key] = value
	e.expiresAt = s.now().Add(s.ttl)
}

// Get 은 세션에서 값을 꺼낸다. 세션이 만료됐으면 찾지 못한 것으로 본다.
func (s *Store) Get(id, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, false
	}
	v, ok := e.data[key]
	return v, ok
}

// Delete 는 세션에서 키 하나를 지운다.
func (s *Store) Delete(id, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok {
		delete(e.data, key)
	}
}

// Sweep 은 만료된 세션을 모두 걷어내고 남은 세션 수를 반환한다.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
	return len(s.entries)
}
