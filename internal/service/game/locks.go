package game

import "sync"

// gameLocks Мьютекс на каждую партию: броски в одну партию выполняются по одному,
// разные партии друг друга не ждут
type gameLocks struct {
	mtx   sync.Mutex
	locks map[int]*gameLock
}

type gameLock struct {
	mtx  sync.Mutex
	refs int // Сколько горутин держат или ждут блокировку
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[int]*gameLock)}
}

// lock Захватывает партию и возвращает функцию освобождения
func (l *gameLocks) lock(gameID int) func() {
	l.mtx.Lock()
	gl, ok := l.locks[gameID]
	if !ok {
		gl = &gameLock{}
		l.locks[gameID] = gl
	}
	gl.refs++
	l.mtx.Unlock()

	gl.mtx.Lock()

	return func() {
		gl.mtx.Unlock()

		l.mtx.Lock()
		gl.refs--
		if gl.refs == 0 {
			delete(l.locks, gameID)
		}
		l.mtx.Unlock()
	}
}
