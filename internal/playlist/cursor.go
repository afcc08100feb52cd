package playlist

import "fmt"

// Status - снимок имитируемого состояния воспроизведения
type Status struct {
	IsPlaying bool
	Position  int    // Позиция в секундах
	Current   *Track // Копия текущего трека или nil
}

// PlayCurrent запускает воспроизведение текущего трека с начала
func (p *Playlist) PlayCurrent() (Track, error) {
	if p.cursor == noHandle {
		return Track{}, ErrNoCurrentTrack
	}
	p.isPlaying = true
	p.position = 0
	return p.nodes[p.cursor].track, nil
}

// Next переходит к следующему треку и запускает его.
// На последнем треке возвращает ErrBoundaryReached и ничего не меняет.
func (p *Playlist) Next() (Track, error) {
	next, err := p.neighbor(func(n *node) handle { return n.next }, "это последний трек")
	if err != nil {
		return Track{}, err
	}
	p.cursor = next
	return p.PlayCurrent()
}

// Previous переходит к предыдущему треку и запускает его
func (p *Playlist) Previous() (Track, error) {
	prev, err := p.neighbor(func(n *node) handle { return n.prev }, "это первый трек")
	if err != nil {
		return Track{}, err
	}
	p.cursor = prev
	return p.PlayCurrent()
}

// PeekNext возвращает следующий трек, не меняя курсор и состояние
func (p *Playlist) PeekNext() (Track, error) {
	next, err := p.neighbor(func(n *node) handle { return n.next }, "следующего трека нет")
	if err != nil {
		return Track{}, err
	}
	return p.nodes[next].track, nil
}

// PeekPrevious возвращает предыдущий трек, не меняя курсор и состояние
func (p *Playlist) PeekPrevious() (Track, error) {
	prev, err := p.neighbor(func(n *node) handle { return n.prev }, "предыдущего трека нет")
	if err != nil {
		return Track{}, err
	}
	return p.nodes[prev].track, nil
}

// JumpTo делает текущим первый трек с указанным ID и запускает его
func (p *Playlist) JumpTo(id int) (Track, error) {
	h := p.find(func(t *Track) bool { return t.ID == id })
	if h == noHandle {
		return Track{}, fmt.Errorf("%w: ID %d", ErrNotFound, id)
	}
	p.cursor = h
	return p.PlayCurrent()
}

// Pause ставит воспроизведение на паузу, сохраняя позицию
func (p *Playlist) Pause() error {
	if !p.isPlaying {
		return ErrNotPlaying
	}
	p.isPlaying = false
	return nil
}

// Stop останавливает воспроизведение и сбрасывает позицию.
// Работает и для трека на паузе с ненулевой позицией.
func (p *Playlist) Stop() error {
	if !p.isPlaying && p.position == 0 {
		return ErrNotPlaying
	}
	p.isPlaying = false
	p.position = 0
	return nil
}

// Seek устанавливает позицию внутри текущего трека, ограничивая ее
// диапазоном от нуля до длительности трека
func (p *Playlist) Seek(seconds int) error {
	if p.cursor == noHandle {
		return ErrNoCurrentTrack
	}
	duration := p.nodes[p.cursor].track.Duration
	switch {
	case seconds < 0:
		seconds = 0
	case seconds > duration:
		seconds = duration
	}
	p.position = seconds
	return nil
}

// Current возвращает копию текущего трека
func (p *Playlist) Current() (Track, error) {
	if p.cursor == noHandle {
		return Track{}, ErrNoCurrentTrack
	}
	return p.nodes[p.cursor].track, nil
}

// Status возвращает снимок состояния воспроизведения
func (p *Playlist) Status() Status {
	s := Status{
		IsPlaying: p.isPlaying,
		Position:  p.position,
	}
	if p.cursor != noHandle {
		t := p.nodes[p.cursor].track
		s.Current = &t
	}
	return s
}

// neighbor возвращает соседний с курсором узел или ошибку без побочных эффектов
func (p *Playlist) neighbor(step func(n *node) handle, boundary string) (handle, error) {
	if p.cursor == noHandle {
		return noHandle, ErrNoCurrentTrack
	}
	h := step(&p.nodes[p.cursor])
	if h == noHandle {
		return noHandle, fmt.Errorf("%w: %s", ErrBoundaryReached, boundary)
	}
	return h, nil
}
