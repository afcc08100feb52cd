// Package playlist содержит плейлист в памяти: упорядоченный двусвязный список
// треков с курсором текущего трека и имитацией состояния воспроизведения.
//
// Узлы списка хранятся в массиве и адресуются целочисленными дескрипторами,
// поэтому голова, хвост и курсор - это индексы, а не указатели.
package playlist

import (
	"fmt"
	"math/rand/v2"
)

// handle - индекс узла в массиве nodes
type handle int

// noHandle обозначает отсутствие узла
const noHandle handle = -1

type node struct {
	track Track
	prev  handle
	next  handle
}

// Playlist - упорядоченный список треков с курсором.
// Не предназначен для одновременного использования из нескольких горутин.
type Playlist struct {
	nodes []node
	free  []handle

	head   handle
	tail   handle
	cursor handle
	count  int

	isPlaying bool
	position  int // Позиция воспроизведения в секундах

	rng      *rand.Rand
	capacity int // 0 - без ограничения
	policy   TextPolicy
}

// Option настраивает Playlist при создании
type Option func(*Playlist)

// WithRand задает источник случайных чисел для Shuffle
func WithRand(r *rand.Rand) Option {
	return func(p *Playlist) {
		p.rng = r
	}
}

// WithSeed задает детерминированный источник случайных чисел для Shuffle
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithCapacity ограничивает количество треков. Вставка в заполненный
// плейлист возвращает ErrAllocationFailure.
func WithCapacity(n int) Option {
	return func(p *Playlist) {
		if n > 0 {
			p.capacity = n
		}
	}
}

// WithTextPolicy задает политику обработки слишком длинных текстовых полей
func WithTextPolicy(policy TextPolicy) Option {
	return func(p *Playlist) {
		p.policy = policy
	}
}

// New создает пустой плейлист
func New(opts ...Option) *Playlist {
	p := &Playlist{
		head:   noHandle,
		tail:   noHandle,
		cursor: noHandle,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return p
}

// InsertEnd добавляет трек в конец плейлиста. Если плейлист был пуст,
// трек становится текущим.
func (p *Playlist) InsertEnd(t Track) (Track, error) {
	t, err := p.policy.normalize(t)
	if err != nil {
		return Track{}, err
	}
	h, err := p.alloc(t)
	if err != nil {
		return Track{}, err
	}
	p.linkEnd(h)
	return t, nil
}

// InsertAt вставляет трек на позицию position (с единицы).
// Допустимые позиции: от 1 до Len()+1, последняя равносильна InsertEnd.
// Курсор не перемещается.
func (p *Playlist) InsertAt(position int, t Track) (Track, error) {
	if position < 1 || position > p.count+1 {
		return Track{}, fmt.Errorf("%w: %d (допустимо от 1 до %d)", ErrInvalidPosition, position, p.count+1)
	}
	if position == p.count+1 {
		return p.InsertEnd(t)
	}

	t, err := p.policy.normalize(t)
	if err != nil {
		return Track{}, err
	}
	h, err := p.alloc(t)
	if err != nil {
		return Track{}, err
	}
	p.linkBefore(h, p.nodeAt(position))
	return t, nil
}

// RemoveByID удаляет первый трек с указанным ID и возвращает его.
// Если удаляется текущий трек, курсор переходит на следующий трек,
// а при его отсутствии - на предыдущий.
func (p *Playlist) RemoveByID(id int) (Track, error) {
	h := p.find(func(t *Track) bool { return t.ID == id })
	if h == noHandle {
		return Track{}, fmt.Errorf("%w: ID %d", ErrNotFound, id)
	}
	return p.remove(h), nil
}

// RemoveByTitle удаляет первый трек с точно совпадающим названием
func (p *Playlist) RemoveByTitle(title string) (Track, error) {
	h := p.find(func(t *Track) bool { return t.Title == title })
	if h == noHandle {
		return Track{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return p.remove(h), nil
}

// Clear удаляет все треки и сбрасывает состояние воспроизведения
func (p *Playlist) Clear() {
	p.nodes = p.nodes[:0]
	p.free = p.free[:0]
	p.head = noHandle
	p.tail = noHandle
	p.cursor = noHandle
	p.count = 0
	p.isPlaying = false
	p.position = 0
}

// alloc резервирует узел под трек, переиспользуя освобожденные
func (p *Playlist) alloc(t Track) (handle, error) {
	if p.capacity > 0 && p.count >= p.capacity {
		return noHandle, fmt.Errorf("%w: плейлист заполнен (%d треков)", ErrAllocationFailure, p.capacity)
	}
	n := node{track: t, prev: noHandle, next: noHandle}
	if last := len(p.free) - 1; last >= 0 {
		h := p.free[last]
		p.free = p.free[:last]
		p.nodes[h] = n
		return h, nil
	}
	p.nodes = append(p.nodes, n)
	return handle(len(p.nodes) - 1), nil
}

func (p *Playlist) release(h handle) {
	p.nodes[h] = node{prev: noHandle, next: noHandle}
	p.free = append(p.free, h)
}

func (p *Playlist) linkEnd(h handle) {
	if p.tail == noHandle {
		p.head = h
		p.tail = h
		p.cursor = h
	} else {
		p.nodes[p.tail].next = h
		p.nodes[h].prev = p.tail
		p.tail = h
	}
	p.count++
}

// linkBefore вставляет узел h перед существующим узлом at
func (p *Playlist) linkBefore(h, at handle) {
	prev := p.nodes[at].prev
	p.nodes[h].prev = prev
	p.nodes[h].next = at
	p.nodes[at].prev = h
	if prev == noHandle {
		p.head = h
	} else {
		p.nodes[prev].next = h
	}
	p.count++
}

// remove вырезает узел из списка, предварительно исправляя курсор
func (p *Playlist) remove(h handle) Track {
	n := p.nodes[h]

	if p.cursor == h {
		repaired := n.next
		if repaired == noHandle {
			repaired = n.prev
		}
		p.moveCursor(repaired)
	}

	if n.prev != noHandle {
		p.nodes[n.prev].next = n.next
	} else {
		p.head = n.next
	}
	if n.next != noHandle {
		p.nodes[n.next].prev = n.prev
	} else {
		p.tail = n.prev
	}

	p.count--
	p.release(h)
	return n.track
}

// moveCursor переставляет курсор без запуска воспроизведения.
// Смена трека сбрасывает позицию, пустой курсор останавливает воспроизведение.
func (p *Playlist) moveCursor(h handle) {
	if h == p.cursor {
		return
	}
	p.cursor = h
	p.position = 0
	if h == noHandle {
		p.isPlaying = false
	}
}

// nodeAt возвращает узел на позиции position (с единицы), проходя от головы
func (p *Playlist) nodeAt(position int) handle {
	h := p.head
	for i := 1; i < position; i++ {
		h = p.nodes[h].next
	}
	return h
}

// find возвращает первый узел от головы к хвосту, для которого match вернул true
func (p *Playlist) find(match func(t *Track) bool) handle {
	for h := p.head; h != noHandle; h = p.nodes[h].next {
		if match(&p.nodes[h].track) {
			return h
		}
	}
	return noHandle
}
