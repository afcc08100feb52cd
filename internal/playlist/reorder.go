package playlist

import "fmt"

// Reverse разворачивает плейлист на месте. Курсор остается на том же треке.
func (p *Playlist) Reverse() {
	h := p.head
	for h != noHandle {
		n := &p.nodes[h]
		n.prev, n.next = n.next, n.prev
		// После обмена бывший next лежит в prev
		h = n.prev
	}
	p.head, p.tail = p.tail, p.head
}

// Shuffle перемешивает плейлист алгоритмом Фишера-Йетса и делает текущим
// первый трек нового порядка
func (p *Playlist) Shuffle() error {
	if p.count < 2 {
		return fmt.Errorf("%w: нужно минимум 2, есть %d", ErrInsufficientTracks, p.count)
	}

	order := make([]handle, 0, p.count)
	for h := p.head; h != noHandle; h = p.nodes[h].next {
		order = append(order, h)
	}

	for i := len(order) - 1; i > 0; i-- {
		j := p.rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	last := len(order) - 1
	for i, h := range order {
		n := &p.nodes[h]
		n.prev = noHandle
		n.next = noHandle
		if i > 0 {
			n.prev = order[i-1]
		}
		if i < last {
			n.next = order[i+1]
		}
	}
	p.head = order[0]
	p.tail = order[last]
	p.moveCursor(p.head)
	return nil
}
