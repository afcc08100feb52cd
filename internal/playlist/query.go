package playlist

import "fmt"

// SearchByTitle возвращает первый трек с точно совпадающим названием
func (p *Playlist) SearchByTitle(title string) (Track, error) {
	h := p.find(func(t *Track) bool { return t.Title == title })
	if h == noHandle {
		return Track{}, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return p.nodes[h].track, nil
}

// SearchByArtist возвращает все треки исполнителя в порядке плейлиста и их количество.
// Пустой результат - не ошибка.
func (p *Playlist) SearchByArtist(artist string) ([]Track, int) {
	matches := make([]Track, 0)
	for h := p.head; h != noHandle; h = p.nodes[h].next {
		if p.nodes[h].track.Artist == artist {
			matches = append(matches, p.nodes[h].track)
		}
	}
	return matches, len(matches)
}

// Len возвращает количество треков
func (p *Playlist) Len() int {
	return p.count
}

// Tracks возвращает копию треков от головы к хвосту
func (p *Playlist) Tracks() []Track {
	tracks := make([]Track, 0, p.count)
	for h := p.head; h != noHandle; h = p.nodes[h].next {
		tracks = append(tracks, p.nodes[h].track)
	}
	return tracks
}

// CurrentIndex возвращает позицию текущего трека (с единицы) или 0, если курсор пуст
func (p *Playlist) CurrentIndex() int {
	if p.cursor == noHandle {
		return 0
	}
	i := 1
	for h := p.head; h != p.cursor; h = p.nodes[h].next {
		i++
	}
	return i
}

// TotalDuration возвращает суммарную длительность в секундах
func (p *Playlist) TotalDuration() int {
	total := 0
	for h := p.head; h != noHandle; h = p.nodes[h].next {
		total += p.nodes[h].track.Duration
	}
	return total
}

// NextID возвращает ID, больший всех имеющихся (1 для пустого плейлиста)
func (p *Playlist) NextID() int {
	maxID := 0
	for h := p.head; h != noHandle; h = p.nodes[h].next {
		if id := p.nodes[h].track.ID; id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
