package shell

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hazadus/go-playlist/internal/playlist"
	"github.com/hazadus/go-playlist/internal/utils"
)

// WriteTable выводит плейлист таблицей, текущий трек отмечается символом >
func WriteTable(w io.Writer, p *playlist.Playlist) {
	if p.Len() == 0 {
		fmt.Fprintln(w, "📭 Плейлист пуст.")
		return
	}

	fmt.Fprintf(w, "📚 Треков в плейлисте: %d (общая длительность %s)\n\n",
		p.Len(), utils.FormatDuration(time.Duration(p.TotalDuration())*time.Second))

	fmt.Fprintf(w, " %s %s %s %s %s\n",
		utils.PadRight("ID", 4),
		utils.PadRight("Название", 30),
		utils.PadRight("Исполнитель", 22),
		utils.PadRight("Альбом", 22),
		"Длительность")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	currentIndex := p.CurrentIndex()
	for i, track := range p.Tracks() {
		marker := " "
		if i+1 == currentIndex {
			marker = ">"
		}
		fmt.Fprintf(w, "%s%s %s %s %s %s\n",
			marker,
			utils.PadRight(fmt.Sprint(track.ID), 4),
			utils.PadRight(track.Title, 30),
			utils.PadRight(track.Artist, 22),
			utils.PadRight(track.Album, 22),
			utils.FormatSeconds(track.Duration))
	}
	fmt.Fprintln(w)
}

// WriteCurrent выводит подробности о текущем треке и состоянии воспроизведения
func WriteCurrent(w io.Writer, p *playlist.Playlist) error {
	status := p.Status()
	if status.Current == nil {
		return playlist.ErrNoCurrentTrack
	}

	track := status.Current
	state := "⏸️  Остановлен/пауза"
	if status.IsPlaying {
		state = "▶️  Играет"
	}

	fmt.Fprintln(w, "🎵 Текущий трек:")
	fmt.Fprintf(w, "   Название: %s\n", track.Title)
	fmt.Fprintf(w, "   Исполнитель: %s\n", track.Artist)
	fmt.Fprintf(w, "   Альбом: %s\n", track.Album)
	fmt.Fprintf(w, "   Длительность: %s\n", utils.FormatSeconds(track.Duration))
	fmt.Fprintf(w, "   Состояние: %s\n", state)
	fmt.Fprintf(w, "   Позиция: %s\n", utils.FormatSeconds(status.Position))
	return nil
}

// writeNowPlaying выводит строку о запущенном треке
func writeNowPlaying(w io.Writer, track playlist.Track) {
	fmt.Fprintf(w, "▶️  Сейчас играет: '%s' - %s\n", track.Title, track.Artist)
	fmt.Fprintf(w, "   Альбом: %s | Длительность: %s\n", track.Album, utils.FormatSeconds(track.Duration))
}
