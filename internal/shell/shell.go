// Package shell реализует интерактивную командную оболочку для управления плейлистом
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hazadus/go-playlist/internal/logging"
	"github.com/hazadus/go-playlist/internal/playlist"
)

// errUsage - неверные аргументы команды
var errUsage = errors.New("неверные аргументы")

// command описывает одну команду оболочки
type command struct {
	name    string
	usage   string
	help    string
	minArgs int
	run     func(s *Shell, args []string) error
}

// Shell читает команды построчно и применяет их к плейлисту
type Shell struct {
	playlist *playlist.Playlist
	in       io.Reader
	out      io.Writer
	prompt   string
	commands []command
	byName   map[string]*command
}

// New создает оболочку поверх плейлиста
func New(p *playlist.Playlist, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		playlist: p,
		in:       in,
		out:      out,
		prompt:   "🎧 > ",
		commands: commandTable(),
	}
	s.byName = make(map[string]*command, len(s.commands))
	for i := range s.commands {
		s.byName[s.commands[i].name] = &s.commands[i]
	}
	s.byName["quit"] = s.byName["exit"]
	s.byName["?"] = s.byName["help"]
	return s
}

// Run обрабатывает команды до exit, конца ввода или отмены контекста.
// Отмена контекста прерывает ожидание ввода.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "🎶 Добро пожаловать в плейлист! Введите 'help' для списка команд.")
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make(chan inputLine)
	done := make(chan struct{})
	defer close(done)
	go readLines(s.in, lines, done)

	for {
		fmt.Fprint(s.out, s.prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				fmt.Fprintln(s.out, "👋 До встречи!")
				return nil
			}
			if line.err != nil {
				if errors.Is(line.err, errLineTooLong) {
					fmt.Fprintf(s.out, "⚠️  Строка длиннее %d байт, команда пропущена\n", maxLineLength)
					continue
				}
				return fmt.Errorf("ошибка чтения ввода: %w", line.err)
			}
			if !s.Execute(line.text) {
				fmt.Fprintln(s.out, "👋 До встречи!")
				return nil
			}
		}
	}
}

// Execute выполняет одну строку. Возвращает false, если нужно завершить работу.
func (s *Shell) Execute(line string) bool {
	args, err := splitArgs(strings.TrimSpace(line))
	if err != nil {
		s.printError(err)
		return true
	}
	if len(args) == 0 {
		return true
	}

	name := strings.ToLower(args[0])
	cmd, ok := s.byName[name]
	if !ok {
		fmt.Fprintf(s.out, "❓ Неизвестная команда: %s. Введите 'help' для списка команд.\n", args[0])
		return true
	}
	if cmd.name == "exit" {
		return false
	}

	args = args[1:]
	if len(args) < cmd.minArgs {
		fmt.Fprintf(s.out, "⚠️  Использование: %s\n", cmd.usage)
		return true
	}

	logging.Debug("Команда %s, аргументы %q", cmd.name, args)
	if err := cmd.run(s, args); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(s.out, "⚠️  %v. Использование: %s\n", err, cmd.usage)
			return true
		}
		s.printError(err)
	}
	return true
}

// printError выводит ошибку с пояснением для пользователя
func (s *Shell) printError(err error) {
	switch {
	case errors.Is(err, playlist.ErrNoCurrentTrack):
		fmt.Fprintln(s.out, "⚠️  Трек не выбран или плейлист пуст.")
	case errors.Is(err, playlist.ErrNotPlaying):
		fmt.Fprintln(s.out, "⚠️  Сейчас ничего не воспроизводится.")
	case errors.Is(err, playlist.ErrInsufficientTracks):
		fmt.Fprintln(s.out, "⚠️  Для перемешивания нужно минимум 2 трека.")
	case errors.Is(err, playlist.ErrBoundaryReached),
		errors.Is(err, playlist.ErrNotFound),
		errors.Is(err, playlist.ErrInvalidPosition):
		fmt.Fprintf(s.out, "⚠️  %s\n", capitalize(err.Error()))
	default:
		fmt.Fprintf(s.out, "❌ Ошибка: %v\n", err)
	}
}

// capitalize делает первую букву заглавной
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// parseInt разбирает числовой аргумент
func parseInt(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s должен быть числом, получено %q", errUsage, name, arg)
	}
	return n, nil
}

// parseTrack собирает трек из аргументов id, название, исполнитель, альбом, длительность.
// ID 0 означает следующий свободный ID.
func (s *Shell) parseTrack(args []string) (playlist.Track, error) {
	if len(args) != 5 {
		return playlist.Track{}, fmt.Errorf("%w: ожидалось 5 полей трека, получено %d", errUsage, len(args))
	}

	id, err := parseInt(args[0], "ID")
	if err != nil {
		return playlist.Track{}, err
	}
	if id == 0 {
		id = s.playlist.NextID()
	}

	duration, err := parseInt(args[4], "длительность")
	if err != nil {
		return playlist.Track{}, err
	}

	return playlist.Track{
		ID:       id,
		Title:    args[1],
		Artist:   args[2],
		Album:    args[3],
		Duration: duration,
	}, nil
}

func commandTable() []command {
	return []command{
		{
			name:    "add",
			usage:   `add <id> "<название>" "<исполнитель>" "<альбом>" <секунды>`,
			help:    "добавить трек в конец плейлиста (id 0 - следующий свободный)",
			minArgs: 5,
			run: func(s *Shell, args []string) error {
				track, err := s.parseTrack(args)
				if err != nil {
					return err
				}
				stored, err := s.playlist.InsertEnd(track)
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "✅ Трек '%s' (%s) добавлен в плейлист!\n", stored.Title, stored.Artist)
				return nil
			},
		},
		{
			name:    "insert",
			usage:   `insert <позиция> <id> "<название>" "<исполнитель>" "<альбом>" <секунды>`,
			help:    "вставить трек на позицию (с единицы)",
			minArgs: 6,
			run: func(s *Shell, args []string) error {
				position, err := parseInt(args[0], "позиция")
				if err != nil {
					return err
				}
				track, err := s.parseTrack(args[1:])
				if err != nil {
					return err
				}
				stored, err := s.playlist.InsertAt(position, track)
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "✅ Трек '%s' (%s) вставлен на позицию %d!\n", stored.Title, stored.Artist, position)
				return nil
			},
		},
		{
			name:    "delete",
			usage:   "delete <id>",
			help:    "удалить трек по ID",
			minArgs: 1,
			run: func(s *Shell, args []string) error {
				id, err := parseInt(args[0], "ID")
				if err != nil {
					return err
				}
				removed, err := s.playlist.RemoveByID(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "🗑️  Трек '%s' удален из плейлиста!\n", removed.Title)
				return nil
			},
		},
		{
			name:    "delete-title",
			usage:   `delete-title "<название>"`,
			help:    "удалить первый трек с названием",
			minArgs: 1,
			run: func(s *Shell, args []string) error {
				removed, err := s.playlist.RemoveByTitle(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "🗑️  Трек '%s' удален из плейлиста!\n", removed.Title)
				return nil
			},
		},
		{
			name:  "play",
			usage: "play",
			help:  "воспроизвести текущий трек с начала",
			run: func(s *Shell, _ []string) error {
				track, err := s.playlist.PlayCurrent()
				if err != nil {
					return err
				}
				writeNowPlaying(s.out, track)
				return nil
			},
		},
		{
			name:  "next",
			usage: "next",
			help:  "перейти к следующему треку",
			run: func(s *Shell, _ []string) error {
				track, err := s.playlist.Next()
				if err != nil {
					return err
				}
				writeNowPlaying(s.out, track)
				return nil
			},
		},
		{
			name:  "prev",
			usage: "prev",
			help:  "перейти к предыдущему треку",
			run: func(s *Shell, _ []string) error {
				track, err := s.playlist.Previous()
				if err != nil {
					return err
				}
				writeNowPlaying(s.out, track)
				return nil
			},
		},
		{
			name:  "peek-next",
			usage: "peek-next",
			help:  "показать следующий трек",
			run: func(s *Shell, _ []string) error {
				track, err := s.playlist.PeekNext()
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "⏭️  Следующий трек: '%s' - %s\n", track.Title, track.Artist)
				return nil
			},
		},
		{
			name:  "peek-prev",
			usage: "peek-prev",
			help:  "показать предыдущий трек",
			run: func(s *Shell, _ []string) error {
				track, err := s.playlist.PeekPrevious()
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "⏮️  Предыдущий трек: '%s' - %s\n", track.Title, track.Artist)
				return nil
			},
		},
		{
			name:  "pause",
			usage: "pause",
			help:  "поставить на паузу",
			run: func(s *Shell, _ []string) error {
				if err := s.playlist.Pause(); err != nil {
					return err
				}
				fmt.Fprintln(s.out, "⏸️  Пауза.")
				return nil
			},
		},
		{
			name:  "stop",
			usage: "stop",
			help:  "остановить воспроизведение",
			run: func(s *Shell, _ []string) error {
				if err := s.playlist.Stop(); err != nil {
					return err
				}
				fmt.Fprintln(s.out, "⏹️  Воспроизведение остановлено.")
				return nil
			},
		},
		{
			name:    "seek",
			usage:   "seek <секунды>",
			help:    "перемотать текущий трек",
			minArgs: 1,
			run: func(s *Shell, args []string) error {
				seconds, err := parseInt(args[0], "секунды")
				if err != nil {
					return err
				}
				if err := s.playlist.Seek(seconds); err != nil {
					return err
				}
				fmt.Fprintf(s.out, "⏩ Позиция: %d с\n", s.playlist.Status().Position)
				return nil
			},
		},
		{
			name:  "list",
			usage: "list",
			help:  "показать плейлист",
			run: func(s *Shell, _ []string) error {
				WriteTable(s.out, s.playlist)
				return nil
			},
		},
		{
			name:  "current",
			usage: "current",
			help:  "показать текущий трек",
			run: func(s *Shell, _ []string) error {
				return WriteCurrent(s.out, s.playlist)
			},
		},
		{
			name:    "search",
			usage:   `search "<название>"`,
			help:    "найти трек по названию",
			minArgs: 1,
			run: func(s *Shell, args []string) error {
				track, err := s.playlist.SearchByTitle(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "🔍 Найден трек: '%s' - %s (ID: %d)\n", track.Title, track.Artist, track.ID)
				return nil
			},
		},
		{
			name:    "artist",
			usage:   `artist "<исполнитель>"`,
			help:    "найти все треки исполнителя",
			minArgs: 1,
			run: func(s *Shell, args []string) error {
				artist := strings.Join(args, " ")
				tracks, count := s.playlist.SearchByArtist(artist)
				if count == 0 {
					fmt.Fprintf(s.out, "🔍 Треки исполнителя '%s' не найдены.\n", artist)
					return nil
				}
				fmt.Fprintf(s.out, "🔍 Треки исполнителя %s:\n", artist)
				for _, track := range tracks {
					fmt.Fprintf(s.out, "   - '%s' (ID: %d)\n", track.Title, track.ID)
				}
				fmt.Fprintf(s.out, "Найдено треков: %d\n", count)
				return nil
			},
		},
		{
			name:    "jump",
			usage:   "jump <id>",
			help:    "перейти к треку по ID и воспроизвести его",
			minArgs: 1,
			run: func(s *Shell, args []string) error {
				id, err := parseInt(args[0], "ID")
				if err != nil {
					return err
				}
				track, err := s.playlist.JumpTo(id)
				if err != nil {
					return err
				}
				writeNowPlaying(s.out, track)
				return nil
			},
		},
		{
			name:  "shuffle",
			usage: "shuffle",
			help:  "перемешать плейлист",
			run: func(s *Shell, _ []string) error {
				if err := s.playlist.Shuffle(); err != nil {
					return err
				}
				fmt.Fprintln(s.out, "🔀 Плейлист перемешан!")
				return nil
			},
		},
		{
			name:  "reverse",
			usage: "reverse",
			help:  "развернуть плейлист",
			run: func(s *Shell, _ []string) error {
				if s.playlist.Len() == 0 {
					fmt.Fprintln(s.out, "📭 Плейлист пуст.")
					return nil
				}
				s.playlist.Reverse()
				fmt.Fprintln(s.out, "🔁 Плейлист развернут!")
				return nil
			},
		},
		{
			name:  "clear",
			usage: "clear",
			help:  "удалить все треки",
			run: func(s *Shell, _ []string) error {
				s.playlist.Clear()
				fmt.Fprintln(s.out, "🧹 Плейлист очищен!")
				return nil
			},
		},
		{
			name:  "count",
			usage: "count",
			help:  "количество треков",
			run: func(s *Shell, _ []string) error {
				fmt.Fprintf(s.out, "🔢 Треков в плейлисте: %d\n", s.playlist.Len())
				return nil
			},
		},
		{
			name:  "help",
			usage: "help",
			help:  "список команд",
			run: func(s *Shell, _ []string) error {
				s.writeHelp()
				return nil
			},
		},
		{
			name:  "exit",
			usage: "exit",
			help:  "выйти (также quit)",
		},
	}
}

// writeHelp выводит список команд
func (s *Shell) writeHelp() {
	fmt.Fprintln(s.out, "📖 Команды:")
	for _, cmd := range s.commands {
		fmt.Fprintf(s.out, "   %-70s %s\n", cmd.usage, cmd.help)
	}
}
