package shell

import (
	"bufio"
	"errors"
	"io"
)

// maxLineLength - максимальная длина строки команды в байтах
const maxLineLength = 64 * 1024

var errLineTooLong = errors.New("слишком длинная строка")

// inputLine - строка ввода или ошибка чтения
type inputLine struct {
	text string
	err  error
}

// readLines читает строки из r и отправляет их в out до конца ввода,
// ошибки чтения или закрытия done. Слишком длинная строка пропускается
// с ошибкой errLineTooLong, чтение продолжается.
func readLines(r io.Reader, out chan<- inputLine, done <-chan struct{}) {
	defer close(out)

	reader := bufio.NewReader(r)
	for {
		text, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return
		}

		select {
		case out <- inputLine{text: text, err: err}:
		case <-done:
			return
		}

		if err != nil && !errors.Is(err, errLineTooLong) {
			return
		}
	}
}

// readLine читает одну строку без перевода строки, не накапливая больше maxLineLength байт
func readLine(r *bufio.Reader) (string, error) {
	var line []byte
	tooLong := false

	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			switch {
			case tooLong:
				return "", errLineTooLong
			case len(line) > 0:
				return string(line), nil
			default:
				return "", err
			}
		}

		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}
	return string(line), nil
}
