package playlist

import "errors"

// Ошибки плейлиста. Все они возвращаются как значения и проверяются через errors.Is.
var (
	// ErrInvalidPosition - позиция вставки вне диапазона [1, count+1]
	ErrInvalidPosition = errors.New("недопустимая позиция")
	// ErrNotFound - трек с указанным ID или названием не найден
	ErrNotFound = errors.New("трек не найден")
	// ErrNoCurrentTrack - курсор пуст
	ErrNoCurrentTrack = errors.New("нет текущего трека")
	// ErrBoundaryReached - попытка выйти за начало или конец плейлиста
	ErrBoundaryReached = errors.New("достигнута граница плейлиста")
	// ErrNotPlaying - пауза или остановка в неподходящем состоянии
	ErrNotPlaying = errors.New("ничего не воспроизводится")
	// ErrInsufficientTracks - для перемешивания нужно минимум два трека
	ErrInsufficientTracks = errors.New("недостаточно треков")
	// ErrAllocationFailure - хранилище плейлиста заполнено
	ErrAllocationFailure = errors.New("не удалось выделить место под трек")
	// ErrTextTooLong - текстовое поле длиннее MaxTextLength при RejectPolicy
	ErrTextTooLong = errors.New("слишком длинный текст")
	// ErrInvalidDuration - отрицательная длительность трека
	ErrInvalidDuration = errors.New("недопустимая длительность")
)
