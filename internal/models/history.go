package models

import (
	"fmt"
	"strconv"
	"time"
)

// HistoryTimeLayout формат created_at для локальных записей (как toISOString в браузере)
const HistoryTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// HistoryEntry запись истории оценок в каноническом виде.
// Для записей с сервера ID назначает backend, для локальных - время создания в мс.
type HistoryEntry struct {
	CarData          CarData          `json:"car_data"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        string           `json:"created_at"` // ISO-8601
	EstimationResult EstimationResult `json:"estimation_result"`
	ID               int64            `json:"id"`
}

// StoredHistoryEntry запись истории в том виде, в котором она лежит в локальном хранилище
type StoredHistoryEntry struct {
	Result    EstimationResult `json:"result"`
	ID        string           `json:"id"`
	Notes     string           `json:"notes,omitempty"`
	Timestamp string           `json:"timestamp"`
	Car       CarData          `json:"car"`
}

// ToStored переводит каноническую запись в формат хранилища
func ToStored(e HistoryEntry) StoredHistoryEntry {
	return StoredHistoryEntry{
		ID:        strconv.FormatInt(e.ID, 10),
		Car:       e.CarData,
		Result:    e.EstimationResult,
		Notes:     e.Notes,
		Timestamp: e.CreatedAt,
	}
}

// FromStored переводит запись из формата хранилища в канонический.
// Возвращает ошибку, если id не является целым числом.
func FromStored(s StoredHistoryEntry) (HistoryEntry, error) {
	id, err := strconv.ParseInt(s.ID, 10, 64)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("invalid history entry id %q: %w", s.ID, err)
	}
	return HistoryEntry{
		ID:               id,
		CarData:          s.Car,
		EstimationResult: s.Result,
		Notes:            s.Notes,
		CreatedAt:        s.Timestamp,
	}, nil
}

// ToStoredList переводит список целиком, сохраняя порядок
func ToStoredList(entries []HistoryEntry) []StoredHistoryEntry {
	stored := make([]StoredHistoryEntry, 0, len(entries))
	for _, e := range entries {
		stored = append(stored, ToStored(e))
	}
	return stored
}

// FormatHistoryTime форматирует время создания локальной записи
func FormatHistoryTime(t time.Time) string {
	return t.UTC().Format(HistoryTimeLayout)
}
