package models

import "time"

// PendingActionTTL время жизни отложенного действия.
// Действие, созданное раньше чем now-TTL, считается отсутствующим.
const PendingActionTTL = 30 * time.Minute

// PendingActionType тип отложенного действия
type PendingActionType string

const (
	ActionAddFavorite    PendingActionType = "add_favorite"    // добавить автомобиль в избранное
	ActionRemoveFavorite PendingActionType = "remove_favorite" // убрать автомобиль из избранного
	ActionSaveSearch     PendingActionType = "save_search"     // сохранить поисковый запрос
	ActionNavigation     PendingActionType = "navigation"      // перейти на закрытую страницу
)

// PendingActionData данные конкретного типа действия.
// Заполнено только поле, относящееся к Type.
type PendingActionData struct {
	SearchQuery string `json:"search_query,omitempty"` // SearchQuery сериализованная строка запроса (save_search)
	TargetPath  string `json:"target_path,omitempty"`  // TargetPath путь назначения (navigation)
	CarID       int64  `json:"car_id,omitempty"`       // CarID идентификатор автомобиля (add/remove_favorite)
}

// PendingAction действие, которое пользователь выполнил без авторизации.
// Хранится в единственном слоте, после входа выполняется ровно один раз.
type PendingAction struct {
	Type      PendingActionType `json:"type"`
	ReturnURL string            `json:"returnUrl"` // ReturnURL путь + query, куда вернуть пользователя
	Data      PendingActionData `json:"data"`
	Timestamp int64             `json:"timestamp"` // Timestamp время создания, миллисекунды с epoch
}

// CreatedAt возвращает время создания действия
func (a *PendingAction) CreatedAt() time.Time {
	return time.UnixMilli(a.Timestamp)
}

// Expired сообщает, истекло ли действие к моменту now.
// Граница включительная: в момент Timestamp+TTL действие уже истекло.
func (a *PendingAction) Expired(now time.Time) bool {
	return now.UnixMilli()-a.Timestamp >= PendingActionTTL.Milliseconds()
}

// IsFavorite true для add_favorite и remove_favorite
func (a *PendingAction) IsFavorite() bool {
	return a.Type == ActionAddFavorite || a.Type == ActionRemoveFavorite
}
