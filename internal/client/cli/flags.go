package cli

import "github.com/iudanet/carscope/internal/config"

// GlobalFlags общие флаги всех команд
type GlobalFlags struct {
	EnvFile string `long:"env-file" description:"Path to .env file (default: .env in the working directory)"`
	config.Config
	Version bool `long:"version" description:"Show version information"`
}

// LoginCommand вход по email и паролю
type LoginCommand struct {
	cli      *Cli
	Email    string `long:"email" description:"Account email (prompted if empty)"`
	Password string `long:"password" description:"Account password (prompted if empty, not recommended)"`
}

// RegisterCommand регистрация нового пользователя
type RegisterCommand struct {
	cli      *Cli
	Email    string `long:"email" description:"Account email (prompted if empty)"`
	Password string `long:"password" description:"Account password (prompted if empty, not recommended)"`
	Name     string `long:"name" description:"Full name"`
}

// LogoutCommand удаление локальной сессии
type LogoutCommand struct {
	cli *Cli
}

// StatusCommand сессия, текущая страница и отложенное действие
type StatusCommand struct {
	cli *Cli
}

// VisitCommand переход на страницу без проверки доступа
type VisitCommand struct {
	cli  *Cli
	Args struct {
		Path string `positional-arg-name:"path" required:"yes"`
	} `positional-args:"yes"`
}

// OpenCommand переход на страницу с проверкой доступа
type OpenCommand struct {
	cli  *Cli
	Args struct {
		Path string `positional-arg-name:"path" required:"yes"`
	} `positional-args:"yes"`
}

// FavoriteCommand добавление или удаление автомобиля из избранного
type FavoriteCommand struct {
	cli  *Cli
	Args struct {
		CarID int64 `positional-arg-name:"car-id" required:"yes"`
	} `positional-args:"yes"`
	Remove bool `long:"remove" description:"Remove the car from favorites"`
}

// SaveSearchCommand сохранение поискового запроса
type SaveSearchCommand struct {
	cli  *Cli
	Args struct {
		Query []string `positional-arg-name:"query" required:"1"`
	} `positional-args:"yes"`
}

// FavoritesCommand список избранного
type FavoritesCommand struct {
	cli *Cli
}

// SearchesListCommand список сохраненных поисков
type SearchesListCommand struct {
	cli *Cli
}

// SearchesDeleteCommand удаление сохраненного поиска
type SearchesDeleteCommand struct {
	cli  *Cli
	Args struct {
		ID int64 `positional-arg-name:"id" required:"yes"`
	} `positional-args:"yes"`
}

// PendingCommand просмотр или сброс отложенного действия
type PendingCommand struct {
	cli   *Cli
	Clear bool `long:"clear" description:"Discard the pending action"`
}

// ResumeCommand повторное выполнение отложенного действия
type ResumeCommand struct {
	cli *Cli
}

// EstimateCommand оценка стоимости автомобиля
type EstimateCommand struct {
	cli          *Cli
	Brand        string `long:"brand" required:"yes" description:"Car brand, e.g. BMW"`
	Model        string `long:"model" required:"yes" description:"Car model, e.g. X5"`
	FuelType     string `long:"fuel" description:"Fuel type (Diesel, Petrol, Hybrid, Electric)"`
	Transmission string `long:"transmission" description:"Transmission (Manual, Automatic)"`
	DriveType    string `long:"drive" description:"Drive type"`
	Generation   string `long:"generation" description:"Model generation"`
	Notes        string `long:"notes" description:"Notes saved with the estimation"`
	Year         int    `long:"year" description:"Year of manufacture"`
	Mileage      int    `long:"mileage" description:"Mileage in km"`
	Engine       int    `long:"engine" description:"Engine capacity in cm3"`
	RightHand    bool   `long:"rhd" description:"Right-hand drive"`
	LeftHand     bool   `long:"lhd" description:"Left-hand drive"`
	UseSpecs     bool   `long:"use-specs" description:"Fill fields that have a single option for the model"`
	JSON         bool   `long:"json" description:"Print the raw result as JSON"`
}

// HistoryListCommand список оценок
type HistoryListCommand struct {
	cli   *Cli
	Local bool `long:"local" description:"Read local history only"`
}

// HistoryDeleteCommand удаление записи истории
type HistoryDeleteCommand struct {
	cli  *Cli
	Args struct {
		ID int64 `positional-arg-name:"id" required:"yes"`
	} `positional-args:"yes"`
}

// HistoryNotesCommand изменение заметок записи
type HistoryNotesCommand struct {
	cli  *Cli
	Args struct {
		ID    int64    `positional-arg-name:"id" required:"yes"`
		Notes []string `positional-arg-name:"notes"`
	} `positional-args:"yes"`
}

// HistoryClearCommand удаление всей истории
type HistoryClearCommand struct {
	cli *Cli
	Yes bool `long:"yes" short:"y" description:"Do not ask for confirmation"`
}

// VersionCommand информация о сборке
type VersionCommand struct {
	cli *Cli
}
