package reservation

import (
	"github.com/m04kA/SMC-CampsiteService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий одинаково работает поверх *sql.DB, *dbmetrics.DB
// и активной транзакции из context
type DBExecutor = dbmetrics.DBExecutor
