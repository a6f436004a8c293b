package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CampsiteService/pkg/daterange"
	"github.com/m04kA/SMC-CampsiteService/pkg/ttlcache"
)

// UseCase use case поиска свободных дат.
// Короткоживущий кэш поверх чистого вычисления гасит шквал одинаковых
// запросов на чтение; инвалидации по записи нет - устаревание до TTL
// допустимо при высоком соотношении чтений к записям, а от конфликтов
// защищает constraint хранилища, не кэш.
type UseCase struct {
	reservationRepo ReservationRepository
	cache           *ttlcache.Cache[[]string]
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cache:           ttlcache.New[[]string](cacheTTL),
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных дат.
// Вычисление идемпотентно и без побочных эффектов: повторный вызов
// с теми же аргументами без записей между ними дает тот же результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: start=%q, end=%q", req.Start, req.End)

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// 1. Резолвим окно запроса с дефолтами
	window, err := resolveWindow(req, today)
	if err != nil {
		uc.logger.Warn("GetAvailability: window resolution failed: %v", err)
		return nil, err
	}

	// 2. Обрезаем до горизонта бронирования. Окно целиком вне горизонта
	// вырождается (start > end) - свободных дат нет, и до БД такое окно
	// доводить нельзя: Postgres отвергает перевернутый daterange.
	window = clampWindow(window, today)
	if daterange.Days(window.Start, window.End) < 0 {
		uc.logger.Info("GetAvailability: window %s degenerate after clamping", window)
		return &Response{Dates: []string{}}, nil
	}

	// 3. Кэш ключуется каноническим текстом уже обрезанного окна
	cacheKey := window.String()
	if dates, ok := uc.cache.Get(cacheKey); ok {
		uc.logger.Info("GetAvailability: cache hit for window %s", cacheKey)
		return &Response{Dates: dates}, nil
	}

	// 4. Вычисляем свободные даты
	dates, err := uc.computeFreeDates(ctx, window)
	if err != nil {
		uc.logger.Error("GetAvailability: computation failed for window %s: %v", cacheKey, err)
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	uc.cache.Set(cacheKey, dates)

	uc.logger.Info("GetAvailability: %d free dates in window %s", len(dates), cacheKey)
	return &Response{Dates: dates}, nil
}

// computeFreeDates вычисляет свободные даты окна: берет все пересекающиеся
// с окном бронирования, раскрывает каждое в занятые даты (день выезда
// свободен - диапазон полуоткрытый) и вычитает их из полного перечня
// дат окна. Результат - точное дополнение занятых дат внутри окна.
func (uc *UseCase) computeFreeDates(ctx context.Context, window daterange.Range) ([]string, error) {
	reservations, err := uc.reservationRepo.ListOverlapping(ctx, window)
	if err != nil {
		return nil, err
	}

	reserved := make(map[string]struct{})
	for _, res := range reservations {
		for _, d := range res.Dates.CoveredDates() {
			reserved[daterange.FormatDate(d)] = struct{}{}
		}
	}

	free := make([]string, 0)
	for _, d := range daterange.Dates(window.Start, window.End) {
		key := daterange.FormatDate(d)
		if _, ok := reserved[key]; !ok {
			free = append(free, key)
		}
	}

	return free, nil
}
