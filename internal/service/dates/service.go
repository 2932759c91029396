package dates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-DeliveryDates/internal/availability"
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	metafieldsRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/metafields"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// pendingRemoval кандидат на удаление, запомненный между запросами
// Кандидат действителен, пока по его индексу лежит тот же диапазон
type pendingRemoval struct {
	index     int
	candidate domain.DateRange
}

// session состояние редактирования магазина между запросами
// Коллекция каждый раз читается из хранилища заново; хранится только кандидат на удаление
type session struct {
	mu       sync.Mutex
	pending  *pendingRemoval
	lastUsed time.Time
}

// Service сервис редактирования заблокированных диапазонов дат
// Каждое успешное изменение сохраняет всю коллекцию целиком
type Service struct {
	store        ConfigStore
	observer     WriteObserver
	timeProvider TimeProvider
	logger       Logger
	sessionTTL   time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService создает новый экземпляр сервиса
// sessionTTL время простоя, после которого кандидат на удаление сбрасывается (0 - без ограничения)
func NewService(store ConfigStore, observer WriteObserver, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		store:        store,
		observer:     observer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessionTTL:   sessionTTL,
		sessions:     make(map[string]*session),
	}
}

// List возвращает текущую коллекцию и индекс, ожидающий удаления
func (s *Service) List(ctx context.Context, shopID string) (*models.Snapshot, error) {
	sess, set, err := s.acquire(ctx, shopID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return snapshot(set), nil
}

// Add добавляет диапазон в конец коллекции и возвращает его индекс
func (s *Service) Add(ctx context.Context, req *models.RangeRequest) (int, domain.DateRange, error) {
	s.logger.Info("Add: shop=%s, start=%s, end=%s", req.ShopID, req.Start, req.End)

	r, err := parseRange(req)
	if err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return 0, domain.DateRange{}, err
	}

	sess, set, err := s.acquire(ctx, req.ShopID)
	if err != nil {
		return 0, domain.DateRange{}, err
	}
	defer sess.mu.Unlock()

	index := set.Len()
	err = s.commit(ctx, req.ShopID, sess, set, func(draft *domain.DateRangeSet) error {
		return draft.Add(r)
	})
	if err != nil {
		s.logger.Warn("Add: shop=%s: %v", req.ShopID, err)
		return 0, domain.DateRange{}, err
	}

	s.logger.Info("Add: shop=%s, added %s at index=%d", req.ShopID, r, index)
	return index, r, nil
}

// Edit заменяет диапазон по индексу, порядок коллекции сохраняется
func (s *Service) Edit(ctx context.Context, index int, req *models.RangeRequest) (domain.DateRange, error) {
	s.logger.Info("Edit: shop=%s, index=%d, start=%s, end=%s", req.ShopID, index, req.Start, req.End)

	r, err := parseRange(req)
	if err != nil {
		s.logger.Warn("Edit: validation failed: %v", err)
		return domain.DateRange{}, err
	}

	sess, set, err := s.acquire(ctx, req.ShopID)
	if err != nil {
		return domain.DateRange{}, err
	}
	defer sess.mu.Unlock()

	err = s.commit(ctx, req.ShopID, sess, set, func(draft *domain.DateRangeSet) error {
		return draft.Edit(index, r)
	})
	if err != nil {
		s.logger.Warn("Edit: shop=%s, index=%d: %v", req.ShopID, index, err)
		return domain.DateRange{}, err
	}

	return r, nil
}

// RequestRemove запоминает кандидата на удаление; коллекция не меняется
func (s *Service) RequestRemove(ctx context.Context, shopID string, index int) (domain.DateRange, error) {
	sess, set, err := s.acquire(ctx, shopID)
	if err != nil {
		return domain.DateRange{}, err
	}
	defer sess.mu.Unlock()

	if err := set.RequestRemove(index); err != nil {
		s.logger.Warn("RequestRemove: shop=%s, index=%d: %v", shopID, index, err)
		return domain.DateRange{}, mapDomainError(err)
	}
	remember(sess, set)

	r, _ := set.At(index)
	s.logger.Info("RequestRemove: shop=%s, pending index=%d (%s)", shopID, index, r)
	return r, nil
}

// ConfirmRemove удаляет кандидата и сохраняет коллекцию
// Возвращает индекс, который занимал удаленный диапазон
func (s *Service) ConfirmRemove(ctx context.Context, shopID string) (int, domain.DateRange, error) {
	sess, set, err := s.acquire(ctx, shopID)
	if err != nil {
		return 0, domain.DateRange{}, err
	}
	defer sess.mu.Unlock()

	index, _ := set.PendingRemoval()

	var removed domain.DateRange
	err = s.commit(ctx, shopID, sess, set, func(draft *domain.DateRangeSet) error {
		var err error
		removed, err = draft.ConfirmRemove()
		return err
	})
	if err != nil {
		s.logger.Warn("ConfirmRemove: shop=%s: %v", shopID, err)
		return 0, domain.DateRange{}, err
	}

	s.logger.Info("ConfirmRemove: shop=%s, removed %s from index=%d", shopID, removed, index)
	return index, removed, nil
}

// CancelRemove сбрасывает кандидата без записи в хранилище
// Возвращает false, если удаление не запрашивалось
func (s *Service) CancelRemove(ctx context.Context, shopID string) (bool, error) {
	sess, set, err := s.acquire(ctx, shopID)
	if err != nil {
		return false, err
	}
	defer sess.mu.Unlock()

	canceled := set.CancelRemove()
	remember(sess, set)
	return canceled, nil
}

// BlockedDays возвращает все дни всех диапазонов, кроме диапазона excludeIndex
// Используется календарем редактирования, чтобы не блокировать собственный диапазон.
// Если задано окно, возвращаются только дни внутри него.
func (s *Service) BlockedDays(ctx context.Context, shopID string, excludeIndex *int, window *availability.Window) ([]types.Date, error) {
	sess, set, err := s.acquire(ctx, shopID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if window != nil {
		return availability.BlockedDaysIn(set.Ranges(), excludeIndex, *window), nil
	}
	return availability.BlockedDays(set.Ranges(), excludeIndex), nil
}

// acquire блокирует сессию магазина и читает коллекцию из хранилища;
// вызывающий обязан снять блокировку.
// Кандидат на удаление восстанавливается, только если диапазон по его индексу не изменился.
func (s *Service) acquire(ctx context.Context, shopID string) (*session, *domain.DateRangeSet, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, nil, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	s.mu.Lock()
	sess, ok := s.sessions[shopID]
	if !ok {
		sess = &session{}
		s.sessions[shopID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	ranges, err := s.load(ctx, shopID)
	if err != nil {
		sess.mu.Unlock()
		return nil, nil, err
	}
	set := domain.NewDateRangeSet(ranges)

	now := s.timeProvider.Now()
	if p := sess.pending; p != nil {
		expired := s.sessionTTL > 0 && now.Sub(sess.lastUsed) > s.sessionTTL
		current, err := set.At(p.index)
		switch {
		case expired:
			sess.pending = nil
		case err != nil || !sameRange(current, p.candidate):
			s.logger.Warn("acquire: shop=%s, removal candidate index=%d (%s) changed in store, dropped",
				shopID, p.index, p.candidate)
			sess.pending = nil
		default:
			_ = set.RequestRemove(p.index)
		}
	}
	sess.lastUsed = now

	return sess, set, nil
}

func (s *Service) load(ctx context.Context, shopID string) ([]domain.DateRange, error) {
	raw, err := s.store.Get(ctx, shopID, domain.KeyDates)
	if err != nil {
		if errors.Is(err, metafieldsRepo.ErrMetafieldNotFound) {
			return []domain.DateRange{}, nil
		}
		s.logger.Error("load: failed to read dates for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: load - store error: %v", ErrInternal, err)
	}

	ranges, err := domain.DecodeDateRanges(raw)
	if err != nil {
		s.logger.Warn("load: shop=%s: %v", shopID, err)
	}
	return ranges, nil
}

// commit применяет mutate к копии коллекции и сохраняет копию;
// кандидат на удаление в сессии меняется только после успешной записи
func (s *Service) commit(ctx context.Context, shopID string, sess *session, set *domain.DateRangeSet, mutate func(*domain.DateRangeSet) error) error {
	draft := domain.NewDateRangeSet(set.Ranges())
	if index, ok := set.PendingRemoval(); ok {
		_ = draft.RequestRemove(index)
	}

	if err := mutate(draft); err != nil {
		return mapDomainError(err)
	}

	raw, err := domain.EncodeDateRanges(draft.Ranges())
	if err != nil {
		return fmt.Errorf("%w: commit - encode: %v", ErrInternal, err)
	}

	err = s.store.Set(ctx, shopID, domain.KeyDates, raw)
	s.observer.ObserveConfigWrite(domain.KeyDates, err)
	if err != nil {
		s.logger.Error("commit: failed to persist dates for shop=%s: %v", shopID, err)
		return fmt.Errorf("%w: commit - store error: %v", ErrInternal, err)
	}

	remember(sess, draft)
	return nil
}

// remember переносит кандидата на удаление из коллекции в сессию
func remember(sess *session, set *domain.DateRangeSet) {
	index, ok := set.PendingRemoval()
	if !ok {
		sess.pending = nil
		return
	}
	candidate, _ := set.At(index)
	sess.pending = &pendingRemoval{index: index, candidate: candidate}
}

func sameRange(a, b domain.DateRange) bool {
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}

func parseRange(req *models.RangeRequest) (domain.DateRange, error) {
	if strings.TrimSpace(req.ShopID) == "" {
		return domain.DateRange{}, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Start) == "" {
		return domain.DateRange{}, fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	start, err := types.ParseInstant(req.Start)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}

	end := start
	if strings.TrimSpace(req.End) != "" {
		end, err = types.ParseInstant(req.End)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
		}
	}

	r, err := domain.NewDateRange(start, end)
	if err != nil {
		return domain.DateRange{}, mapDomainError(err)
	}
	return r, nil
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %v", ErrRangeNotFound, err)
	case errors.Is(err, domain.ErrNoPendingRemoval):
		return ErrNoPendingRemoval
	case errors.Is(err, domain.ErrInvalidDateRange):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func snapshot(set *domain.DateRangeSet) *models.Snapshot {
	result := &models.Snapshot{Ranges: set.Ranges()}
	if index, ok := set.PendingRemoval(); ok {
		result.PendingRemoval = &index
	}
	return result
}
