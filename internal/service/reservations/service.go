package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/events"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	publisher       EventPublisher
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, id, userID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, userID)

	reservation, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%s", id)
	return models.FromDomainReservation(reservation), nil
}

// Cancel удаляет бронирование со всеми днями.
// Отменить можно только своё бронирование.
func (s *Service) Cancel(ctx context.Context, id, userID string) error {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%s", id, userID)

	var cancelled *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.getOwned(txCtx, "Cancel", id, userID)
		if err != nil {
			return err
		}

		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			return s.translateRepoError("Cancel", id, err)
		}

		cancelled = reservation
		return nil
	})
	if err != nil {
		return s.wrapTxError("Cancel", err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	s.publish(ctx, "Cancel", events.TypeReservationCancelled, cancelled, timeRangeIDs(cancelled.TimeRanges))
	return nil
}

// RemoveDay удаляет один день бронирования.
// Если день был последним, удаляется всё бронирование.
func (s *Service) RemoveDay(ctx context.Context, id, timeRangeID, userID string) (*models.RemoveDayResponse, error) {
	s.logger.Info("RemoveDay: removing time range id=%s from reservation id=%s by user=%s", timeRangeID, id, userID)

	if timeRangeID == "" {
		return nil, fmt.Errorf("%w: timeRangeID is required", ErrInvalidInput)
	}

	resp := &models.RemoveDayResponse{ReservationID: id, TimeRangeID: timeRangeID}
	var affected *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.getOwned(txCtx, "RemoveDay", id, userID)
		if err != nil {
			return err
		}

		if _, ok := reservation.FindTimeRange(timeRangeID); !ok {
			s.logger.Warn("RemoveDay: time range id=%s not found in reservation id=%s", timeRangeID, id)
			return ErrTimeRangeNotFound
		}
		affected = reservation

		// Бронирование без дней не хранится
		if reservation.IsLastTimeRange(timeRangeID) {
			if err := s.reservationRepo.Delete(txCtx, id); err != nil {
				return s.translateRepoError("RemoveDay", id, err)
			}
			resp.ReservationDeleted = true
			return nil
		}

		if err := s.reservationRepo.DeleteTimeRange(txCtx, id, timeRangeID); err != nil {
			return s.translateRepoError("RemoveDay", id, err)
		}

		return nil
	})
	if err != nil {
		return nil, s.wrapTxError("RemoveDay", err)
	}

	s.logger.Info("RemoveDay: successfully removed time range id=%s, reservationDeleted=%t", timeRangeID, resp.ReservationDeleted)

	eventType := events.TypeReservationDayRemoved
	if resp.ReservationDeleted {
		eventType = events.TypeReservationCancelled
	}
	s.publish(ctx, "RemoveDay", eventType, affected, []string{timeRangeID})

	return resp, nil
}

// publish отправляет событие после коммита. Ошибка публикации только логируется.
func (s *Service) publish(ctx context.Context, op, eventType string, reservation *domain.Reservation, timeRangeIDs []string) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:           eventType,
		ReservationID:  reservation.ID,
		UserID:         reservation.UserID,
		OrganizationID: reservation.OrganizationID,
		DeskID:         reservation.DeskID,
		TimeRangeIDs:   timeRangeIDs,
	})
	if err != nil {
		s.logger.Warn("%s: failed to publish %s for reservation id=%s: %v", op, eventType, reservation.ID, err)
	}
}

func timeRangeIDs(ranges []domain.TimeRange) []string {
	ids := make([]string, 0, len(ranges))
	for _, tr := range ranges {
		ids = append(ids, tr.ID)
	}
	return ids
}

// getOwned получает бронирование и проверяет, что оно принадлежит пользователю
func (s *Service) getOwned(ctx context.Context, op, id, userID string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translateRepoError(op, id, err)
	}

	if !reservation.IsOwnedBy(userID) {
		s.logger.Warn("%s: access denied for user=%s to reservation id=%s", op, userID, id)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}

func (s *Service) translateRepoError(op, id string, err error) error {
	switch {
	case errors.Is(err, reservationRepo.ErrReservationNotFound):
		s.logger.Warn("%s: reservation id=%s not found", op, id)
		return ErrReservationNotFound
	case errors.Is(err, reservationRepo.ErrTimeRangeNotFound):
		s.logger.Warn("%s: time range of reservation id=%s not found", op, id)
		return ErrTimeRangeNotFound
	default:
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// wrapTxError пропускает ошибки сервиса, остальные (commit, begin) считает внутренними
func (s *Service) wrapTxError(op string, err error) error {
	if errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrTimeRangeNotFound) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrInternal) {
		return err
	}
	s.logger.Error("%s: transaction failed: %v", op, err)
	return fmt.Errorf("%w: %s - transaction failed: %v", ErrInternal, op, err)
}
