package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	catalogRepo "atithi/database/repository/catalog"
	"atithi/models"
	"atithi/services/availability"
	"atithi/services/pricing"
	"atithi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession opens a booking session for a stay window: it loads the
// catalog and settings, filters units through the availability resolver and
// caches the resulting state under a fresh session ID.
func (s *DefaultBookingSessionService) InitiateSession(req StayRequest) (*models.BookingSession, error) {
	logger := utils.GetLogger()

	if err := validateStayRequest(req); err != nil {
		return nil, err
	}

	ctx := context.Background()
	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	slot, ok := settings.SlotByName(req.TimeSlot)
	if !ok {
		return nil, fmt.Errorf("unknown time slot %q", req.TimeSlot)
	}
	start, end, err := availability.Window(req.DateRange, slot)
	if err != nil {
		return nil, err
	}

	types, err := s.Catalog.GetUnitTypes(ctx, req.PropertyType)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var options []models.UnitOption
	for _, ut := range types {
		for _, unit := range ut.Units {
			if s.Resolver.IsAvailable(unit, start, end) {
				options = append(options, optionFor(ut, unit))
			}
		}
	}

	session := models.BookingSession{
		SessionID:  uuid.New().String(),
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		Selection: models.StaySelection{
			DateRange:    req.DateRange,
			TimeSlot:     req.TimeSlot,
			PropertyType: req.PropertyType,
		},
		AvailableUnits: options,
	}

	if err := s.saveSession(ctx, &session); err != nil {
		return nil, err
	}

	logger.Debug("booking session initiated",
		zap.String("sessionID", session.SessionID),
		zap.Int("availableUnits", len(options)))
	return &session, nil
}

// UpdateSession replaces the session's selection and recomputes the live
// quote. A selection the calculator deems not ready yields a session with a
// nil breakdown, which the form renders as a suppressed total.
func (s *DefaultBookingSessionService) UpdateSession(sessionID string, sel models.StaySelection) (*models.BookingSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := validateSelection(sel); err != nil {
		return nil, err
	}

	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	session.Selection = sel
	breakdown, err := pricing.ComputeTotals(sel, *settings)
	switch {
	case errors.Is(err, pricing.ErrNotReady):
		session.Breakdown = nil
	case err != nil:
		return nil, err
	default:
		session.Breakdown = breakdown
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking freezes the session's breakdown into a booking. It first
// re-runs the availability resolver against freshly loaded catalog data
// (another booker may have claimed a unit since the form was opened), then
// reserves each unit through the conditional write. Conflicts at either
// stage surface as a ConflictError naming the unit numbers.
func (s *DefaultBookingSessionService) ConfirmBooking(sessionID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Breakdown == nil || len(session.Selection.SelectedUnits) == 0 {
		return nil, fmt.Errorf("selection is not ready to confirm")
	}

	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	slot, ok := settings.SlotByName(session.Selection.TimeSlot)
	if !ok {
		return nil, fmt.Errorf("unknown time slot %q", session.Selection.TimeSlot)
	}
	start, end, err := availability.Window(session.Selection.DateRange, slot)
	if err != nil {
		return nil, err
	}

	// Mandatory re-validation pass against fresh data.
	var conflicted []string
	for _, selected := range session.Selection.SelectedUnits {
		ut, err := s.Catalog.GetUnitType(ctx, selected.Type)
		if err != nil {
			return nil, err
		}
		found := false
		for _, unit := range ut.Units {
			if unit.Number != selected.Number {
				continue
			}
			found = true
			if !s.Resolver.IsAvailable(unit, start, end) {
				conflicted = append(conflicted, unit.Number)
			}
		}
		if !found {
			conflicted = append(conflicted, selected.Number)
		}
	}
	if len(conflicted) > 0 {
		return nil, NewConflictError(conflicted)
	}

	bookingNumber := uuid.New().String()
	occ := models.Occupancy{
		Status:        models.StatusBooked,
		CheckIn:       start.Format(utils.DateTimeLayout),
		CheckOut:      end.Format(utils.DateTimeLayout),
		BookingNumber: bookingNumber,
	}

	// Reserve each unit through the conditional write; losing the race on
	// any unit rolls back the ones already claimed.
	for i, selected := range session.Selection.SelectedUnits {
		if err := s.Catalog.ReserveUnit(ctx, selected.Type, selected.Number, occ); err != nil {
			for _, prior := range session.Selection.SelectedUnits[:i] {
				if rbErr := s.Catalog.RemoveBookingOccupancies(ctx, prior.Type, bookingNumber); rbErr != nil {
					logger.Error("failed to roll back reservation",
						zap.String("bookingNumber", bookingNumber),
						zap.String("unitType", prior.Type), zap.Error(rbErr))
				}
			}
			if errors.Is(err, catalogRepo.ErrUnitConflict) {
				return nil, NewConflictError([]string{selected.Number})
			}
			return nil, err
		}
	}

	b := models.Booking{
		BookingNumber: bookingNumber,
		GuestName:     session.GuestName,
		GuestPhone:    session.GuestPhone,
		Selection:     session.Selection,
		Breakdown:     *session.Breakdown,
		CheckIn:       occ.CheckIn,
		CheckOut:      occ.CheckOut,
		Status:        models.BookingConfirmed,
		CreatedAt:     time.Now(),
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.Warn("failed to drop confirmed session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("booking confirmed",
		zap.String("bookingNumber", bookingNumber),
		zap.Float64("total", b.Breakdown.Total))
	return &b, nil
}

// CancelSession drops an open session from the cache.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel session %s: %w", sessionID, err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	cache := utils.GetSessionCacheClient()
	if err := cache.Set(ctx, sessionKey(session.SessionID), data, utils.SessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("booking not initialized")
	}
	cache := utils.GetSessionCacheClient()
	data, err := cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
