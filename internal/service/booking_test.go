package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/stpnv0/StayBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dates(start, end string) domain.DateRange {
	return domain.DateRange{Start: date(start), End: date(end)}
}

// waitNotified blocks until a notifier goroutine signals on done.
func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	spotRepo    *mocks.MockSpotRepo
	userRepo    *mocks.MockUserRepo
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		spotRepo:    mocks.NewMockSpotRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}

	svc := NewBookingService(m.bookingRepo, m.spotRepo, m.userRepo, m.notifier, newTestLogger(t))
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	return svc, m
}

func existingOn(spotID string, list ...*domain.Booking) func(context.Context, *domain.Booking, ports.CreateCheck) error {
	return func(_ context.Context, b *domain.Booking, check ports.CreateCheck) error {
		if b.SpotID != spotID {
			return errors.New("unexpected spot")
		}
		return check(list)
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, m := newBookingService(t)

	spot := &domain.Spot{ID: "s1", OwnerID: "owner", Name: "Cabin"}
	user := &domain.User{ID: "u1", Username: "alice"}
	existing := &domain.Booking{ID: "b0", SpotID: "s1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	done := make(chan struct{})

	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(spot, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(existingOn("s1", existing))
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, spot, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Spot, *domain.Booking) { close(done) }).
		Return()

	booking, err := svc.Book(context.Background(), "s1", "u1", dates("2025-03-01", "2025-03-09"))

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "s1", booking.SpotID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, date("2025-03-01"), booking.StartDate)
	assert.Equal(t, date("2025-03-09"), booking.EndDate)

	waitNotified(t, done)
}

func TestBookingService_Book_StartInsideExisting(t *testing.T) {
	svc, m := newBookingService(t)

	existing := &domain.Booking{ID: "b0", SpotID: "s1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}

	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(existingOn("s1", existing))

	_, err := svc.Book(context.Background(), "s1", "u1", dates("2025-03-12", "2025-03-20"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)

	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Start date conflicts with an existing booking", fe.Fields["startDate"])
}

func TestBookingService_Book_EnclosesExisting(t *testing.T) {
	svc, m := newBookingService(t)

	existing := &domain.Booking{ID: "b0", SpotID: "s1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}

	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(existingOn("s1", existing))

	_, err := svc.Book(context.Background(), "s1", "u1", dates("2025-03-05", "2025-03-20"))

	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)
	assert.Contains(t, fe.Fields, "endDate")
}

func TestBookingService_Book_StartInPast(t *testing.T) {
	svc, m := newBookingService(t)

	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(existingOn("s1"))

	_, err := svc.Book(context.Background(), "s1", "u1", dates("2025-02-20", "2025-02-25"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStartDateInPast)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_OwnSpot(t *testing.T) {
	svc, m := newBookingService(t)

	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "u1"}, nil)

	_, err := svc.Book(context.Background(), "s1", "u1", dates("2025-03-01", "2025-03-09"))

	assert.ErrorIs(t, err, domain.ErrOwnSpotBooking)
}

func TestBookingService_Book_SpotNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.spotRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSpotNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1", dates("2025-03-01", "2025-03-09"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), "s1", "missing", dates("2025-03-01", "2025-03-09"))

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_RepoConflict(t *testing.T) {
	svc, m := newBookingService(t)

	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrBookingConflict)

	_, err := svc.Book(context.Background(), "s1", "u1", dates("2025-03-01", "2025-03-09"))

	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

// editOf runs the update check against current and siblings the way the repository does.
func editOf(current *domain.Booking, siblings ...*domain.Booking) func(context.Context, string, domain.DateRange, ports.UpdateCheck) (*domain.Booking, error) {
	return func(_ context.Context, id string, dr domain.DateRange, check ports.UpdateCheck) (*domain.Booking, error) {
		if id != current.ID {
			return nil, domain.ErrBookingNotFound
		}
		if err := check(current, append([]*domain.Booking{current}, siblings...)); err != nil {
			return nil, err
		}
		updated := *current
		updated.StartDate, updated.EndDate = dr.Start, dr.End
		return &updated, nil
	}
}

func TestBookingService_Update_Success(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	sibling := &domain.Booking{ID: "b2", SpotID: "s1", UserID: "u2", StartDate: date("2025-03-20"), EndDate: date("2025-03-22")}
	user := &domain.User{ID: "u1"}
	spot := &domain.Spot{ID: "s1", OwnerID: "owner"}
	done := make(chan struct{})

	m.bookingRepo.EXPECT().Update(mock.Anything, "b1", dates("2025-03-11", "2025-03-19"), mock.Anything).
		RunAndReturn(editOf(current, sibling))
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(spot, nil)
	m.notifier.EXPECT().NotifyBookingUpdated(mock.Anything, user, spot, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Spot, *domain.Booking) { close(done) }).
		Return()

	booking, err := svc.Update(context.Background(), "b1", "u1", dates("2025-03-11", "2025-03-19"))

	require.NoError(t, err)
	assert.Equal(t, date("2025-03-11"), booking.StartDate)
	assert.Equal(t, date("2025-03-19"), booking.EndDate)

	waitNotified(t, done)
}

func TestBookingService_Update_SiblingConflict(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	sibling := &domain.Booking{ID: "b2", SpotID: "s1", UserID: "u2", StartDate: date("2025-03-20"), EndDate: date("2025-03-22")}

	m.bookingRepo.EXPECT().Update(mock.Anything, "b1", mock.Anything, mock.Anything).RunAndReturn(editOf(current, sibling))

	_, err := svc.Update(context.Background(), "b1", "u1", dates("2025-03-11", "2025-03-20"))

	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, domain.ErrBookingConflict)
	assert.Equal(t, "End date conflicts with an existing booking", fe.Fields["endDate"])
}

func TestBookingService_Update_NotOwner(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	m.bookingRepo.EXPECT().Update(mock.Anything, "b1", mock.Anything, mock.Anything).RunAndReturn(editOf(current))

	_, err := svc.Update(context.Background(), "b1", "intruder", dates("2025-04-01", "2025-04-05"))

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Update_PastBookingImmutable(t *testing.T) {
	svc, m := newBookingService(t)

	// The only booking on the spot ended before today; the new dates are free.
	current := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-02-10"), EndDate: date("2025-02-15")}
	m.bookingRepo.EXPECT().Update(mock.Anything, "b1", mock.Anything, mock.Anything).RunAndReturn(editOf(current))

	_, err := svc.Update(context.Background(), "b1", "u1", dates("2025-04-01", "2025-04-05"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPastBookingImmutable)
}

func TestBookingService_Update_NotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().Update(mock.Anything, "missing", mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Update(context.Background(), "missing", "u1", dates("2025-04-01", "2025-04-05"))

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Update_NotifyLookupFails(t *testing.T) {
	svc, m := newBookingService(t)

	current := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	m.bookingRepo.EXPECT().Update(mock.Anything, "b1", mock.Anything, mock.Anything).RunAndReturn(editOf(current))
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, errors.New("db error"))

	booking, err := svc.Update(context.Background(), "b1", "u1", dates("2025-04-01", "2025-04-05"))

	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
}

func deleteOf(current *domain.Booking) func(context.Context, string, ports.DeleteCheck) (*domain.Booking, error) {
	return func(_ context.Context, _ string, check ports.DeleteCheck) (*domain.Booking, error) {
		if err := check(current); err != nil {
			return nil, err
		}
		return current, nil
	}
}

func TestBookingService_Cancel_ByGuest(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	spot := &domain.Spot{ID: "s1", OwnerID: "owner"}
	user := &domain.User{ID: "u1"}
	done := make(chan struct{})

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(spot, nil)
	m.bookingRepo.EXPECT().Delete(mock.Anything, "b1", mock.Anything).RunAndReturn(deleteOf(booking))
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, spot, booking).
		Run(func(context.Context, *domain.User, *domain.Spot, *domain.Booking) { close(done) }).
		Return()

	err := svc.Cancel(context.Background(), "b1", "u1")

	require.NoError(t, err)
	waitNotified(t, done)
}

func TestBookingService_Cancel_BySpotOwner(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	spot := &domain.Spot{ID: "s1", OwnerID: "owner"}
	user := &domain.User{ID: "u1"}
	done := make(chan struct{})

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(spot, nil)
	m.bookingRepo.EXPECT().Delete(mock.Anything, "b1", mock.Anything).RunAndReturn(deleteOf(booking))
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, spot, booking).
		Run(func(context.Context, *domain.User, *domain.Spot, *domain.Booking) { close(done) }).
		Return()

	require.NoError(t, svc.Cancel(context.Background(), "b1", "owner"))
	waitNotified(t, done)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-10"), EndDate: date("2025-03-15")}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)

	err := svc.Cancel(context.Background(), "b1", "intruder")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_Started(t *testing.T) {
	svc, m := newBookingService(t)

	// today is 2025-03-01, the stay began that day
	booking := &domain.Booking{ID: "b1", SpotID: "s1", UserID: "u1", StartDate: date("2025-03-01"), EndDate: date("2025-03-05")}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)
	m.bookingRepo.EXPECT().Delete(mock.Anything, "b1", mock.Anything).RunAndReturn(deleteOf(booking))

	err := svc.Cancel(context.Background(), "b1", "u1")

	assert.ErrorIs(t, err, domain.ErrBookingStarted)
}

func TestBookingService_ListBySpot_OwnerFlag(t *testing.T) {
	svc, m := newBookingService(t)

	list := []*domain.BookingDetails{{Booking: domain.Booking{ID: "b1", SpotID: "s1"}}}
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Spot{ID: "s1", OwnerID: "owner"}, nil)
	m.bookingRepo.EXPECT().ListBySpot(mock.Anything, "s1").Return(list, nil)

	bookings, isOwner, err := svc.ListBySpot(context.Background(), "s1", "owner")
	require.NoError(t, err)
	assert.True(t, isOwner)
	assert.Len(t, bookings, 1)

	_, isOwner, err = svc.ListBySpot(context.Background(), "s1", "guest")
	require.NoError(t, err)
	assert.False(t, isOwner)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, m := newBookingService(t)

	list := []*domain.BookingDetails{{Booking: domain.Booking{ID: "b1", UserID: "u1"}}}
	m.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(list, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_RemindUpcoming(t *testing.T) {
	svc, m := newBookingService(t)

	due := []*domain.Booking{
		{ID: "b1", SpotID: "s1", UserID: "u1"},
		{ID: "b2", SpotID: "s2", UserID: "u2"},
	}
	user1, user2 := &domain.User{ID: "u1"}, &domain.User{ID: "u2"}
	spot1, spot2 := &domain.Spot{ID: "s1"}, &domain.Spot{ID: "s2"}
	done := make(chan struct{}, 2)
	signal := func(context.Context, *domain.User, *domain.Spot, *domain.Booking) { done <- struct{}{} }

	m.bookingRepo.EXPECT().MarkReminded(mock.Anything, date("2025-03-02")).Return(due, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(spot1, nil)
	m.spotRepo.EXPECT().GetByID(mock.Anything, "s2").Return(spot2, nil)
	m.notifier.EXPECT().NotifyCheckInReminder(mock.Anything, user1, spot1, due[0]).Run(signal).Return()
	m.notifier.EXPECT().NotifyCheckInReminder(mock.Anything, user2, spot2, due[1]).Run(signal).Return()

	result, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
	waitNotified(t, done)
	waitNotified(t, done)
}

func TestBookingService_RemindUpcoming_SkipsMissingUser(t *testing.T) {
	svc, m := newBookingService(t)

	due := []*domain.Booking{{ID: "b1", SpotID: "s1", UserID: "gone"}}
	looked := make(chan struct{})

	m.bookingRepo.EXPECT().MarkReminded(mock.Anything, date("2025-03-02")).Return(due, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "gone").
		Run(func(context.Context, string) { close(looked) }).
		Return(nil, domain.ErrUserNotFound)

	_, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	waitNotified(t, looked)
}

func TestBookingService_RemindUpcoming_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().MarkReminded(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RemindUpcoming(context.Background())

	require.Error(t, err)
}
