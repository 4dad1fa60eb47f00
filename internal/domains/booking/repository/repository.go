package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	paymentModel "hotelier/internal/domains/payment/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CreateConfirmed(ctx context.Context, booking model.Booking) (int64, error)
	Complete(ctx context.Context, booking model.Booking, payment paymentModel.Payment) (int64, error)
	Cancel(ctx context.Context, booking model.Booking, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	payments gRepo.Repository[paymentModel.Payment]
	rooms    gRepo.Repository[roomModel.Room]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		payments:   gRepo.NewRepository[paymentModel.Payment](paymentModel.EntityName, paymentModel.TableName, paymentModel.FieldID, db, otel),
		rooms:      gRepo.NewRepository[roomModel.Room](roomModel.EntityName, roomModel.TableName, roomModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateConfirmed inserts a Confirmed booking and flips the room to Occupied in one transaction.
func (repo *repositoryImpl) CreateConfirmed(ctx context.Context, booking model.Booking) (id int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateConfirmed")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to begin transaction (booking): %w", err)
	}
	defer rollbackOnError(tx, &err)

	id, err = repo.InsertTx(ctx, tx, booking)
	if err != nil {
		return 0, err
	}

	err = repo.updateRoomStatusTx(ctx, tx, booking.RoomID, roomModel.StatusOccupied, booking.CreatedBy)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to commit transaction (booking): %w", err)
	}

	return id, nil
}

// Complete settles a booking: one payment row, booking to Completed, room back to Available.
func (repo *repositoryImpl) Complete(ctx context.Context, booking model.Booking, payment paymentModel.Payment) (paymentID int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to begin transaction (booking): %w", err)
	}
	defer rollbackOnError(tx, &err)

	paymentID, err = repo.payments.InsertTx(ctx, tx, payment)
	if err != nil {
		return 0, err
	}

	err = repo.updateStatusTx(ctx, tx, booking.ID, model.StatusCompleted, payment.CreatedBy)
	if err != nil {
		return 0, err
	}

	err = repo.updateRoomStatusTx(ctx, tx, booking.RoomID, roomModel.StatusAvailable, payment.CreatedBy)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to commit transaction (booking): %w", err)
	}

	return paymentID, nil
}

// Cancel voids a booking and frees the room. No payment is recorded.
func (repo *repositoryImpl) Cancel(ctx context.Context, booking model.Booking, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (booking): %w", err)
	}
	defer rollbackOnError(tx, &err)

	err = repo.updateStatusTx(ctx, tx, booking.ID, model.StatusCancelled, user)
	if err != nil {
		return err
	}

	err = repo.updateRoomStatusTx(ctx, tx, booking.RoomID, roomModel.StatusAvailable, user)
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (booking): %w", err)
	}

	return nil
}

func (repo *repositoryImpl) updateStatusTx(ctx context.Context, tx *sqlx.Tx, id int64, status, user string) error {
	fields := map[string]any{
		model.FieldBookingStatus: status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return repo.UpdateTx(ctx, tx, fields, shared.FilterByID(strconv.FormatInt(id, 10), model.FieldID, model.TableName))
}

func (repo *repositoryImpl) updateRoomStatusTx(ctx context.Context, tx *sqlx.Tx, roomID int64, status, user string) error {
	fields := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return repo.rooms.UpdateTx(ctx, tx, fields, shared.FilterByID(strconv.FormatInt(roomID, 10), roomModel.FieldID, roomModel.TableName))
}

func rollbackOnError(tx *sqlx.Tx, err *error) {
	if *err == nil {
		return
	}

	if rbErr := tx.Rollback(); rbErr != nil {
		log.Error().Err(rbErr).Msg("failed to rollback transaction")
	}
}
