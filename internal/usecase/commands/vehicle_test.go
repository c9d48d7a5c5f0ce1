//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"iwparking/internal/domain/vehicle"
	"iwparking/internal/pkg/clock"
	"iwparking/internal/pkg/errs"
	"iwparking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicleCommands(store *fakeStore) (commands.VehicleCommands, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC))
	return commands.NewVehicleUseCase(&fakeUoW{store: store}, clk), clk
}

func TestRegisterVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and normalizes the plate", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newVehicleCommands(store)
		ownerID := uuid.New()

		view, err := uc.Register(ctx, commands.RegisterVehicleRequest{
			PlateNumber: " ab1234 ",
			Type:        "car",
		}, ownerID)
		require.NoError(t, err)

		assert.Equal(t, "AB1234", view.PlateNumber)
		assert.Equal(t, "Car", view.TypeName)
		assert.False(t, view.IsPrimary)
	})

	t.Run("invalid plate", func(t *testing.T) {
		uc, _ := newVehicleCommands(newFakeStore())

		_, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "!!!", Type: "car"}, uuid.New())
		require.ErrorIs(t, err, vehicle.ErrInvalidPlate)
	})

	t.Run("invalid type", func(t *testing.T) {
		uc, _ := newVehicleCommands(newFakeStore())

		_, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "AB1234", Type: "truck"}, uuid.New())
		require.ErrorIs(t, err, vehicle.ErrInvalidType)
	})

	t.Run("duplicate plate", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newVehicleCommands(store)

		_, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "AB1234", Type: "car"}, uuid.New())
		require.NoError(t, err)

		_, err = uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "AB1234", Type: "car"}, uuid.New())
		require.ErrorIs(t, err, errs.ErrPlateTaken)
	})

	t.Run("primary registration demotes the previous primary", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newVehicleCommands(store)
		ownerID := uuid.New()

		first, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "AB1234", Type: "car", IsPrimary: true}, ownerID)
		require.NoError(t, err)
		second, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "CD5678", Type: "car", IsPrimary: true}, ownerID)
		require.NoError(t, err)

		assert.False(t, store.vehicles[first.ID].IsPrimary())
		assert.True(t, store.vehicles[second.ID].IsPrimary())
	})
}

func TestMakePrimaryVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("switches the primary flag", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newVehicleCommands(store)
		ownerID := uuid.New()

		first, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "AB1234", Type: "car", IsPrimary: true}, ownerID)
		require.NoError(t, err)
		second, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "CD5678", Type: "car"}, ownerID)
		require.NoError(t, err)

		require.NoError(t, uc.MakePrimary(ctx, second.ID, ownerID))

		assert.False(t, store.vehicles[first.ID].IsPrimary())
		assert.True(t, store.vehicles[second.ID].IsPrimary())
	})

	t.Run("foreign vehicle looks missing", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newVehicleCommands(store)

		view, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "AB1234", Type: "car"}, uuid.New())
		require.NoError(t, err)

		err = uc.MakePrimary(ctx, view.ID, uuid.New())
		require.ErrorIs(t, err, errs.ErrVehicleNotFound)
	})
}

func TestRemoveVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an unused vehicle", func(t *testing.T) {
		store := newFakeStore()
		uc, _ := newVehicleCommands(store)
		ownerID := uuid.New()

		view, err := uc.Register(ctx, commands.RegisterVehicleRequest{PlateNumber: "AB1234", Type: "car"}, ownerID)
		require.NoError(t, err)

		require.NoError(t, uc.Remove(ctx, view.ID, ownerID))
		assert.Empty(t, store.vehicles)
	})

	t.Run("vehicle with reservations is kept", func(t *testing.T) {
		f := newFixture(t, "08:00", "18:00", 2, 1, 10)
		uc, _ := newVehicleCommands(f.store)

		veh, err := (&fakeVehicleRepo{f.store}).FindByPlateAndOwner(ctx, "AB1234", f.userID)
		require.NoError(t, err)
		f.addReservation(t, f.userID, veh.ID(), day11(9, 0), day11(11, 0))

		err = uc.Remove(ctx, veh.ID(), f.userID)
		require.ErrorIs(t, err, errs.ErrVehicleInUse)
	})
}
