package barber_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/barbeariaclassica/agenda-api/internal/audit"
	"github.com/barbeariaclassica/agenda-api/internal/db"
	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	infraRepo "github.com/barbeariaclassica/agenda-api/internal/infra/repository"
	"github.com/barbeariaclassica/agenda-api/internal/models"
	ucBarber "github.com/barbeariaclassica/agenda-api/internal/usecase/barber"
)

type fixture struct {
	barbers      *infraRepo.BarberFileRepository
	appointments *infraRepo.AppointmentFileRepository

	list   *ucBarber.ListBarbers
	add    *ucBarber.AddBarber
	rename *ucBarber.RenameBarber
	remove *ucBarber.RemoveBarber
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "agenda.json"), zap.NewNop())
	require.NoError(t, err)

	barbers := infraRepo.NewBarberFileRepository(store)
	appointments := infraRepo.NewAppointmentFileRepository(store)
	dispatcher := audit.NewDispatcher(audit.New(infraRepo.NewAuditFileRepository(store)), zap.NewNop())

	return &fixture{
		barbers:      barbers,
		appointments: appointments,
		list:         ucBarber.NewListBarbers(barbers),
		add:          ucBarber.NewAddBarber(barbers, dispatcher),
		rename:       ucBarber.NewRenameBarber(barbers, dispatcher),
		remove:       ucBarber.NewRemoveBarber(barbers, dispatcher),
	}
}

func TestListBarbers_ReturnsSeededDefaults(t *testing.T) {
	f := newFixture(t)

	barbers, err := f.list.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, barbers, 3)
	assert.Equal(t, "João Silva", barbers[0].Name)
	assert.Equal(t, "Pedro Oliveira", barbers[1].Name)
	assert.Equal(t, "Carlos Santos", barbers[2].Name)
}

func TestAddBarber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.add.Execute(ctx, "  Rafael Lima  ")
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Rafael Lima", b.Name, "nome entra sem espaços nas pontas")

	barbers, err := f.list.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, barbers, 4)
}

func TestAddBarber_EmptyName(t *testing.T) {
	f := newFixture(t)

	_, err := f.add.Execute(context.Background(), "   ")
	assert.True(t, httperr.IsBusiness(err, "missing_name"))
}

func TestAddBarber_DuplicateCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// "João Silva" já existe na carga padrão; só a caixa difere
	_, err := f.add.Execute(ctx, "joão silva")
	assert.True(t, httperr.IsBusiness(err, "duplicate_name"))

	barbers, err := f.list.Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, barbers, 3, "nenhum registro novo foi criado")
}

func TestRenameBarber_SyncsDenormalizedNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	barbers, err := f.list.Execute(ctx)
	require.NoError(t, err)
	target := barbers[0]

	require.NoError(t, f.appointments.CreateScheduled(ctx, &models.Appointment{
		ID:         "ap1",
		BarberID:   target.ID,
		BarberName: target.Name,
		Date:       "2024-06-10",
		Time:       "09:00",
	}))

	require.NoError(t, f.rename.Execute(ctx, target.ID, "João Batista"))

	all, err := f.appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "João Batista", all[0].BarberName)
}

func TestRenameBarber_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.rename.Execute(context.Background(), "nao-existe", "Qualquer Nome")
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestRemoveBarber_Cascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	barbers, err := f.list.Execute(ctx)
	require.NoError(t, err)
	target, other := barbers[0], barbers[1]

	require.NoError(t, f.appointments.CreateScheduled(ctx, &models.Appointment{
		ID: "ap1", BarberID: target.ID, BarberName: target.Name, Date: "2024-06-10", Time: "09:00",
	}))
	require.NoError(t, f.appointments.CreateScheduled(ctx, &models.Appointment{
		ID: "ap2", BarberID: other.ID, BarberName: other.Name, Date: "2024-06-10", Time: "09:00",
	}))

	removed, err := f.remove.Execute(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	remaining, err := f.appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "ap2", remaining[0].ID)
}
