package deletion_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-dashboard/internal/application/deletion"
	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
	"github.com/jhoicas/stocksync-dashboard/internal/domain"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository/mocks"
)

type names map[string]string

func (n names) DisplayName(kind entity.Kind, id string) (string, bool) {
	if kind == entity.KindOrder {
		return "", false
	}
	v, ok := n[id]
	return v, ok
}

type notifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *notifier) Notify(message string, _ notify.Severity) notify.Handle {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return ""
}

type reloader struct{ kinds []entity.Kind }

func (r *reloader) Reload(_ context.Context, kind entity.Kind) { r.kinds = append(r.kinds, kind) }

type fixture struct {
	flow      *deletion.Flow
	products  *mocks.MockProductRepository
	suppliers *mocks.MockSupplierRepository
	orders    *mocks.MockOrderRepository
	n         *notifier
	r         *reloader
}

func newFixture() fixture {
	fx := fixture{
		products:  new(mocks.MockProductRepository),
		suppliers: new(mocks.MockSupplierRepository),
		orders:    new(mocks.MockOrderRepository),
		n:         &notifier{},
		r:         &reloader{},
	}
	deleters := repository.Deleters{
		entity.KindProduct:  fx.products,
		entity.KindSupplier: fx.suppliers,
		entity.KindOrder:    fx.orders,
	}
	fx.flow = deletion.NewFlow(deleters, names{"p1": "Widget"}, fx.n, fx.r, nil)
	return fx
}

func TestRequest_NoLlamaALaAPIYNombraLaEntidad(t *testing.T) {
	fx := newFixture()

	require.NoError(t, fx.flow.Request(entity.KindProduct, "p1"))

	v := fx.flow.View()
	assert.True(t, v.Open)
	assert.Equal(t, `Are you sure you want to delete "Widget"? This action cannot be undone.`, v.Message)
	fx.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRequest_FrasesGenericas(t *testing.T) {
	fx := newFixture()

	require.NoError(t, fx.flow.Request(entity.KindSupplier, "desconocido"))
	assert.Contains(t, fx.flow.View().Message, "delete this supplier?")

	require.NoError(t, fx.flow.Request(entity.KindOrder, "o1"))
	assert.Contains(t, fx.flow.View().Message, "delete this order?")
}

func TestCancel_NuncaLlamaALaAPI(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.flow.Request(entity.KindProduct, "p1"))

	fx.flow.Cancel()

	assert.False(t, fx.flow.View().Open)
	require.NoError(t, fx.flow.Confirm(context.Background()), "confirm tras cancel es no-op")
	fx.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestConfirm_ExitoNotificaYRecarga(t *testing.T) {
	fx := newFixture()
	fx.products.On("Delete", mock.Anything, "p1").Return(nil).Once()
	require.NoError(t, fx.flow.Request(entity.KindProduct, "p1"))

	require.NoError(t, fx.flow.Confirm(context.Background()))

	fx.products.AssertExpectations(t)
	assert.Equal(t, []string{"Product deleted successfully"}, fx.n.messages)
	assert.Equal(t, []entity.Kind{entity.KindProduct}, fx.r.kinds)
	assert.False(t, fx.flow.View().Open)
}

func TestConfirm_FalloCierraElModalSinReintento(t *testing.T) {
	fx := newFixture()
	fx.orders.On("Delete", mock.Anything, "o1").Return(domain.NewHTTPError(500, "Order is locked")).Once()
	require.NoError(t, fx.flow.Request(entity.KindOrder, "o1"))

	err := fx.flow.Confirm(context.Background())

	var httpErr *domain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, []string{"Error deleting order: Order is locked"}, fx.n.messages)
	assert.False(t, fx.flow.View().Open)
	assert.Empty(t, fx.r.kinds)

	require.NoError(t, fx.flow.Confirm(context.Background()))
	fx.orders.AssertNumberOfCalls(t, "Delete", 1)
}

func TestRequest_TipoDesconocido(t *testing.T) {
	fx := newFixture()
	assert.ErrorIs(t, fx.flow.Request(entity.Kind("warehouse"), "w1"), domain.ErrUnknownKind)
	assert.False(t, fx.flow.View().Open)
}
