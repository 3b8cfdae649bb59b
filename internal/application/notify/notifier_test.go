package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-dashboard/internal/application/notify"
)

func TestNotify_VariosAvisosCoexistenEnOrden(t *testing.T) {
	n := notify.New(time.Minute)
	t.Cleanup(n.Clear)

	n.Notify("Product created successfully", notify.Success)
	n.Notify("Error loading products: boom", notify.Error)

	active := n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "Product created successfully", active[0].Message)
	assert.Equal(t, "success", active[0].Severity)
	assert.Equal(t, "error", active[1].Severity)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestNotify_ExpiraSolo(t *testing.T) {
	n := notify.New(time.Minute)
	n.NotifyFor("breve", notify.Info, 20*time.Millisecond)
	n.Notify("largo", notify.Info)
	t.Cleanup(n.Clear)

	require.Eventually(t, func() bool { return len(n.Active()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "largo", n.Active()[0].Message)
}

func TestDismiss_AntesDeExpirar(t *testing.T) {
	n := notify.New(time.Minute)
	h := n.Notify("hola", notify.Warning)

	assert.True(t, n.Dismiss(h))
	assert.Empty(t, n.Active())
	assert.False(t, n.Dismiss(h), "descartar dos veces no falla")
}

func TestDismiss_TrasExpirarEsNoOp(t *testing.T) {
	n := notify.New(10 * time.Millisecond)
	h := n.Notify("hola", notify.Info)

	require.Eventually(t, func() bool { return len(n.Active()) == 0 }, time.Second, 5*time.Millisecond)
	assert.False(t, n.Dismiss(h))
}
