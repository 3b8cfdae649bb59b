package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/application/report"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository/mocks"
)

type countsStub dto.DashboardCounts

func (c countsStub) Load(context.Context) dto.DashboardCounts { return dto.DashboardCounts(c) }

type generatorSpy struct {
	got report.Inventory
}

func (g *generatorSpy) GenerateInventoryPDF(_ context.Context, inv report.Inventory) ([]byte, error) {
	g.got = inv
	return []byte("%PDF-1.3"), nil
}

func TestDownload_ConDatosFrescos(t *testing.T) {
	products := new(mocks.MockProductRepository)
	products.On("List", mock.Anything).Return([]entity.Product{{ID: "p1", Name: "Widget", Stock: 2}}, nil).Once()
	gen := &generatorSpy{}
	uc := report.NewUseCase(products, countsStub{TotalProducts: 1, LowStock: 1, TotalSuppliers: 3}, gen, "StockSync Pro")

	doc, name, err := uc.Download(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), doc)
	assert.Regexp(t, `^inventory-\d{8}-\d{4}\.pdf$`, name)
	assert.Equal(t, "StockSync Pro", gen.got.AppName)
	assert.Len(t, gen.got.Products, 1)
	assert.Equal(t, 3, gen.got.Counts.TotalSuppliers)
}

func TestDownload_FalloDeAPISePropaga(t *testing.T) {
	products := new(mocks.MockProductRepository)
	products.On("List", mock.Anything).Return(nil, assert.AnError)
	gen := &generatorSpy{}

	_, _, err := report.NewUseCase(products, countsStub{}, gen, "x").Download(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, gen.got.AppName, "no se genera el documento")
}
