// Package report genera el informe de inventario descargable.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stocksync-dashboard/internal/application/dto"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/domain/repository"
)

// Inventory datos que necesita el generador.
type Inventory struct {
	AppName     string
	GeneratedAt time.Time
	Products    []entity.Product
	Counts      dto.DashboardCounts
}

// Generator produce el documento (implementado en infrastructure/pdf).
type Generator interface {
	GenerateInventoryPDF(ctx context.Context, inv Inventory) ([]byte, error)
}

// CountsLoader lo implementa dashboard.Aggregate.
type CountsLoader interface {
	Load(ctx context.Context) dto.DashboardCounts
}

// UseCase arma el informe con datos frescos de la API (no usa las cachés de sesión).
type UseCase struct {
	products  repository.ProductRepository
	counts    CountsLoader
	generator Generator
	appName   string
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, counts CountsLoader, generator Generator, appName string) *UseCase {
	return &UseCase{products: products, counts: counts, generator: generator, appName: appName, now: time.Now}
}

// Download devuelve los bytes del PDF y su nombre de archivo. Sin productos no hay
// informe: el error de la API se propaga.
func (uc *UseCase) Download(ctx context.Context) ([]byte, string, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar productos: %w", err)
	}
	now := uc.now()
	inv := Inventory{
		AppName:     uc.appName,
		GeneratedAt: now,
		Products:    products,
		Counts:      uc.counts.Load(ctx),
	}
	doc, err := uc.generator.GenerateInventoryPDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar pdf: %w", err)
	}
	return doc, fmt.Sprintf("inventory-%s.pdf", now.Format("20060102-1504")), nil
}
