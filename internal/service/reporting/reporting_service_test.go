package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
)

var reportNow = time.Date(2025, time.March, 15, 7, 0, 0, 0, time.UTC)

type fakePedidoRepo struct {
	pedidos []models.Pedido
	fail    error
}

func (f *fakePedidoRepo) Listar(ctx context.Context) ([]models.Pedido, error) {
	return f.pedidos, f.fail
}

func (f *fakePedidoRepo) Obtener(ctx context.Context, id int64) (*models.Pedido, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePedidoRepo) Crear(ctx context.Context, dto models.PedidoDTO) (*models.Pedido, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePedidoRepo) Actualizar(ctx context.Context, id int64, dto models.PedidoDTO) (*models.Pedido, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePedidoRepo) Eliminar(ctx context.Context, id int64) error {
	return errors.New("not implemented")
}

type fakeArchivo struct {
	guardados []models.ReportePrioridad
	fail      error
}

func (f *fakeArchivo) GuardarReportePrioridad(ctx context.Context, reporte models.ReportePrioridad) error {
	if f.fail != nil {
		return f.fail
	}
	f.guardados = append(f.guardados, reporte)
	return nil
}

func pedidoConEdad(id int64, estado string, dias int, monto float64) models.Pedido {
	return models.Pedido{
		ID:          id,
		ClienteID:   7,
		Estado:      estado,
		FechaPedido: reportNow.AddDate(0, 0, -dias).Format(models.FechaLayout),
		Items:       []models.PedidoItem{{ArticuloID: 3, Cantidad: 1, PrecioUnitario: monto}},
	}
}

func TestGenerarReportePrioridad(t *testing.T) {
	repo := &fakePedidoRepo{pedidos: []models.Pedido{
		pedidoConEdad(1, models.EstadoPendiente, 12, 1000), // alta
		pedidoConEdad(2, models.EstadoEnProceso, 8, 500),   // media
		pedidoConEdad(3, models.EstadoPendiente, 2, 250),   // baja
		pedidoConEdad(4, models.EstadoCompletado, 20, 9999),
		pedidoConEdad(5, models.EstadoCancelado, 20, 9999),
	}}
	svc := NewService(repo, &fakeArchivo{}, nil)

	reporte, err := svc.GenerarReportePrioridad(context.Background(), reportNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reporte.TotalPedidos != 3 {
		t.Errorf("totalPedidos = %d, want 3 (closed orders excluded)", reporte.TotalPedidos)
	}
	if reporte.PedidosAlta != 1 || reporte.PedidosMedia != 1 || reporte.PedidosBaja != 1 {
		t.Errorf("tier counts = %d/%d/%d, want 1/1/1",
			reporte.PedidosAlta, reporte.PedidosMedia, reporte.PedidosBaja)
	}
	if reporte.MontoAlta != 1000 || reporte.MontoMedia != 500 || reporte.MontoBaja != 250 {
		t.Errorf("tier montos = %f/%f/%f", reporte.MontoAlta, reporte.MontoMedia, reporte.MontoBaja)
	}
	if reporte.MontoTotal != 1750 {
		t.Errorf("montoTotal = %f, want 1750", reporte.MontoTotal)
	}
	if !reporte.Fecha.Equal(reportNow) {
		t.Errorf("fecha = %v, want %v", reporte.Fecha, reportNow)
	}
}

func TestGenerarYArchivar(t *testing.T) {
	t.Run("stores snapshot", func(t *testing.T) {
		archivo := &fakeArchivo{}
		svc := NewService(&fakePedidoRepo{pedidos: []models.Pedido{
			pedidoConEdad(1, models.EstadoPendiente, 1, 100),
		}}, archivo, nil)

		if _, err := svc.GenerarYArchivar(context.Background(), reportNow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(archivo.guardados) != 1 {
			t.Fatalf("archived %d reports, want 1", len(archivo.guardados))
		}
		if archivo.guardados[0].TotalPedidos != 1 {
			t.Errorf("archived totalPedidos = %d, want 1", archivo.guardados[0].TotalPedidos)
		}
	})

	t.Run("archive failure surfaces", func(t *testing.T) {
		svc := NewService(&fakePedidoRepo{}, &fakeArchivo{fail: errors.New("mongo down")}, nil)

		if _, err := svc.GenerarYArchivar(context.Background(), reportNow); err == nil {
			t.Fatal("expected archive error")
		}
	})

	t.Run("upstream failure skips archive", func(t *testing.T) {
		archivo := &fakeArchivo{}
		svc := NewService(&fakePedidoRepo{fail: errors.New("office api down")}, archivo, nil)

		if _, err := svc.GenerarYArchivar(context.Background(), reportNow); err == nil {
			t.Fatal("expected upstream error")
		}
		if len(archivo.guardados) != 0 {
			t.Error("report archived despite upstream failure")
		}
	})
}
