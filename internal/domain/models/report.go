package models

import "time"

// ReportePrioridad is a snapshot of open orders grouped by priority tier,
// archived in MongoDB by the reporting job.
type ReportePrioridad struct {
	Fecha        time.Time `bson:"fecha" json:"fecha"`
	TotalPedidos int       `bson:"total_pedidos" json:"totalPedidos"`
	PedidosAlta  int       `bson:"pedidos_alta" json:"pedidosAlta"`
	PedidosMedia int       `bson:"pedidos_media" json:"pedidosMedia"`
	PedidosBaja  int       `bson:"pedidos_baja" json:"pedidosBaja"`
	MontoAlta    float64   `bson:"monto_alta" json:"montoAlta"`
	MontoMedia   float64   `bson:"monto_media" json:"montoMedia"`
	MontoBaja    float64   `bson:"monto_baja" json:"montoBaja"`
	MontoTotal   float64   `bson:"monto_total" json:"montoTotal"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
