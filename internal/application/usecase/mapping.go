package usecase

import (
	"strconv"

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/entity"
	"github.com/tu-usuario/controle-estoque-front/internal/domain/report"
)

// displayMoneyPlaces redondeo de presentación para montos. Los motores de
// report acumulan sin redondear; solo aquí, al armar el DTO, se corta a 2.
const displayMoneyPlaces = 2

func toProductRow(p entity.Product, ix report.CategoryIndex) dto.ProductRowDTO {
	return dto.ProductRowDTO{
		ID:              p.ID,
		Name:            p.Name,
		UnitPrice:       p.UnitPrice,
		Unit:            p.Unit,
		QuantityInStock: p.QuantityInStock,
		MinQuantity:     p.MinQuantity,
		MaxQuantity:     p.MaxQuantity,
		CategoryID:      p.CategoryID,
		CategoryName:    ix.DisplayName(p.CategoryID),
		TotalValue:      p.TotalValue().Round(displayMoneyPlaces),
		StockStatus:     string(report.Classify(p)),
		LowStock:        report.IsLowStock(p),
		HighStock:       report.IsHighStock(p),
	}
}

func toProductRows(products []entity.Product, ix report.CategoryIndex) []dto.ProductRowDTO {
	rows := make([]dto.ProductRowDTO, 0, len(products))
	for _, p := range products {
		rows = append(rows, toProductRow(p, ix))
	}
	return rows
}

func toMovementRow(m entity.Movement, ix report.ProductIndex) dto.MovementRowDTO {
	sign := "+"
	if !m.IsEntry() {
		sign = "-"
	}
	return dto.MovementRowDTO{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   ix.DisplayName(m.ProductID),
		MovementType:  m.MovementType,
		QuantityMoved: m.QuantityMoved,
		SignedDisplay: sign + strconv.FormatInt(m.QuantityMoved, 10),
		MovementDate:  m.MovementDate,
	}
}

func toRankingEntries(entries []report.RankingEntry) []dto.RankingEntryDTO {
	out := make([]dto.RankingEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.RankingEntryDTO{
			Rank:        e.Rank,
			ProductID:   e.Product.ID,
			ProductName: e.Product.Name,
			Total:       e.Total,
		})
	}
	return out
}
