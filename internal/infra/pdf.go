package infra

// pdf.go — Generación de cotizaciones en PDF con go-pdf/fpdf.
// Una página A4 con encabezado del taller, datos del cliente, tabla de
// líneas (variante, técnica, cantidad, subtotal) y total en negrita.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateCotizacionPDF writes the quote PDF under storagePath and returns
// the absolute path to the generated file.
func GenerateCotizacionPDF(cot *model.Cotizacion, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("cotizacion_%d.pdf", cot.CotizacionID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "StampLab", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Cotizacion de estampados", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Quote info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Cotizacion N° %d", cot.CotizacionID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Fecha: "+cot.Fecha.Format("02/01/2006"), "", 1, "L", false, 0, "")
	if cot.Usuario != nil {
		pdf.CellFormat(contentW, 5, "Cliente: "+cot.Usuario.Nombre+"  ("+cot.DocumentoID+")", "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(contentW, 5, "Cliente: "+cot.DocumentoID, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Estado: "+cot.Estado, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Items table ──────────────────────────────────────────────────────────
	col1 := contentW * 0.40 // prenda
	col2 := contentW * 0.24 // técnica
	col3 := contentW * 0.12 // cantidad
	col4 := contentW * 0.24 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Prenda", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Tecnica", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range cot.Detalles {
		prenda := fmt.Sprintf("Variante #%d", d.VarianteID)
		if d.Variante != nil && d.Variante.Producto != nil {
			prenda = d.Variante.Producto.Nombre
			if d.Variante.Color != nil && d.Variante.Talla != nil {
				prenda += " " + d.Variante.Color.Nombre + "/" + d.Variante.Talla.Nombre
			}
		}
		if len(prenda) > 34 {
			prenda = prenda[:33] + "…"
		}
		tecnica := fmt.Sprintf("#%d", d.TecnicaID)
		if d.Tecnica != nil {
			tecnica = d.Tecnica.Nombre
		}
		pdf.CellFormat(col1, 6, prenda, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, tecnica, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("x%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+d.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		if d.PrendaProporcionada {
			pdf.SetFont("Helvetica", "I", 7)
			pdf.CellFormat(contentW, 4, "   (prenda proporcionada por el cliente)", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
		}
	}

	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 8, "$"+cot.ValorTotal.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
