// Package pdf renders the participant roster as a downloadable document.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/go-pdf/fpdf"
)

type column struct {
	header string
	width  float64
}

// Landscape A4 is 297mm wide; widths leave the default 10mm margins.
var columns = []column{
	{"ID", 25},
	{"Nome", 75},
	{"Data de Nascimento", 38},
	{"Idade", 15},
	{"Igreja", 60},
	{"Data de Inscrição", 32},
	{"Data de Confirmação", 32},
}

// RenderParticipants builds the roster PDF. The igreja label is shown in the
// subtitle when the list was filtered by church.
func RenderParticipants(participants []domain.Participant, igreja string) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetTitle("Lista de Participantes", true)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, tr("Lista de Participantes"), "", 1, "C", false, 0, "")

	subtitle := "Todas as igrejas"
	if igreja != "" {
		subtitle = fmt.Sprintf("Igreja: %s", igreja)
	}
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, tr(subtitle), "", 1, "C", false, 0, "")
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(67, 97, 238)
	doc.SetTextColor(255, 255, 255)
	for _, col := range columns {
		doc.CellFormat(col.width, 8, tr(col.header), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	fill := false
	doc.SetFillColor(240, 240, 245)
	for _, p := range participants {
		igrejaNome := p.IgrejaNome
		if igrejaNome == "" {
			igrejaNome = "N/A"
		}
		cells := []string{
			p.Codigo,
			p.Nome,
			utils.FormatDate(p.Nascimento),
			fmt.Sprintf("%d", p.Idade),
			igrejaNome,
			utils.FormatDate(p.DataInscricao),
			utils.FormatDatePtr(p.DataConfirmacao),
		}
		for i, col := range columns {
			doc.CellFormat(col.width, 7, tr(cells[i]), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}

	doc.SetFont("Helvetica", "I", 8)
	doc.Ln(4)
	doc.CellFormat(0, 5, tr(fmt.Sprintf("Total de participantes: %d", len(participants))), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render participants PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for a roster export, matching the
// filter the caller applied.
func Filename(igreja string) string {
	if igreja == "" {
		return "participantes-todos.pdf"
	}
	return fmt.Sprintf("participantes-%s.pdf", igreja)
}
