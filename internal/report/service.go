package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"cardio-twin-agent/internal/risk"
)

// Service renders risk profiles as downloadable PDF reports.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger, now: time.Now}
}

// Try multiple common paths for DejaVu (Alpine and Debian layouts).
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// RiskReport builds a one-page PDF summarizing the computed risk profile
// and the answers it was derived from.
func (s *Service) RiskReport(profile risk.Profile, smoking, activity risk.Option) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		s.logger.Error("loading report font", zap.Error(fontErr))
		return nil, fmt.Errorf("failed to load font for PDF. Please ensure ttf-dejavu is installed. Last error: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}

	// Header
	pdf.Cell(nil, "Cardiovascular Risk Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", s.now().Format("02.01.2006 15:04")))
	pdf.Br(25)

	// Answers
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Risk factors:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("- Cigarettes per day: %s", smoking.Label))
	pdf.Br(12)
	pdf.Cell(nil, fmt.Sprintf("- Daily physical activity: %s", activity.Label))
	pdf.Br(25)

	// Scores
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Computed risk:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	rows := []struct {
		label string
		value int
	}{
		{"Overall cardiovascular risk", profile.Total},
		{"Heart attack", profile.HeartAttack},
		{"Angina pectoris", profile.Angina},
		{"Ischemic heart disease", profile.IschemicHeart},
		{"Atrial fibrillation", profile.AtrialFibrillation},
	}
	for _, row := range rows {
		pdf.Cell(nil, fmt.Sprintf("- %s: %d%%", row.label, row.value))
		pdf.Br(12)
	}
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 9); err != nil {
		return nil, err
	}
	disclaimer := "This estimate is for informational purposes only and is not a medical diagnosis. Discuss the results with your physician."
	lines, _ := pdf.SplitText(disclaimer, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(12)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
