package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"biller-backend/internal/cloudsync"
	"biller-backend/internal/models"
	"biller-backend/internal/repositories"
	"biller-backend/internal/timeutil"
)

// EvidenceFolder is the cloud folder for payment proof images.
const EvidenceFolder = "Payment_Evidence"

type PaymentService struct {
	Repo      *repositories.PaymentRepository
	Uploader  *cloudsync.Uploader
	UploadDir string
}

func NewPaymentService(repo *repositories.PaymentRepository, uploader *cloudsync.Uploader, uploadDir string) *PaymentService {
	return &PaymentService{Repo: repo, Uploader: uploader, UploadDir: uploadDir}
}

// RecordPayment saves a payment with optional proof image (cheque photo or
// transfer screenshot). The image is stored locally first; cloud upload runs
// in the background and its failure only logs.
func (s *PaymentService) RecordPayment(ctx context.Context, req *models.CreatePaymentRequest, imageName string, image io.Reader) (*models.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, err := parseBusinessDate(req.Date)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Date:       date,
		SupplierID: req.SupplierID,
		Amount:     req.Amount,
		Mode:       req.Mode,
		Notes:      req.Notes,
	}

	if image != nil && imageName != "" {
		imagePath, err := s.saveEvidence(imageName, image)
		if err != nil {
			return nil, err
		}
		payment.ImagePath = imagePath
	}

	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if payment.ImagePath != "" && s.Uploader.Enabled() {
		go s.syncEvidence(payment.ImagePath)
	}
	return payment, nil
}

func (s *PaymentService) ListBySupplier(ctx context.Context, supplierID int64) ([]*models.Payment, error) {
	return s.Repo.ListBySupplier(ctx, supplierID)
}

// saveEvidence writes the image under the upload dir with a timestamped
// name, so two cheques photographed with the same camera filename never
// collide.
func (s *PaymentService) saveEvidence(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", err
	}

	base := sanitizeFilename(filepath.Base(name))
	stamped := fmt.Sprintf("%s_%s", timeutil.Now().Format("20060102_150405"), base)
	dest := filepath.Join(s.UploadDir, stamped)

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dest)
		return "", err
	}
	return dest, nil
}

func (s *PaymentService) syncEvidence(imagePath string) {
	f, err := os.Open(imagePath)
	if err != nil {
		log.Printf("[Payment] Cannot reopen evidence for sync: %v", err)
		return
	}
	defer f.Close()

	if err := s.Uploader.Upload(context.Background(), EvidenceFolder, filepath.Base(imagePath), f); err != nil {
		log.Printf("[Payment] Evidence sync failed: %v", err)
	}
}

// sanitizeFilename keeps letters, digits, dot, dash and underscore.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "evidence"
	}
	return b.String()
}
